package driver

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// OpSpec is one entry of a fold batch.
//
//	[[unit.op]]
//	op   = "+"
//	type = "i8"
//	lhs  = "127"
//	rhs  = "1"
//
// Op is a spelling or mnemonic from the ops catalog, or "as" for a cast
// into To. Without RHS a spelling is read as a unary operator. An operand
// written $N refers to the result of operation N of the same unit.
// Width (8, 16, 32, 64) stands for BYTE, WORD, DWORD or QWORD when Type is
// empty. RHSType overrides the right operand's type.
type OpSpec struct {
	Op      string `toml:"op"`
	Type    string `toml:"type"`
	To      string `toml:"to"`
	LHS     string `toml:"lhs"`
	RHS     string `toml:"rhs"`
	RHSType string `toml:"rhs_type"`
	Width   uint   `toml:"width"`
}

// Unit is a named sequence of operations folded in order. Units are
// independent of each other.
type Unit struct {
	Name string   `toml:"name"`
	Ops  []OpSpec `toml:"op"`
}

type batchFile struct {
	Units []Unit `toml:"unit"`
}

// LoadBatch decodes a fold batch file.
func LoadBatch(path string) ([]Unit, error) {
	var file batchFile
	meta, err := toml.DecodeFile(path, &file)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return checkBatch(path, file, meta)
}

// DecodeBatch decodes a fold batch from TOML text.
func DecodeBatch(name, text string) ([]Unit, error) {
	var file batchFile
	meta, err := toml.Decode(text, &file)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to parse TOML: %w", name, err)
	}
	return checkBatch(name, file, meta)
}

func checkBatch(name string, file batchFile, meta toml.MetaData) ([]Unit, error) {
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %s", name, undecoded[0])
	}
	seen := make(map[string]int, len(file.Units))
	for i := range file.Units {
		u := &file.Units[i]
		u.Name = strings.TrimSpace(u.Name)
		if u.Name == "" {
			u.Name = fmt.Sprintf("unit%d", i)
		}
		if prev, ok := seen[u.Name]; ok {
			return nil, fmt.Errorf("%s: unit %q defined twice (entries %d and %d)", name, u.Name, prev, i)
		}
		seen[u.Name] = i
	}
	return file.Units, nil
}
