package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"colt/internal/types"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
)

// addBatchSeeds adds every *.toml file under testdata/.
func addBatchSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err == nil {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
			if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".toml" {
				return nil
			}
			// #nosec G304 -- path comes from repository testdata walk
			src, err := os.ReadFile(path)
			if err != nil {
				return nil
			}
			f.Add(string(clampSeed(src)))
			return nil
		})
	}
	// хотя бы один минимальный пример на случай пустого testdata
	f.Add("")
	f.Add("[[unit]]\n[[unit.op]]\nop = \"+\"\ntype = \"i8\"\nlhs = \"127\"\nrhs = \"1\"\n")
}

func addTypeSeeds(f *testing.F) {
	for id := range types.BuiltinID(types.BuiltinCount) {
		f.Add(id.String())
	}
	for _, s := range []string{
		"void", "<ERROR>", "opaque_ptr", "mut_opaque_ptr",
		"ptr.mutptr.u8", "fn() -> void", "fn(in u8, out ptr.i32, ...) -> void",
		"fn(move fn(inout f64) -> bool) -> QWORD", "fn(...", "ptr.", "",
	} {
		f.Add(s)
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
