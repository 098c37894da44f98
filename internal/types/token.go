package types

import "fmt"

// TypeToken is a handle to a type interned by a TypeBuffer. It is only
// meaningful for the buffer that issued it. The zero value is no type.
type TypeToken struct {
	index uint32
	owner uint32
}

// Index returns the slot of the token in its buffer.
func (t TypeToken) Index() uint32 { return t.index }

// IsZero reports whether the token was never issued.
func (t TypeToken) IsZero() bool { return t.owner == 0 }

func (t TypeToken) String() string {
	if t.IsZero() {
		return "TypeToken(none)"
	}
	return fmt.Sprintf("TypeToken(%d@%d)", t.index, t.owner)
}

func (t TypeToken) hash() uint64 {
	return hashCombine(uint64(t.owner), uint64(t.index))
}
