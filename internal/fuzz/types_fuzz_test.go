package fuzztests

import (
	"testing"

	"colt/internal/testkit"
	"colt/internal/types"
)

func FuzzParseType(f *testing.F) {
	addTypeSeeds(f)
	f.Fuzz(func(t *testing.T, input string) {
		if len(input) > maxSeedBytes {
			input = input[:maxSeedBytes]
		}
		buf := types.NewTypeBuffer()
		tok, err := types.ParseType(buf, input)
		if err != nil {
			return
		}
		if name := buf.TypeName(tok); name != input {
			again, err := types.ParseType(buf, name)
			if err != nil || again != tok {
				t.Fatalf("canonical name %q of %q does not round trip: %v", name, input, err)
			}
		}
		if err := testkit.CheckTypeBuffer(buf); err != nil {
			t.Fatalf("%q: %v", input, err)
		}
	})
}
