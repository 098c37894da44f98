package version

import (
	"testing"

	"github.com/fatih/color"
)

func withPlainOutput(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func withVersion(t *testing.T, v, commit, date string) {
	t.Helper()
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	Version, GitCommit, BuildDate = v, commit, date
	t.Cleanup(func() {
		Version, GitCommit, BuildDate = origVersion, origCommit, origDate
	})
}

func TestColoredKeepsVersionText(t *testing.T) {
	withPlainOutput(t)
	for _, v := range []string{"0.1.0-dev", "1.2.3", "1.0.0-beta.1", "weird"} {
		withVersion(t, v, "", "")
		if got := Colored(); got != v {
			t.Fatalf("Colored() = %q, want %q", got, v)
		}
	}
}

func TestBanner(t *testing.T) {
	withPlainOutput(t)
	withVersion(t, "1.2.3", "abc123", "2024-01-15")
	want := "colt 1.2.3\ncommit: abc123\nbuilt:  2024-01-15"
	if got := Banner(); got != want {
		t.Fatalf("Banner() = %q, want %q", got, want)
	}
	withVersion(t, "1.2.3", "", "")
	if got := Banner(); got != "colt 1.2.3" {
		t.Fatalf("Banner() = %q", got)
	}
}
