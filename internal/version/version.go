package version

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Version information for the colt CLI.
// These variables can be overridden at build time via -ldflags.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Colored renders Version with major, minor and patch in their own colour.
// Anything that is not MAJOR.MINOR.PATCH[-suffix] is returned unchanged.
func Colored() string {
	core, suffix, _ := strings.Cut(Version, "-")
	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return Version
	}
	out := versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(parts[2])
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}

// Banner is the text printed by `colt version`.
func Banner() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "colt %s", Colored())
	if GitCommit != "" {
		fmt.Fprintf(&sb, "\ncommit: %s", GitCommit)
	}
	if BuildDate != "" {
		fmt.Fprintf(&sb, "\nbuilt:  %s", BuildDate)
	}
	return sb.String()
}
