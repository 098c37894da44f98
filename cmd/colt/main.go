package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"colt/internal/version"
)

// newRootCmd builds the command tree. Every call returns fresh commands and
// flag sets.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "colt",
		Short: "Colt type system and constant folding tools",
		Long: `colt inspects the Colt type system: which operators each type supports,
and what the checked QWORD engine produces when folding constants`,
		Version:           version.Version,
		SilenceUsage:      true,
		PersistentPreRunE: setupGlobals,
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newCastCmd())
	rootCmd.AddCommand(newTypeCmd())
	rootCmd.AddCommand(newSupportCmd())
	rootCmd.AddCommand(newFoldCmd())

	// Глобальные флаги
	pf := rootCmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.Bool("timings", false, "show timing information")
	pf.Int("max-diagnostics", 100, "maximum number of diagnostics to keep per unit")
	pf.StringSlice("no-warn", nil, "disable a warning (cf_nan, cf_signed_overflow, ...)")
	pf.String("trace", "", "write trace events to file (\"-\" for stderr)")
	pf.String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	pf.String("trace-format", "auto", "trace format (auto|text|ndjson)")
	pf.String("cpu-profile", "", "write a CPU profile to file")
	pf.String("mem-profile", "", "write a heap profile to file on exit")
	pf.String("runtime-trace", "", "write a Go runtime trace to file")
	return rootCmd
}

// main executes the root command and exits with status 1 on error.
func main() {
	err := newRootCmd().Execute()
	runCleanups()
	if err != nil {
		os.Exit(1)
	}
}

// setupGlobals applies the persistent flags shared by every command.
func setupGlobals(cmd *cobra.Command, _ []string) error {
	if err := applyColorFlag(cmd); err != nil {
		return err
	}
	if err := setupProfiling(cmd); err != nil {
		return err
	}
	return setupTracing(cmd)
}

// cleanups run after the command finishes, last registered first.
var cleanups []func()

func runCleanups() {
	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
	cleanups = nil
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
