package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"colt/internal/project"
)

// settings merges colt.toml (when there is one above the working directory)
// with the persistent flags.
type settings struct {
	manifest       *project.Manifest
	warn           project.WarnFor
	fold           project.FoldConfig
	maxDiagnostics int
	timings        bool
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	root := cmd.Root().PersistentFlags()
	s := &settings{
		warn: project.WarnAll(),
		fold: project.DefaultConfig().Fold,
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	manifest, ok, err := project.LoadManifest(cwd)
	if err != nil {
		return nil, err
	}
	if ok {
		s.manifest = manifest
		s.warn = manifest.Config.Warn
		s.fold = manifest.Config.Fold
	}

	noWarn, err := root.GetStringSlice("no-warn")
	if err != nil {
		return nil, fmt.Errorf("failed to get no-warn flag: %w", err)
	}
	for _, name := range noWarn {
		if err := s.warn.Disable(name); err != nil {
			return nil, err
		}
	}
	if s.maxDiagnostics, err = root.GetInt("max-diagnostics"); err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if s.timings, err = root.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	return s, nil
}
