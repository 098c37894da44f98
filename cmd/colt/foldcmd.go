package main

import (
	"fmt"
	"os"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"colt/internal/driver"
	"colt/internal/observ"
	"colt/internal/trace"
)

func newFoldCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fold [flags] <batch.toml>",
		Short: "Fold every unit of a batch file",
		Long: `Fold the operations of a TOML batch file. Units are folded in parallel,
operations inside a unit in order. Defaults for --jobs and --emit come from
[fold] in colt.toml.`,
		Args: cobra.ExactArgs(1),
		RunE: runFold,
	}
	cmd.Flags().Int("jobs", -1, "max parallel units (0=auto, default from colt.toml)")
	cmd.Flags().String("emit", "", "output format (text|msgpack, default from colt.toml)")
	cmd.Flags().StringP("output", "o", "", "write the report to a file instead of stdout")
	return cmd
}

func runFold(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if jobs < 0 {
		jobs = s.fold.Jobs
	}
	ujobs, err := safecast.Conv[uint](jobs)
	if err != nil {
		return fmt.Errorf("invalid --jobs %d: %w", jobs, err)
	}
	emit, err := cmd.Flags().GetString("emit")
	if err != nil {
		return fmt.Errorf("failed to get emit flag: %w", err)
	}
	if emit == "" {
		emit = s.fold.Emit
	}
	outPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}

	var timer *observ.Timer
	if s.timings {
		timer = observ.NewTimer()
	}
	ctx := cmd.Context()
	span := trace.Begin(trace.FromContext(ctx), trace.ScopeDriver, "colt.fold", trace.ParentID(ctx))
	defer span.End("")
	ctx = trace.WithSpan(ctx, span)

	doneLoad := timer.Track("load")
	units, err := driver.LoadBatch(args[0])
	doneLoad(args[0])
	if err != nil {
		return err
	}

	report, err := driver.Run(ctx, units, driver.Options{
		Jobs:           ujobs,
		Warn:           s.warn,
		MaxDiagnostics: s.maxDiagnostics,
		Timer:          timer,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", outPath, err)
		}
		defer f.Close()
		out = f
	}
	if err := driver.Emit(out, report, emit); err != nil {
		return err
	}
	if s.timings {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}
	if report.HasErrors() {
		return errHasErrors
	}
	return nil
}
