package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"japy/internal/prof"
)

var profSession *prof.Session

// setupProfiling starts the profilers requested by the persistent flags.
func setupProfiling(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	var opts prof.Options
	var err error
	if opts.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if opts.Mem, err = flags.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if opts.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !opts.Enabled() {
		return nil
	}
	s, err := prof.Start(opts)
	if err != nil {
		return err
	}
	profSession = s
	logger.Debug("profiling", zap.String("cpu", opts.CPU), zap.String("mem", opts.Mem), zap.String("trace", opts.Trace))
	return nil
}

// stopProfiling is safe to call more than once and without a session.
func stopProfiling() {
	if err := profSession.Stop(); err != nil {
		logger.Warn("failed to finish profiles", zap.Error(err))
	}
	profSession = nil
}
