package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"japy/internal/buildpipeline"
	"japy/internal/driver"
	"japy/internal/project"
)

// cacheApp names the directory under the user cache root.
const cacheApp = "japy"

var buildUIMode autoMode

var buildCmd = &cobra.Command{
	Use:   "build [flags] [dir]",
	Short: "Transpile every .japy file under a directory",
	Long: `Build transpiles every .japy file under dir into a mirrored tree of .py
files. Inside a project the [build] section of japy.toml supplies defaults for
the source directory, output directory, parallelism and cache.`,
	Args: cobra.MaximumNArgs(1),
	RunE: buildExecution,
}

func init() {
	buildCmd.Flags().StringP("output", "o", "", "output directory (default: [build].out or ./build)")
	buildCmd.Flags().IntP("jobs", "j", 0, "max parallel files (0 = GOMAXPROCS)")
	buildCmd.Flags().Bool("no-cache", false, "disable the transpile cache")
	buildCmd.Flags().Bool("clean-cache", false, "drop all cached output before building")
	buildCmd.Flags().Var(newAutoMode(&buildUIMode), "ui", "progress UI (auto|on|off)")
}

func buildExecution(cmd *cobra.Command, args []string) error {
	outFlag, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	cleanCache, err := cmd.Flags().GetBool("clean-cache")
	if err != nil {
		return err
	}
	if jobs < 0 {
		return fmt.Errorf("--jobs must be >= 0")
	}

	manifest, manifestFound, err := project.LoadManifest(".")
	if err != nil {
		return err
	}
	cfg := manifest.Config.Build
	srcDir := manifest.Resolve(cfg.Src)
	if len(args) == 1 {
		srcDir = args[0]
	}
	outDir := manifest.Resolve(cfg.Out)
	if outFlag != "" {
		outDir = outFlag
	}
	if !cmd.Flags().Changed("jobs") {
		jobs = cfg.Jobs
	}

	var cache *driver.DiskCache
	if !noCache && cfg.CacheEnabled() {
		cache, err = driver.OpenDiskCache(cacheApp)
		if err != nil {
			// building without a cache is still correct
			logger.Warn("disk cache unavailable", zap.Error(err))
			cache = nil
		} else if cleanCache {
			if err := cache.DropAll(); err != nil {
				return fmt.Errorf("failed to clean cache: %w", err)
			}
		}
	}

	logger.Debug("build",
		zap.String("src", srcDir),
		zap.String("out", outDir),
		zap.Int("jobs", jobs),
		zap.Bool("manifest", manifestFound),
		zap.String("cache", cache.Dir()),
	)

	files, err := driver.ListSourceFiles(srcDir, outDir)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", srcDir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files under %s", driver.SourceExt, srcDir)
	}

	var timings buildpipeline.Timings
	req := &driver.BuildRequest{
		SrcDir:  srcDir,
		OutDir:  outDir,
		Jobs:    jobs,
		Tables:  tables,
		Cache:   cache,
		Timings: &timings,
		Logger:  logger,
	}

	start := time.Now()
	var res driver.BuildResult
	// auto mode draws only on a terminal and never under --quiet
	quiet := isQuiet(cmd)
	if buildUIMode.enabled(func() bool { return !quiet && stdoutIsTerminal() }) {
		res, err = runBuildWithUI(cmd.Context(), "japy build", files, req)
	} else {
		req.Progress = buildpipeline.FuncSink(func(ev buildpipeline.Event) {
			if ev.Status == buildpipeline.StatusError {
				logger.Debug("file failed", zap.String("file", ev.File), zap.String("stage", string(ev.Stage)), zap.Error(ev.Err))
			}
		})
		res, err = driver.TranspileDir(cmd.Context(), req)
	}
	wall := time.Since(start)
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	for _, f := range res.Files {
		if f.Err != nil {
			color.New(color.FgRed).Fprintf(errOut, "error: %s: %v\n", f.Path, f.Err)
		}
	}
	if !isQuiet(cmd) {
		fmt.Fprintf(cmd.OutOrStdout(), "built %d files into %s (%d cached, %d failed)\n",
			len(res.Files), outDir, res.CachedCount(), res.Failed())
	}
	if wantTimings(cmd) {
		printStageTimings(errOut, &timings, wall)
	}
	if res.Failed() > 0 {
		return errors.New("build failed")
	}
	return nil
}
