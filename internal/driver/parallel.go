package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"japy/internal/buildpipeline"
	"japy/internal/dialect"
	"japy/internal/project"
	"japy/internal/transpile"
)

// SourceExt and OutputExt name the input and output file kinds.
const (
	SourceExt = ".japy"
	OutputExt = ".py"
)

// BuildRequest describes one directory build.
type BuildRequest struct {
	SrcDir string
	OutDir string
	// Jobs caps concurrent files; <= 0 means GOMAXPROCS.
	Jobs     int
	Tables   *dialect.Tables
	Cache    *DiskCache
	Progress buildpipeline.ProgressSink
	Timings  *buildpipeline.Timings
	// Logger receives cache warnings; nil discards them.
	Logger   *zap.Logger
}

// FileResult is the outcome for one source file. Paths are relative to
// SrcDir and slash-separated.
type FileResult struct {
	Path    string
	OutPath string
	Cached  bool
	Err     error
}

// BuildResult holds per-file outcomes in sorted path order.
type BuildResult struct {
	Files []FileResult
}

// Failed counts files that did not produce output.
func (r BuildResult) Failed() int {
	n := 0
	for _, f := range r.Files {
		if f.Err != nil {
			n++
		}
	}
	return n
}

// CachedCount counts files served from the disk cache.
func (r BuildResult) CachedCount() int {
	n := 0
	for _, f := range r.Files {
		if f.Cached {
			n++
		}
	}
	return n
}

// Err joins every per-file error, or returns nil.
func (r BuildResult) Err() error {
	var errs []error
	for _, f := range r.Files {
		if f.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.Path, f.Err))
		}
	}
	return errors.Join(errs...)
}

// ListSourceFiles returns every *.japy file under dir, sorted and relative
// to dir. Hidden directories and skipDir (if inside dir) are not descended.
func ListSourceFiles(dir, skipDir string) ([]string, error) {
	var skipAbs string
	if skipDir != "" {
		if abs, err := filepath.Abs(skipDir); err == nil {
			skipAbs = abs
		}
	}
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			if skipAbs != "" {
				if abs, err := filepath.Abs(path); err == nil && abs == skipAbs {
					return filepath.SkipDir
				}
			}
			return nil
		}
		if strings.HasSuffix(path, SourceExt) {
			rel, err := filepath.Rel(dir, path)
			if err != nil {
				return err
			}
			files = append(files, filepath.ToSlash(rel))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// deterministic order
	sort.Strings(files)
	return files, nil
}

// OutputPath maps a source path relative to SrcDir onto OutDir.
func OutputPath(outDir, rel string) string {
	return filepath.Join(outDir, filepath.FromSlash(strings.TrimSuffix(rel, SourceExt)+OutputExt))
}

// TranspileDir transpiles every source file under req.SrcDir in parallel.
// Per-file failures are recorded in the result and do not stop other files;
// the returned error covers listing failures and cancellation only.
func TranspileDir(ctx context.Context, req *BuildRequest) (BuildResult, error) {
	if req == nil {
		return BuildResult{}, fmt.Errorf("missing build request")
	}
	tables := req.Tables
	if tables == nil {
		var err error
		if tables, err = dialect.Load(); err != nil {
			return BuildResult{}, err
		}
	}
	files, err := ListSourceFiles(req.SrcDir, req.OutDir)
	if err != nil {
		return BuildResult{}, fmt.Errorf("failed to list %s: %w", req.SrcDir, err)
	}
	if len(files) == 0 {
		return BuildResult{}, nil
	}
	for _, f := range files {
		buildpipeline.Emit(req.Progress, buildpipeline.Event{File: f, Stage: buildpipeline.StageRead, Status: buildpipeline.StatusQueued})
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	tr := transpile.New(tables)
	tablesHash := project.Digest(tables.Fingerprint())

	// each goroutine owns results[i]; no lock needed
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, rel := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			results[i] = buildOne(req, tr, tablesHash, rel)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return BuildResult{Files: results}, err
	}
	return BuildResult{Files: results}, nil
}

func (r *BuildRequest) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

func buildOne(req *BuildRequest, tr *transpile.Transpiler, tablesHash project.Digest, rel string) FileResult {
	res := FileResult{Path: rel, OutPath: OutputPath(req.OutDir, rel)}
	fail := func(stage buildpipeline.Stage, err error) FileResult {
		res.Err = err
		buildpipeline.Emit(req.Progress, buildpipeline.Event{File: rel, Stage: stage, Status: buildpipeline.StatusError, Err: err})
		return res
	}

	start := time.Now()
	buildpipeline.Emit(req.Progress, buildpipeline.Event{File: rel, Stage: buildpipeline.StageRead, Status: buildpipeline.StatusWorking})
	// #nosec G304 -- path comes from walking the requested source directory
	src, err := os.ReadFile(filepath.Join(req.SrcDir, filepath.FromSlash(rel)))
	if err != nil {
		return fail(buildpipeline.StageRead, fmt.Errorf("failed to read: %w", err))
	}
	req.Timings.Add(buildpipeline.StageRead, time.Since(start))

	start = time.Now()
	buildpipeline.Emit(req.Progress, buildpipeline.Event{File: rel, Stage: buildpipeline.StageTranspile, Status: buildpipeline.StatusWorking})
	key := project.Combine(project.HashBytes(src), tablesHash)
	var payload DiskPayload
	hit, err := req.Cache.Get(key, &payload)
	if err != nil {
		// a corrupt entry is rebuilt and overwritten
		hit = false
	}
	out := payload.Output
	if hit {
		res.Cached = true
	} else {
		out = tr.Transpile(string(src))
		if err := req.Cache.Put(key, &DiskPayload{
			SourcePath:   rel,
			SourceHash:   project.HashBytes(src),
			TablesHash:   tablesHash,
			Output:       out,
			TranspiledAt: time.Now().UTC(),
		}); err != nil {
			req.logger().Warn("cache write failed", zap.String("file", rel), zap.Error(err))
		}
	}
	req.Timings.Add(buildpipeline.StageTranspile, time.Since(start))

	start = time.Now()
	buildpipeline.Emit(req.Progress, buildpipeline.Event{File: rel, Stage: buildpipeline.StageWrite, Status: buildpipeline.StatusWorking})
	if err := os.MkdirAll(filepath.Dir(res.OutPath), 0o755); err != nil {
		return fail(buildpipeline.StageWrite, fmt.Errorf("failed to create output directory: %w", err))
	}
	if err := os.WriteFile(res.OutPath, []byte(out), 0o644); err != nil { //nolint:gosec // generated sources are world-readable
		return fail(buildpipeline.StageWrite, fmt.Errorf("failed to write: %w", err))
	}
	elapsed := time.Since(start)
	req.Timings.Add(buildpipeline.StageWrite, elapsed)

	status := buildpipeline.StatusDone
	if res.Cached {
		status = buildpipeline.StatusCached
	}
	buildpipeline.Emit(req.Progress, buildpipeline.Event{File: rel, Stage: buildpipeline.StageWrite, Status: status, Elapsed: elapsed})
	return res
}
