package main

import (
	"fmt"
	"io"
	"time"

	"japy/internal/buildpipeline"
	"japy/internal/observ"
)

func printTimer(out io.Writer, timer *observ.Timer) {
	if out == nil || timer == nil {
		return
	}
	if _, err := io.WriteString(out, timer.Summary()); err != nil {
		panic(err)
	}
}

// printStageTimings reports cumulative per-stage time across all files of a
// build. Stages run in parallel, so the sum can exceed wall time.
func printStageTimings(out io.Writer, timings *buildpipeline.Timings, wall time.Duration) {
	if out == nil || timings == nil {
		return
	}
	stages := []struct {
		stage buildpipeline.Stage
		label string
	}{
		{buildpipeline.StageRead, "read"},
		{buildpipeline.StageTranspile, "transpiled"},
		{buildpipeline.StageWrite, "wrote"},
	}
	for _, s := range stages {
		if !timings.Has(s.stage) {
			continue
		}
		if _, err := fmt.Fprintf(out, "%s %.1f ms\n", s.label, toMillis(timings.Duration(s.stage))); err != nil {
			panic(err)
		}
	}
	if _, err := fmt.Fprintf(out, "wall %.1f ms\n", toMillis(wall)); err != nil {
		panic(err)
	}
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
