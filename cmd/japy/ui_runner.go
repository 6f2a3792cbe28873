package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"japy/internal/buildpipeline"
	"japy/internal/driver"
	"japy/internal/ui"
)

type buildOutcome struct {
	result driver.BuildResult
	err    error
}

// runBuildWithUI runs the build in the background and renders its events
// until the event channel closes.
func runBuildWithUI(ctx context.Context, title string, files []string, req *driver.BuildRequest) (driver.BuildResult, error) {
	if req == nil {
		return driver.BuildResult{}, fmt.Errorf("missing build request")
	}
	events := make(chan buildpipeline.Event, 256)
	outcomeCh := make(chan buildOutcome, 1)

	go func() {
		reqCopy := *req
		reqCopy.Progress = buildpipeline.ChannelSink{Ch: events}
		res, err := driver.TranspileDir(ctx, &reqCopy)
		close(events)
		outcomeCh <- buildOutcome{result: res, err: err}
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout), tea.WithContext(ctx))
	_, uiErr := program.Run()
	if uiErr != nil {
		// keep the build from blocking on a full channel
		go func() {
			for range events {
			}
		}()
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
