package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// autoMode is an auto|on|off flag value. Auto defers to a probe, usually
// whether stdout is a terminal.
type autoMode string

const (
	modeAuto autoMode = "auto"
	modeOn   autoMode = "on"
	modeOff  autoMode = "off"
)

var _ pflag.Value = (*autoMode)(nil)

func newAutoMode(m *autoMode) *autoMode {
	*m = modeAuto
	return m
}

func (m *autoMode) String() string { return string(*m) }

func (m *autoMode) Type() string { return "auto|on|off" }

func (m *autoMode) Set(value string) error {
	switch v := autoMode(strings.TrimSpace(strings.ToLower(value))); v {
	case "":
		*m = modeAuto
	case modeAuto, modeOn, modeOff:
		*m = v
	default:
		return fmt.Errorf("invalid value %q (expected auto|on|off)", value)
	}
	return nil
}

// enabled resolves the mode; probe only runs in auto mode.
func (m autoMode) enabled(probe func() bool) bool {
	switch m {
	case modeOn:
		return true
	case modeOff:
		return false
	default:
		return probe()
	}
}

func stdoutIsTerminal() bool { return isTerminal(os.Stdout) }
