// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	charm "github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
)

var _logHandler *charm.Logger

// set up our default log handler and formatting. Logs go to stderr so query
// output on stdout stays pipeable.
func init() {
	styles := charm.DefaultStyles()
	styles.Keys["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true)
	styles.Values["path"] = lipgloss.NewStyle().Faint(true)

	_logHandler = charm.NewWithOptions(os.Stderr, charm.Options{
		ReportTimestamp: true,
		TimeFormat:      time.StampMilli,
		Level:           charm.InfoLevel,
	})
	_logHandler.SetStyles(styles)

	// JSON when we're not attached to a terminal.
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		_logHandler.SetFormatter(charm.JSONFormatter)
		_logHandler.SetTimeFormat(time.RFC3339)
	}

	slog.SetDefault(slog.New(_logHandler))
}

type logconfig struct {
	Verbose bool `env:"LVLINDEX_VERBOSE" help:"Increase log verbosity."`
}

func (c *logconfig) Run() error {
	if c.Verbose {
		_logHandler.SetLevel(charm.DebugLevel)
	}
	return nil
}
