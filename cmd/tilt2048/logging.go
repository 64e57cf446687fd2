package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// newLogger builds the CLI logger at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilt2048",
		Level:           level,
	}), nil
}

// logToFile moves the default logger to ~/.tilt2048/tilt2048.log so log
// lines do not paint over the TUI. The returned func closes the file.
func logToFile() (func(), error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	dir := filepath.Join(home, ".tilt2048")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	f, err := os.OpenFile(filepath.Join(dir, "tilt2048.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	prev := log.Default()
	log.SetDefault(logger)

	return func() {
		log.SetDefault(prev)
		f.Close()
	}, nil
}

// interactiveLog redirects logging to the log file for the length of a TUI
// run. If the file cannot be opened, logging is dropped rather than drawn
// over the screen.
func interactiveLog() (restore func()) {
	closeLog, err := logToFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		prev := log.Default()
		log.SetDefault(log.New(io.Discard))
		return func() { log.SetDefault(prev) }
	}
	return closeLog
}
