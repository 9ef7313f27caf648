// Package logging builds the leveled console logger used for diagnostics.
// Report output goes to stdout; logs go wherever the caller points them,
// normally stderr.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Prefix is shown in front of every log line.
const Prefix = "epicsync"

// New returns a logger writing to w at the named level.
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          Prefix,
		ReportTimestamp: lvl <= log.DebugLevel,
	}), nil
}

// Discard returns a logger that drops everything. Useful for tests.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
