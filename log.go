package tideterm

import (
	"os"

	"github.com/charmbracelet/log"
)

// Logger is the logging seam every package in this module accepts
// explicitly instead of reaching for a package-level global, per the
// "no process-wide state" design rule.
type Logger = *log.Logger

// NewLogger returns a charmbracelet/log logger writing to stderr with the
// module's prefix, ready to hand to Terminal, frame.Orchestrator, and the
// rest of the core.
func NewLogger(name string) Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          name,
		ReportTimestamp: true,
	})
	return l
}

// DiscardLogger returns a logger that drops everything, for tests that
// don't want log noise but still need to satisfy the Logger parameter.
func DiscardLogger() Logger {
	l := log.New(discardWriter{})
	l.SetLevel(log.FatalLevel + 1)
	return l
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }
