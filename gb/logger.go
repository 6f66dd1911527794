package gb

import (
	"log"
	"os"
)

// Logger decouples the core from any particular logging destination,
// injected at construction instead of called through a package-level
// global.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// StdLogger is the default Logger, backed by the standard library's log
// package.
type StdLogger struct {
	*log.Logger
}

// NewStdLogger builds a StdLogger writing to stderr with the given prefix.
func NewStdLogger(prefix string) *StdLogger {
	return &StdLogger{log.New(os.Stderr, prefix, log.LstdFlags)}
}

func (l *StdLogger) Infof(format string, args ...any)  { l.Printf("INFO  "+format, args...) }
func (l *StdLogger) Warnf(format string, args ...any)  { l.Printf("WARN  "+format, args...) }
func (l *StdLogger) Errorf(format string, args ...any) { l.Printf("ERROR "+format, args...) }

// NopLogger discards everything; the zero-cost default for library callers
// that don't want emulator diagnostics on stderr.
type NopLogger struct{}

func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
