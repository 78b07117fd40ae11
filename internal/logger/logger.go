// Package logger is the logging interface shared by the schedule service
// components. The console implementation prefixes each line with its level.
package logger

import (
	"io"
	"log"
	"strings"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warning(format string, args ...any)
	Error(format string, args ...any)
}

// StandardLogger writes to a stdlib *log.Logger. Debug lines are dropped
// unless debug output was enabled.
type StandardLogger struct {
	logger *log.Logger
	debug  bool
}

func NewStandardLogger(l *log.Logger, debug bool) *StandardLogger {
	return &StandardLogger{logger: l, debug: debug}
}

// New builds the service console logger: UTC timestamps, level from the
// LOG_LEVEL value ("debug" enables debug lines).
func New(w io.Writer, level string) *StandardLogger {
	debug := strings.EqualFold(strings.TrimSpace(level), "debug")
	return NewStandardLogger(log.New(w, "", log.LstdFlags|log.LUTC), debug)
}

func (s *StandardLogger) Debug(format string, args ...any) {
	if s.debug {
		s.logger.Printf("[DEBUG] "+format, args...)
	}
}

func (s *StandardLogger) Info(format string, args ...any) {
	s.logger.Printf("[INFO] "+format, args...)
}

func (s *StandardLogger) Warning(format string, args ...any) {
	s.logger.Printf("[WARNING] "+format, args...)
}

func (s *StandardLogger) Error(format string, args ...any) {
	s.logger.Printf("[ERROR] "+format, args...)
}

// NopLogger discards everything.
type NopLogger struct{}

func (NopLogger) Debug(string, ...any)   {}
func (NopLogger) Info(string, ...any)    {}
func (NopLogger) Warning(string, ...any) {}
func (NopLogger) Error(string, ...any)   {}

var (
	_ Logger = (*StandardLogger)(nil)
	_ Logger = NopLogger{}
)
