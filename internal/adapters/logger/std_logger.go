// Package logger adapts github.com/baditaflorin/l to internal/ports.Logger.
// Grounded on the teacher's internal/adapters/logger/std_logger.go.
package logger

import (
	"os"

	"github.com/baditaflorin/l"

	"github.com/baditaflorin/go_topk_wordcount/internal/ports"
)

// StdLogger adapts an l.Logger to the ports.Logger interface.
type StdLogger struct {
	logger l.Logger
}

// New creates a standard logger adapter with defaults suited to a
// long-running master or worker process: async writes so logging never
// blocks the reader/sender/counting hot paths.
func New() (ports.Logger, error) {
	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:      os.Stderr,
		JsonFormat:  false,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,
		MaxFileSize: 10 * 1024 * 1024,
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &StdLogger{logger: logger}, nil
}

// NewCustom creates a standard logger adapter with a caller-supplied
// configuration.
func NewCustom(config l.Config) (ports.Logger, error) {
	logger, err := l.NewStandardFactory().CreateLogger(config)
	if err != nil {
		return nil, err
	}
	return &StdLogger{logger: logger}, nil
}

// FromExisting wraps an already-constructed l.Logger.
func FromExisting(logger l.Logger) ports.Logger {
	return &StdLogger{logger: logger}
}

func (s *StdLogger) Debug(msg string, keysAndValues ...interface{}) {
	s.logger.Debug(msg, keysAndValues...)
}

func (s *StdLogger) Info(msg string, keysAndValues ...interface{}) {
	s.logger.Info(msg, keysAndValues...)
}

func (s *StdLogger) Warn(msg string, keysAndValues ...interface{}) {
	s.logger.Warn(msg, keysAndValues...)
}

func (s *StdLogger) Error(msg string, keysAndValues ...interface{}) {
	s.logger.Error(msg, keysAndValues...)
}

func (s *StdLogger) Close() error {
	return s.logger.Close()
}
