// Package processing drives order processing and reports its progress.
package processing

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
)

// Sink accepts one line of text and displays or records it
type Sink interface {
	Report(line string) error
}

// SinkFunc adapts a plain function to Sink
type SinkFunc func(line string) error

func (f SinkFunc) Report(line string) error { return f(line) }

// WriterSink writes each line to an io.Writer
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink constructs a WriterSink over w
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

func (s *WriterSink) Report(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := fmt.Fprintln(s.w, line)
	return err
}

// LogSink emits each line as an info record
type LogSink struct {
	logger *slog.Logger
}

// NewLogSink constructs a LogSink; a nil logger means slog.Default()
func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger}
}

func (s *LogSink) Report(line string) error {
	s.logger.Info(line)
	return nil
}

// compile-time assertions
var (
	_ Sink = (*WriterSink)(nil)
	_ Sink = (*LogSink)(nil)
	_ Sink = SinkFunc(nil)
)
