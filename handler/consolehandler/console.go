package consolehandler

import (
	"bytes"
	"io"
	"os"
)

// ConsoleHandler echoes formatted lines to a console stream
type ConsoleHandler struct {
	writer  io.Writer
	buf     bytes.Buffer
	written uint64
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	h := &ConsoleHandler{writer: cfg.Writer}
	h.buf.Grow(256)
	return h
}

// WriteLine writes line with leading and trailing newlines removed,
// then terminates it with exactly one newline. Newlines inside the
// line are kept.
func (h *ConsoleHandler) WriteLine(line []byte) error {
	h.buf.Reset()
	h.buf.Write(bytes.Trim(line, "\n"))
	h.buf.WriteByte('\n')

	if _, err := h.writer.Write(h.buf.Bytes()); err != nil {
		return err
	}
	h.written++
	return nil
}

// Written returns the number of lines echoed so far
func (h *ConsoleHandler) Written() uint64 {
	return h.written
}
