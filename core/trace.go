package core

import (
	"errors"
	"runtime"
	"strconv"
	"strings"
)

const maxStackDepth = 32

// StackTracer is implemented by errors that carry the stack of the
// place they were created at.
type StackTracer interface {
	StackTrace() string
}

// stackError attaches the creation stack to an error
type stackError struct {
	err error
	pcs []uintptr
}

func (e *stackError) Error() string { return e.err.Error() }

func (e *stackError) Unwrap() error { return e.err }

// StackTrace renders the captured frames, one function per line
// followed by its tab-indented file:line.
func (e *stackError) StackTrace() string {
	return formatFrames(e.pcs)
}

// WithStack annotates err with the stack of its caller.
// It returns nil when err is nil and err itself when it already
// carries a stack.
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	var st StackTracer
	if errors.As(err, &st) {
		return err
	}
	return &stackError{err: err, pcs: callers(3)}
}

// CurrentStack returns the stack of the calling goroutine, skipping
// skip frames above the caller of CurrentStack.
func CurrentStack(skip int) string {
	return formatFrames(callers(3 + skip))
}

// Trace renders the trace segment appended to exception messages.
// A nil error yields an empty trace. Otherwise the error text comes
// first, followed by the attached stack if the error has one.
func Trace(err error) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(err.Error())
	b.WriteByte('\n')

	var st StackTracer
	if errors.As(err, &st) {
		b.WriteString(st.StackTrace())
	}
	return b.String()
}

func callers(skip int) []uintptr {
	pcs := make([]uintptr, maxStackDepth)
	n := runtime.Callers(skip, pcs)
	return pcs[:n]
}

func formatFrames(pcs []uintptr) string {
	if len(pcs) == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(pcs)
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			b.WriteString(frame.Function)
			b.WriteString("\n\t")
			b.WriteString(frame.File)
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(frame.Line))
			b.WriteByte('\n')
		}
		if !more {
			break
		}
	}
	return b.String()
}
