package sloghandler

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/philipp01105/tierlog/core"
	"github.com/philipp01105/tierlog/handler"
)

// Extra slog levels for the two severities slog has no name for
const (
	LevelException = slog.LevelError + 2
	LevelFatal     = slog.LevelError + 4
)

// SlogHandler is an adapter that implements slog.Handler on top of an Emitter.
// Attributes are appended to the message as key=value pairs.
type SlogHandler struct {
	emitter *handler.LockedEmitter
	attrs   string
	group   string
}

// NewSlogHandler creates a new slog.Handler adapter writing through e.
// Every handler, zap core and direct caller sharing one Emitter must use
// the same LockedEmitter; logger.Logger.Shared returns it.
func NewSlogHandler(e *handler.LockedEmitter) *SlogHandler {
	return &SlogHandler{emitter: e}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.emitter.Enabled(slogLevelToCore(level))
}

// Handle renders the record as a message and passes it to the emitter.
// The record time is not used; the router stamps lines with its own clock.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(s.attrs)

	record.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, s.group, a)
		return true
	})

	return s.emitter.Log(slogLevelToCore(record.Level), b.String())
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(s.attrs)
	for _, a := range attrs {
		appendAttr(&b, s.group, a)
	}
	return &SlogHandler{
		emitter: s.emitter,
		attrs:   b.String(),
		group:   s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		emitter: s.emitter,
		attrs:   s.attrs,
		group:   newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= LevelFatal:
		return core.FatalLevel
	case level >= LevelException:
		return core.ExceptionLevel
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendAttr writes " key=value", flattening groups into dotted keys.
func appendAttr(b *strings.Builder, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	switch a.Value.Kind() {
	case slog.KindGroup:
		for _, ga := range a.Value.Group() {
			appendAttr(b, key, ga)
		}
	case slog.KindTime:
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(a.Value.Time().Format(time.RFC3339))
	default:
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(a.Value.String())
	}
}
