package zaphandler

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/tierlog/core"
	"github.com/philipp01105/tierlog/handler"
)

// Core implements zapcore.Core on top of an Emitter. Fields are rendered
// as trailing key=value pairs sorted by key, and a captured stack is
// appended on its own lines.
type Core struct {
	zapcore.LevelEnabler
	emitter *handler.LockedEmitter
	fields  []zapcore.Field
}

// NewCore creates a zapcore.Core writing through e. A nil enabler lets
// every level through to the emitter's own gating.
func NewCore(e *handler.LockedEmitter, enab zapcore.LevelEnabler) *Core {
	if enab == nil {
		enab = zapcore.DebugLevel
	}
	return &Core{
		LevelEnabler: enab,
		emitter:      e,
	}
}

// NewLogger returns a *zap.Logger backed by a Core for e
func NewLogger(e *handler.LockedEmitter, opts ...zap.Option) *zap.Logger {
	return zap.New(NewCore(e, nil), opts...)
}

// Enabled combines the zap level enabler with the emitter's gating
func (c *Core) Enabled(level zapcore.Level) bool {
	return c.LevelEnabler.Enabled(level) && c.emitter.Enabled(zapLevelToCore(level))
}

// With returns a Core carrying additional fields
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	newFields := make([]zapcore.Field, len(c.fields), len(c.fields)+len(fields))
	copy(newFields, c.fields)
	newFields = append(newFields, fields...)
	return &Core{
		LevelEnabler: c.LevelEnabler,
		emitter:      c.emitter,
		fields:       newFields,
	}
}

// Check adds the core to ce when the entry's level is enabled
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write renders the entry and its fields and passes it to the emitter.
// Entries the emitter would gate, such as DEBUG with debug output off,
// are dropped even when Write is called without Check.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	level := zapLevelToCore(ent.Level)
	if !c.emitter.Enabled(level) {
		return nil
	}

	var b strings.Builder
	b.WriteString(ent.Message)

	if len(c.fields)+len(fields) > 0 {
		enc := zapcore.NewMapObjectEncoder()
		for _, f := range c.fields {
			f.AddTo(enc)
		}
		for _, f := range fields {
			f.AddTo(enc)
		}

		keys := make([]string, 0, len(enc.Fields))
		for k := range enc.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			b.WriteByte(' ')
			b.WriteString(k)
			b.WriteByte('=')
			fmt.Fprint(&b, enc.Fields[k])
		}
	}

	if ent.Stack != "" {
		b.WriteByte('\n')
		b.WriteString(ent.Stack)
	}

	return c.emitter.Log(level, b.String())
}

// Sync is a no-op; every write reaches the file before Log returns.
func (c *Core) Sync() error {
	return nil
}

// zapLevelToCore converts a zapcore.Level to a core.Level
func zapLevelToCore(level zapcore.Level) core.Level {
	switch {
	case level >= zapcore.FatalLevel:
		return core.FatalLevel
	case level >= zapcore.DPanicLevel:
		return core.ExceptionLevel
	case level >= zapcore.ErrorLevel:
		return core.ErrorLevel
	case level >= zapcore.WarnLevel:
		return core.WarnLevel
	case level >= zapcore.InfoLevel:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}
