package logger

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/tierlog/core"
	"github.com/philipp01105/tierlog/formatter"
	"github.com/philipp01105/tierlog/handler"
	"github.com/philipp01105/tierlog/handler/consolehandler"
	"github.com/philipp01105/tierlog/handler/filehandler"
)

// slot indices
const (
	mainFile = iota
	infoFile
	errorFile
	numFiles
)

// Logger routes each message to the main file and to one tier file.
// It is not safe for concurrent use; see Shared.
type Logger struct {
	slots           [numFiles]*filehandler.Slot
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	console         *consolehandler.ConsoleHandler
	shared          *handler.LockedEmitter
	sequential      bool
	echo            bool
	debug           bool
	now             func() time.Time
	entry           core.Entry
	buf             bytes.Buffer
}

// Paths lists the three files of a Logger
type Paths struct {
	Main  string
	Info  string
	Error string
}

// Stats holds the counters of the three slots and of the console echo
type Stats struct {
	Main  filehandler.Stats
	Info  filehandler.Stats
	Error filehandler.Stats
	// Echoed counts lines written to the console
	Echoed uint64
}

// New creates a Logger. The output directory is created if it is
// missing; no file is opened until the first write or Open.
func New(cfg Config) (*Logger, error) {
	if cfg.Name == "" {
		return nil, ErrNameRequired
	}
	if err := applyDefaults(&cfg); err != nil {
		return nil, err
	}

	dir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, &DirectoryCreationError{Dir: cfg.Dir, Err: err}
	}
	if err := ensureDir(dir); err != nil {
		return nil, err
	}

	l := &Logger{
		formatter:  cfg.Formatter,
		sequential: cfg.Sequential,
		echo:       cfg.Echo,
		debug:      cfg.Debug,
		now:        cfg.Now,
	}
	l.slots[mainFile] = filehandler.NewSlot(filepath.Join(dir, cfg.Name+"."+cfg.Ext), cfg.Mode)
	l.slots[infoFile] = filehandler.NewSlot(filepath.Join(dir, cfg.Name+cfg.InfoPostfix+"."+cfg.Ext), cfg.Mode)
	l.slots[errorFile] = filehandler.NewSlot(filepath.Join(dir, cfg.Name+cfg.ErrorPostfix+"."+cfg.Ext), cfg.Mode)
	if cfg.Echo {
		l.console = consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{Writer: cfg.Console})
	}
	// Cache BufferFormatter for the single-buffer fast path
	l.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	l.shared = handler.Synchronized(l)
	l.buf.Grow(256)

	return l, nil
}

// ensureDir creates dir without creating missing parents
func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return &DirectoryCreationError{Dir: dir, Err: syscall.ENOTDIR}
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return &DirectoryCreationError{Dir: dir, Err: err}
	}
	if err := os.Mkdir(dir, 0755); err != nil && !os.IsExist(err) {
		return &DirectoryCreationError{Dir: dir, Err: err}
	}
	return nil
}

// Paths returns the absolute paths of the three files
func (l *Logger) Paths() Paths {
	return Paths{
		Main:  l.slots[mainFile].Path(),
		Info:  l.slots[infoFile].Path(),
		Error: l.slots[errorFile].Path(),
	}
}

// IsOpen reports which of the three handles are currently open
func (l *Logger) IsOpen() (main, info, errTier bool) {
	return l.slots[mainFile].IsOpen(), l.slots[infoFile].IsOpen(), l.slots[errorFile].IsOpen()
}

// Stats returns the per-file counters
func (l *Logger) Stats() Stats {
	st := Stats{
		Main:  l.slots[mainFile].Stats(),
		Info:  l.slots[infoFile].Stats(),
		Error: l.slots[errorFile].Stats(),
	}
	if l.console != nil {
		st.Echoed = l.console.Written()
	}
	return st
}

// Shared returns the one guarded emitter of this Logger. Goroutines,
// slog handlers and zap cores that share the Logger must all go through
// it so that a single mutex serializes every write.
func (l *Logger) Shared() *handler.LockedEmitter {
	return l.shared
}

// Open opens every handle that is currently closed. If one fails, the
// handles opened by this call are closed again before returning.
func (l *Logger) Open() error {
	var opened []*filehandler.Slot
	for _, s := range l.slots {
		ok, err := s.EnsureOpen()
		if err != nil {
			for _, o := range opened {
				err = multierr.Append(err, o.Close())
			}
			return err
		}
		if ok {
			opened = append(opened, s)
		}
	}
	return nil
}

// Close closes every open handle. It is safe to call repeatedly.
func (l *Logger) Close() error {
	var err error
	for _, s := range l.slots {
		err = multierr.Append(err, s.Close())
	}
	return err
}

// SetDebug toggles whether DEBUG messages are written
func (l *Logger) SetDebug(enabled bool) {
	l.debug = enabled
}

// Enabled reports whether a message at level would be written by the
// level-specific methods
func (l *Logger) Enabled(level Level) bool {
	if !level.Valid() {
		return false
	}
	return level != DebugLevel || l.debug
}

// Log formats msg and writes it to the main file and to the tier file
// for level. It is not subject to debug gating.
func (l *Logger) Log(level Level, msg string) error {
	if !level.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}

	l.entry.Time = l.now()
	l.entry.Level = level
	l.entry.Message = msg
	line, err := l.render()
	if err != nil {
		return err
	}

	if err := l.write(l.slots[mainFile], line); err != nil {
		return err
	}

	tier := l.slots[errorFile]
	if level.InfoTier() {
		tier = l.slots[infoFile]
	}
	if err := l.write(tier, line); err != nil {
		return err
	}

	if l.echo {
		return l.console.WriteLine(line)
	}
	return nil
}

// render formats l.entry, into l.buf when the formatter supports it
func (l *Logger) render() ([]byte, error) {
	if l.bufferFormatter != nil {
		l.buf.Reset()
		l.bufferFormatter.FormatEntry(&l.entry, &l.buf)
		return l.buf.Bytes(), nil
	}
	line, err := l.formatter.Format(&l.entry)
	if err != nil {
		return nil, fmt.Errorf("format entry: %w", err)
	}
	return line, nil
}

// write appends line to s, closing it right after in sequential mode
func (l *Logger) write(s *filehandler.Slot, line []byte) error {
	if l.sequential {
		return s.WriteOnce(line)
	}
	return s.Write(line)
}

// Debug logs a debug message if debug output is enabled
func (l *Logger) Debug(msg string) error {
	if !l.debug {
		return nil
	}
	return l.Log(DebugLevel, msg)
}

// DebugAt logs msg at level, but only if debug output is enabled
func (l *Logger) DebugAt(level Level, msg string) error {
	if !l.debug {
		return nil
	}
	return l.Log(level, msg)
}

// Info logs an info message
func (l *Logger) Info(msg string) error {
	return l.Log(InfoLevel, msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) error {
	return l.Log(WarnLevel, msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) error {
	return l.Log(ErrorLevel, msg)
}

// Fatal logs a fatal message. It does not exit the program.
func (l *Logger) Fatal(msg string) error {
	return l.Log(FatalLevel, msg)
}

// Exception logs msg followed by a newline and the trace of err.
// A nil err produces an empty trace. Errors annotated with
// core.WithStack contribute their creation stack.
func (l *Logger) Exception(msg string, err error) error {
	return l.Log(ExceptionLevel, msg+"\n"+core.Trace(err))
}

// LogPanic must be deferred directly. When the surrounding function is
// panicking it logs msg at EXCEPTION with the panic value and the stack
// of the panicking goroutine, then resumes the panic.
func (l *Logger) LogPanic(msg string) {
	r := recover()
	if r == nil {
		return
	}
	trace := fmt.Sprintf("panic: %v\n%s", r, core.CurrentStack(1))
	// The panic carries the root cause; a write failure here is dropped.
	_ = l.Log(ExceptionLevel, msg+"\n"+trace)
	panic(r)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) error {
	if !l.debug {
		return nil
	}
	return l.Log(DebugLevel, fmt.Sprintf(format, args...))
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) error {
	return l.Log(InfoLevel, fmt.Sprintf(format, args...))
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) error {
	return l.Log(WarnLevel, fmt.Sprintf(format, args...))
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) error {
	return l.Log(ErrorLevel, fmt.Sprintf(format, args...))
}

// Fatalf logs a fatal message with formatting
func (l *Logger) Fatalf(format string, args ...interface{}) error {
	return l.Log(FatalLevel, fmt.Sprintf(format, args...))
}
