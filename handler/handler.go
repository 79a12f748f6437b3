package handler

import (
	"sync"

	"github.com/philipp01105/tierlog/core"
)

// Emitter is the write side of a router as seen by bridges
type Emitter interface {
	// Enabled reports whether a message at level would be written
	Enabled(level core.Level) bool

	// Log formats msg and writes it to every file routed for level
	Log(level core.Level, msg string) error
}

// LockedEmitter serializes all calls to the wrapped Emitter with one mutex
type LockedEmitter struct {
	mu sync.Mutex
	e  Emitter
}

// Synchronized wraps e so it can be shared between goroutines.
// An Emitter that is already a *LockedEmitter is returned unchanged.
func Synchronized(e Emitter) *LockedEmitter {
	if le, ok := e.(*LockedEmitter); ok {
		return le
	}
	return &LockedEmitter{e: e}
}

// Enabled reports whether a message at level would be written
func (l *LockedEmitter) Enabled(level core.Level) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.e.Enabled(level)
}

// Log forwards to the wrapped Emitter while holding the lock
func (l *LockedEmitter) Log(level core.Level, msg string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.e.Log(level, msg)
}

// Do runs fn with exclusive access to the wrapped Emitter
func (l *LockedEmitter) Do(fn func(e Emitter) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return fn(l.e)
}
