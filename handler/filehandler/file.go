package filehandler

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
)

// OpenMode selects how a slot opens its file the first time
type OpenMode int

const (
	// Append keeps existing content and adds lines at the end (default)
	Append OpenMode = iota
	// Truncate empties the file on the first open of the slot. Later
	// reopens of the same slot append, so sequential mode does not
	// wipe earlier lines.
	Truncate
)

// String returns the string representation of the mode
func (m OpenMode) String() string {
	switch m {
	case Append:
		return "append"
	case Truncate:
		return "truncate"
	default:
		return "unknown"
	}
}

// ParseOpenMode converts "append"/"a" or "truncate"/"w" to an OpenMode
func ParseOpenMode(s string) (OpenMode, error) {
	switch s {
	case "", "append", "a":
		return Append, nil
	case "truncate", "w":
		return Truncate, nil
	default:
		return Append, fmt.Errorf("unknown open mode %q", s)
	}
}

// state is the lifecycle state of a slot
type state uint8

const (
	closed state = iota
	open
)

// Slot owns at most one open handle to a fixed path. It moves between
// two states: closed (no resource) and open (exclusive *os.File).
// A Slot is not safe for concurrent use.
type Slot struct {
	path      string
	mode      OpenMode
	state     state
	file      *os.File
	truncated bool
	stats     Stats
}

// NewSlot creates a closed slot for path
func NewSlot(path string, mode OpenMode) *Slot {
	return &Slot{path: path, mode: mode}
}

// Path returns the file path the slot writes to
func (s *Slot) Path() string {
	return s.path
}

// IsOpen reports whether the slot currently holds an open handle
func (s *Slot) IsOpen() bool {
	return s.state == open
}

// EnsureOpen opens the file if the slot is closed. The first return
// value is true when this call performed the open.
func (s *Slot) EnsureOpen() (bool, error) {
	if s.state == open {
		return false, nil
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if s.mode == Truncate && !s.truncated {
		flags |= os.O_TRUNC
	}

	file, err := os.OpenFile(s.path, flags, 0644)
	if err != nil {
		return false, &FileOpenError{Path: s.path, Err: err}
	}

	s.file = file
	s.state = open
	s.truncated = true
	s.stats.Opens++
	return true, nil
}

// Write appends p to the file, opening the slot first if needed
func (s *Slot) Write(p []byte) error {
	if _, err := s.EnsureOpen(); err != nil {
		return err
	}

	n, err := s.file.Write(p)
	s.stats.Bytes += int64(n)
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	s.stats.Lines++
	return nil
}

// Close releases the handle and returns the slot to the closed state.
// Closing a closed slot is a no-op.
func (s *Slot) Close() error {
	if s.state == closed {
		return nil
	}

	err := s.file.Close()
	s.file = nil
	s.state = closed
	s.stats.Closes++
	if err != nil {
		return fmt.Errorf("close %s: %w", s.path, err)
	}
	return nil
}

// WriteOnce writes p and closes the slot again, even when the write
// failed. Both errors are reported.
func (s *Slot) WriteOnce(p []byte) error {
	err := s.Write(p)
	return multierr.Append(err, s.Close())
}

// Stats returns a snapshot of the slot counters
func (s *Slot) Stats() Stats {
	return s.stats
}
