package logger

import (
	"github.com/philipp01105/tierlog/core"
	"github.com/philipp01105/tierlog/handler/filehandler"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel     = core.DebugLevel
	InfoLevel      = core.InfoLevel
	WarnLevel      = core.WarnLevel
	ErrorLevel     = core.ErrorLevel
	ExceptionLevel = core.ExceptionLevel
	FatalLevel     = core.FatalLevel
)

// ParseLevel converts a level name or tag to a Level
func ParseLevel(s string) (Level, bool) {
	return core.ParseLevel(s)
}

// OpenMode Re-export type and constants for convenience
type OpenMode = filehandler.OpenMode

const (
	Append   = filehandler.Append
	Truncate = filehandler.Truncate
)

// FileOpenError and WriteError are returned by the slots
type (
	FileOpenError = filehandler.FileOpenError
	WriteError    = filehandler.WriteError
)
