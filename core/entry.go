package core

import (
	"strings"
	"time"
)

// Level represents the severity level of a log entry
type Level int8

const (
	// DebugLevel for detailed debugging information, gated by the router
	DebugLevel Level = iota
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarnLevel for warning messages, the highest level routed to the info tier
	WarnLevel
	// ErrorLevel for error messages
	ErrorLevel
	// ExceptionLevel for errors carrying a stack trace
	ExceptionLevel
	// FatalLevel for fatal messages. Logging at this level never exits.
	FatalLevel
)

// levelTags holds the fixed three-letter tag of every level
var levelTags = [...]string{
	DebugLevel:     "DBG",
	InfoLevel:      "INF",
	WarnLevel:      "WRN",
	ErrorLevel:     "ERR",
	ExceptionLevel: "EXC",
	FatalLevel:     "FTL",
}

// Valid reports whether l is one of the six defined levels
func (l Level) Valid() bool {
	return l >= DebugLevel && l <= FatalLevel
}

// Tag returns the three-letter tag written between brackets
func (l Level) Tag() string {
	if !l.Valid() {
		return "???"
	}
	return levelTags[l]
}

// InfoTier reports whether entries of this level go to the info-tier file.
// Everything above WarnLevel goes to the error tier.
func (l Level) InfoTier() bool {
	return l <= WarnLevel
}

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case ExceptionLevel:
		return "EXCEPTION"
	case FatalLevel:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name or tag to a Level.
// The second return value is false when s names no level.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG", "DBG":
		return DebugLevel, true
	case "INFO", "INF":
		return InfoLevel, true
	case "WARN", "WARNING", "WRN":
		return WarnLevel, true
	case "ERROR", "ERR":
		return ErrorLevel, true
	case "EXCEPTION", "EXC":
		return ExceptionLevel, true
	case "FATAL", "FTL":
		return FatalLevel, true
	default:
		return InfoLevel, false
	}
}

// Entry represents a single log line before formatting
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
}
