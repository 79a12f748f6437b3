package logger

import (
	"errors"
	"fmt"
)

var (
	// ErrNameRequired is returned by New when Config.Name is empty
	ErrNameRequired = errors.New("log file name is required")
	// ErrInvalidLevel is returned when a level outside DEBUG..FATAL is logged
	ErrInvalidLevel = errors.New("invalid log level")
)

// DirectoryCreationError reports an output directory that did not exist
// and could not be created
type DirectoryCreationError struct {
	Dir string
	Err error
}

func (e *DirectoryCreationError) Error() string {
	return fmt.Sprintf("create log directory %s: %v", e.Dir, e.Err)
}

func (e *DirectoryCreationError) Unwrap() error {
	return e.Err
}
