package logger

import (
	"io"
	"os"
	"time"

	"github.com/philipp01105/tierlog/formatter"
)

// Config holds the static configuration of a Logger
type Config struct {
	// Name is the base file name without extension (required)
	Name string
	// Dir is the output directory (default: current working directory).
	// It is created if missing, but its parent must exist.
	Dir string
	// Ext is the file extension without the dot (default: "txt")
	Ext string
	// InfoPostfix is appended to Name for the info-tier file (default: "_inf")
	InfoPostfix string
	// ErrorPostfix is appended to Name for the error-tier file (default: "_err")
	ErrorPostfix string
	// Mode applies to all three files (default: Append)
	Mode OpenMode
	// TimeFormat is a strftime pattern (default: "%Y/%m/%d %H:%M:%S").
	// It is ignored when Formatter is set.
	TimeFormat string
	// Formatter renders each entry (default: a LineFormatter using TimeFormat)
	Formatter formatter.Formatter
	// Sequential opens and closes the files around every write
	Sequential bool
	// Echo duplicates every line to Console
	Echo bool
	// Debug enables DEBUG messages
	Debug bool
	// Console receives echoed lines (default: os.Stdout)
	Console io.Writer
	// Now is the clock used for timestamps (default: time.Now)
	Now func() time.Time
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) error {
	if cfg.Dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		cfg.Dir = wd
	}
	if cfg.Ext == "" {
		cfg.Ext = "txt"
	}
	if cfg.InfoPostfix == "" {
		cfg.InfoPostfix = "_inf"
	}
	if cfg.ErrorPostfix == "" {
		cfg.ErrorPostfix = "_err"
	}
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = formatter.DefaultTimeFormat
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewLineFormatter(formatter.Config{TimeFormat: cfg.TimeFormat})
	}
	if cfg.Console == nil {
		cfg.Console = os.Stdout
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return nil
}
