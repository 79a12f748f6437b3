package formatter

import (
	"bytes"

	"github.com/ncruces/go-strftime"

	"github.com/philipp01105/tierlog/core"
)

// LineFormatter renders entries as "<timestamp> [<TAG>]<message>\n".
// There is no space between the closing bracket and the message; existing
// log readers depend on that.
type LineFormatter struct {
	Config
}

// NewLineFormatter creates a new line formatter
func NewLineFormatter(cfg Config) *LineFormatter {
	if cfg.TimeFormat == "" {
		cfg.TimeFormat = DefaultTimeFormat
	}
	return &LineFormatter{Config: cfg}
}

// Format formats an entry as a single line
func (f *LineFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// pre-formatted level brackets
var levelBrackets = [...]string{
	core.DebugLevel:     " [DBG]",
	core.InfoLevel:      " [INF]",
	core.WarnLevel:      " [WRN]",
	core.ErrorLevel:     " [ERR]",
	core.ExceptionLevel: " [EXC]",
	core.FatalLevel:     " [FTL]",
}

// FormatEntry writes the formatted entry into the given buffer
func (f *LineFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	buf.Write(strftime.AppendFormat(buf.AvailableBuffer(), f.TimeFormat, entry.Time))

	if entry.Level.Valid() {
		buf.WriteString(levelBrackets[entry.Level])
	} else {
		buf.WriteString(" [???]")
	}

	buf.WriteString(entry.Message)
	buf.WriteByte('\n')
}
