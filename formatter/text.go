package formatter

import (
	"bytes"
	"io"

	"github.com/philipp01105/tinylog/core"
)

// separator sits between the timestamp and the message
const separator = ": "

// TextFormatter renders entries as "{timestamp}: {message}".
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	return &TextFormatter{Config: cfg}
}

// NewLineFormatter returns the newline-terminated formatter used by
// stream and file handlers.
func NewLineFormatter() *TextFormatter {
	return NewTextFormatter(Config{Newline: true})
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatEntry(entry, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatString formats an entry into a string, used by callback handlers.
func (f *TextFormatter) FormatString(entry *core.Entry) string {
	buf := getBuffer()
	f.FormatEntry(entry, buf)
	s := buf.String()
	putBuffer(buf)
	return s
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) (int, error) {
	buf := getBuffer()

	f.FormatEntry(entry, buf)

	n, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return n, err
}

// FormatEntry writes the formatted entry into the given buffer. Entries
// without a pre-rendered Timestamp are stamped from entry.Time.
func (f *TextFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) {
	if entry.Timestamp != "" {
		buf.WriteString(entry.Timestamp)
	} else {
		buf.Write(core.AppendTimestamp(buf.AvailableBuffer(), entry.Time))
	}
	buf.WriteString(separator)
	buf.WriteString(entry.Message)
	if f.Newline {
		buf.WriteByte('\n')
	}
}
