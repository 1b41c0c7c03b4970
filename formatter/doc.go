// Package formatter defines how log records are serialized into bytes.
//
// Every handler receives the same record shape: a pre-rendered
// timestamp and a message. TextFormatter joins them as
// "{timestamp}: {message}", optionally followed by a newline. Stream
// and file handlers use the newline variant; callback handlers hand the
// bare record to user code.
//
// It exposes Formatter, which returns a []byte, WriterFormatter, which
// writes directly to an io.Writer and reports the bytes accepted, and
// BufferFormatter, which fills a caller-owned bytes.Buffer. Handlers
// check for the optional interfaces at construction time.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
