// Package streamhandler provides handlers that write each record as
// "{timestamp}: {message}\n" to a stream.
//
// A StreamHandler either borrows its writer or owns it:
//
//   - NewStreamHandler wraps a writer supplied by the caller (os.Stderr,
//     a socket, a bytes.Buffer). Close flushes pending output but never
//     closes the writer; it stays usable by the caller.
//   - NewFileHandler opens a file itself, in append or truncate mode,
//     and closes it on Close. A failed open returns a *handler.OpenError
//     and allocates nothing.
//
// Output is unbuffered by default: every record reaches the writer in a
// single Write call. Setting BufferSize routes writes through a
// bufio.Writer and output becomes visible after Flush or Close.
package streamhandler
