// Package handler provides the Handler interface and the pieces shared
// by every sink: the callback handler, the ordered Chain used by the
// dispatcher for fan-out, statistics and the error taxonomy.
//
// A Handler consumes a record that the dispatcher has already stamped
// and formatted, and produces a side effect. Built-in handlers:
//
//   - CallbackHandler passes "{timestamp}: {message}" to a user function.
//   - streamhandler.StreamHandler writes "{timestamp}: {message}\n" to an
//     io.Writer, either borrowed from the caller or a file it opened.
//   - filehandler.RotatingFileHandler writes to a file and rotates it
//     through numbered backups once a size threshold is exceeded.
//
// Close releases what a handler owns and nothing more: a stream handler
// built from a caller's writer never closes it.
//
// Construction errors (OpenError) are returned to the caller. Errors
// during steady-state logging are counted in Stats and passed to an
// ErrorHandler; they never reach the code that logged the message.
package handler
