// Package filehandler provides a file handler that rotates its file
// through numbered backups once a size threshold is exceeded.
//
// The handler opens its base file in append mode and seeds its byte
// counter with the file's current size, so a restarted process resumes
// counting where the previous one stopped. After every record it checks
// the counter; once it exceeds MaxSize the file is rotated:
//
//	app.log.N   -> app.log.N+1
//	...
//	app.log.1   -> app.log.2
//	app.log     -> app.log.1
//	app.log        reopened empty
//
// Renames run from the oldest generation down so that no backup is
// overwritten before it has been moved. Missing generations are
// skipped. After rotations app.log and app.log.1 through
// app.log.{RetainCount+1} may exist; app.log is always the active file.
//
// The record that pushes the file over the threshold is written to the
// old file before rotation begins, so rotation never loses a record.
package filehandler
