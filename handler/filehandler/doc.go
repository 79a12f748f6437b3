// Package filehandler manages lazily opened log file handles.
//
// A Slot owns one file path and at most one open handle. It is a two
// state machine:
//
//	closed --EnsureOpen/Write--> open --Close--> closed
//
// Write opens on demand, so a slot that is never written to never
// touches the filesystem. WriteOnce performs open, write and close in
// one step for callers that must not hold handles between writes.
//
// Open failures are reported as *FileOpenError and failed writes as
// *WriteError; both unwrap to the underlying *os.PathError.
package filehandler
