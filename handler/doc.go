// Package handler connects a router to the outside world.
//
// The router itself is single-goroutine by contract: its three file
// slots are plain state without locks. Code that shares one router
// across goroutines wraps it once with Synchronized and hands the
// resulting *LockedEmitter to every user, so a single mutex guards the
// whole instance.
//
// Subpackages:
//
//   - filehandler holds the lazily opened file slots.
//   - consolehandler echoes lines to a console stream.
//   - sloghandler adapts an Emitter to log/slog.Handler.
//   - zaphandler adapts an Emitter to zapcore.Core.
package handler
