// Package sloghandler provides an adapter from handler.Emitter to
// log/slog.Handler, so code written against the standard library's
// structured logging can write into the three tier files.
//
// Attributes are rendered as trailing key=value pairs on the message;
// groups become dotted key prefixes. Use LevelException and LevelFatal
// to reach the two severities slog has no built-in name for.
//
// NewSlogHandler takes the *handler.LockedEmitter that every other user
// of the router shares, typically logger.Logger.Shared.
package sloghandler
