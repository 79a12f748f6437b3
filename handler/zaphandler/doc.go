// Package zaphandler provides a zapcore.Core backed by a handler.Emitter,
// letting services that already log through *zap.Logger write into the
// main and tier files.
//
// zap's DPanic and Panic levels map to EXCEPTION and its Fatal level to
// FATAL. zap itself still panics or exits after writing those entries.
//
// NewCore and NewLogger take the *handler.LockedEmitter shared by every
// user of the router, so zap, slog and direct callers hold one mutex.
package zaphandler
