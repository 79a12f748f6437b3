// Package logger is the public API of tierlog. Most users only need to
// import this package.
//
// A Logger writes every message to three files in one directory:
//
//	{Name}.{Ext}               every level
//	{Name}{InfoPostfix}.{Ext}  DEBUG, INFO, WARNING
//	{Name}{ErrorPostfix}.{Ext} ERROR, EXCEPTION, FATAL
//
// Each line has the form "2024/01/02 03:04:05 [WRN]message". Handles
// open lazily on first use. In sequential mode every write opens,
// appends and closes the handles it touches; otherwise they stay open
// until Close.
//
// Configuration is a plain struct, so every option is named:
//
//	err := logger.Scoped(logger.Config{Name: "app", Dir: "logs", Sequential: true},
//	    func(log *logger.Logger) error {
//	        return log.Info("ready")
//	    })
//
// Scoped and Use close the files on every exit path. Nothing relies on
// finalizers; a Logger that is neither scoped nor closed keeps its
// handles until the process exits.
//
// Every write is synchronous and every I/O failure is returned to the
// caller. A Logger is not safe for concurrent use. When it is shared,
// every user goes through Shared, including the slog and zap bridges:
//
//	shared := log.Shared()
//	slogger := slog.New(sloghandler.NewSlogHandler(shared))
//	zlogger := zaphandler.NewLogger(shared)
package logger
