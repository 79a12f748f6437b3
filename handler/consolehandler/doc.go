// Package consolehandler echoes formatted log lines to a console
// stream (default: os.Stdout).
//
// The router writes each line to its files first and then hands the
// same bytes to ConsoleHandler, which strips surrounding newlines and
// prints the result as one terminal line.
package consolehandler
