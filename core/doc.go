// Package core defines the shared types used across tierlog.
//
// It provides the Level type with its fixed three-letter tags, the Entry
// type that represents a single line before formatting, and the stack
// capture helpers used when logging exceptions.
//
// Levels are ordered DEBUG < INFO < WARNING < ERROR < EXCEPTION < FATAL.
// InfoTier splits them into the two tier files: everything up to and
// including WARNING goes to the info tier, the rest to the error tier.
//
// Go has no ambient exception state, so traces travel with errors.
// WithStack records the stack where an error was created and Trace
// renders it. An error without an attached stack still renders its text,
// and a nil error renders as an empty trace rather than failing.
package core
