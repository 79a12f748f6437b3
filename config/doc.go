// Package config loads logger configuration from YAML or TOML files.
//
// Both formats use the same snake_case keys:
//
//	name = "app"
//	dir = "logs"
//	ext = "log"
//	mode = "truncate"
//	sequential = true
//
// The format is chosen by file extension. Unknown keys are errors so
// that a typo does not silently fall back to a default.
package config
