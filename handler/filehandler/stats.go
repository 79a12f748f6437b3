package filehandler

// Stats counts the activity of a single slot
type Stats struct {
	// Opens counts successful opens
	Opens uint64
	// Closes counts handles released
	Closes uint64
	// Lines counts completed writes
	Lines uint64
	// Bytes counts bytes written, including partial writes
	Bytes int64
}
