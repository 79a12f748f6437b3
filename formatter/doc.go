// Package formatter defines how log entries are serialized into bytes.
//
// It exposes the Formatter interface, which returns a []byte, and the
// optional BufferFormatter interface, which formats into a caller-owned
// bytes.Buffer. The router caches the BufferFormatter of its configured
// formatter and renders into its own buffer; formatters that only
// implement Format go through the pooled path. Either way a line is
// rendered once and the same bytes are written to every file it is
// routed to.
//
// LineFormatter produces the historical line layout
//
//	2024/01/02 03:04:05 [WRN]disk almost full
//
// Timestamps use strftime patterns (%Y/%m/%d %H:%M:%S by default) and
// are appended straight into the buffer. Level brackets are
// pre-computed so each line costs a single WriteString for the tag.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
