//go:build !debug

package noding

// logDebugf is a no-op outside of debug builds.
func logDebugf(format string, v ...interface{}) {}
