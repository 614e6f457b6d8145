//go:build debug

package noding

import (
	"log"
	"os"
)

// Debug logger instance, compiled in only with the "debug" build tag.
var logger = log.New(os.Stderr, "[noding DEBUG] ", log.LstdFlags)

// logDebugf logs debug messages when the debug build tag is enabled.
func logDebugf(format string, v ...interface{}) {
	logger.Printf(format, v...)
}
