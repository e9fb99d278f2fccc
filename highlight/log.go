package highlight

import (
	"log"
)

// Debug enables diagnostic logging to the standard logger.
// It is not synchronized; set it before any concurrent calls to Resolve.
var Debug = false

func debugLog(format string, v ...any) {
	if !Debug {
		return
	}

	log.Printf(format, v...)
}
