// Package internal holds process-wide setup shared by the commands.
package internal

import (
	"log"
	"os"
)

// InitLogging sends log output to stdout with microsecond timestamps.
func InitLogging() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}
