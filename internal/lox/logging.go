package lox

import (
	"log"
	"os"
)

type options struct {
	debug bool
}

var (
	opts   = options{}
	logger = log.New(os.Stderr, "[loxslicer] ", log.LstdFlags)
)

// SetDebug toggles stage-by-stage debug logging (scanner/parser/evaluator
// internals). It is off by default; the CLI's -debug flag turns it on.
func SetDebug(b bool) {
	opts.debug = b
}

// logf writes a debug-only line to stderr, gated by SetDebug.
func logf(format string, items ...any) {
	if opts.debug {
		logger.Printf(format, items...)
	}
}
