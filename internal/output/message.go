package output

import (
	"fmt"
	"os"
)

// Warn prints an advisory message to stderr: a skipped chain definition, a
// registry validation problem. Warnings never change the exit code.
func Warn(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, "⚠️  "+msg)
}

// Warnf prints a formatted warning to stderr.
func Warnf(format string, args ...any) {
	Warn(fmt.Sprintf(format, args...))
}
