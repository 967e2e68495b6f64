// Package output provides output formatting for the whichchain CLI:
// text or JSON rendering of candidate lists, chain listings, and errors,
// with TTY auto-detection.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Format selects how results are rendered.
type Format string

// Output format constants.
const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatAuto Format = "auto"
)

// ParseFormat maps a user-supplied format name onto a Format. Unknown names
// fall back to auto.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return FormatAuto
	}
}

// ResolveFormat turns a format name into a concrete rendering mode. An
// explicit "text" or "json" wins; "auto" picks text when w is a terminal and
// JSON otherwise, so piped output stays machine-readable.
func ResolveFormat(s string, w io.Writer) Format {
	format := ParseFormat(s)
	if format != FormatAuto {
		return format
	}
	if f, ok := w.(*os.File); ok && isTerminal(f) {
		return FormatText
	}
	return FormatJSON
}

// Formatter renders values to a writer in a fixed format.
type Formatter struct {
	format Format
	w      io.Writer
}

// NewFormatter creates a formatter writing to w.
func NewFormatter(format Format, w io.Writer) *Formatter {
	return &Formatter{format: format, w: w}
}

// Format returns the rendering mode.
func (f *Formatter) Format() Format {
	return f.format
}

// Writer returns the underlying writer.
func (f *Formatter) Writer() io.Writer {
	return f.w
}

// IsJSON reports whether the formatter emits JSON.
func (f *Formatter) IsJSON() bool {
	return f.format == FormatJSON
}

// Print renders v: indented JSON in JSON mode, a line of text otherwise.
func (f *Formatter) Print(v any) error {
	if f.IsJSON() {
		enc := json.NewEncoder(f.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return f.Println(v)
}

// Printf writes formatted text output.
func (f *Formatter) Printf(format string, args ...any) error {
	_, err := fmt.Fprintf(f.w, format, args...)
	return err
}

// Println writes a line of text output.
func (f *Formatter) Println(args ...any) error {
	_, err := fmt.Fprintln(f.w, args...)
	return err
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: Fd fits in an int on supported platforms
}
