// Package console renders CLI output with optional ANSI styling.
//
// Styling is enabled only when the destination is a terminal, so piped
// output stays plain.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// IsTerminalFunc is the function used to check if a file descriptor is a terminal.
// It can be overridden for testing.
var IsTerminalFunc = term.IsTerminal

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiDim    = "\033[2m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

// Styler formats text for one output stream.
type Styler struct {
	w       io.Writer
	colored bool
}

// New returns a Styler for w. Colors turn on when w is the process's
// stdout or stderr and that stream is a terminal.
func New(w io.Writer) *Styler {
	colored := false
	if f, ok := w.(*os.File); ok {
		colored = IsTerminalFunc(int(f.Fd()))
	}
	return &Styler{w: w, colored: colored}
}

// NewPlain returns a Styler that never emits ANSI codes.
func NewPlain(w io.Writer) *Styler {
	return &Styler{w: w}
}

func (s *Styler) style(code, text string) string {
	if !s.colored {
		return text
	}
	return code + text + ansiReset
}

// Header prints a bold section header followed by an underline.
func (s *Styler) Header(text string) {
	fmt.Fprintln(s.w, s.style(ansiBold, text))
	fmt.Fprintln(s.w, s.style(ansiDim, strings.Repeat("-", len(text))))
}

// Success prints a green check line.
func (s *Styler) Success(format string, args ...any) {
	fmt.Fprintln(s.w, s.style(ansiGreen, "✓ "+fmt.Sprintf(format, args...)))
}

// Warning prints a yellow advisory line.
func (s *Styler) Warning(format string, args ...any) {
	fmt.Fprintln(s.w, s.style(ansiYellow, "! "+fmt.Sprintf(format, args...)))
}

// Error prints a red failure line.
func (s *Styler) Error(format string, args ...any) {
	fmt.Fprintln(s.w, s.style(ansiRed, "✗ "+fmt.Sprintf(format, args...)))
}

// Field prints an indented key: value line with the key dimmed.
func (s *Styler) Field(key string, value any) {
	fmt.Fprintf(s.w, "  %s %v\n", s.style(ansiDim, key+":"), value)
}

// Bullet prints an indented list item.
func (s *Styler) Bullet(level int, format string, args ...any) {
	fmt.Fprintf(s.w, "%s- %s\n", strings.Repeat("  ", level), fmt.Sprintf(format, args...))
}

// Path prints a file path highlighted in cyan.
func (s *Styler) Path(path string) string {
	return s.style(ansiCyan, path)
}

// Println prints an unstyled line.
func (s *Styler) Println(args ...any) {
	fmt.Fprintln(s.w, args...)
}
