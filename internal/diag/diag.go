// Package diag writes user-facing diagnostics in the form
// "error: message", colored when the destination is a terminal.
package diag

import (
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"github.com/mattn/go-isatty"
)

var (
	errorStyle   = color.New(color.FgRed, color.OpBold)
	warningStyle = color.New(color.FgMagenta, color.OpBold)
)

// Reporter writes diagnostics to W.
type Reporter struct {
	W     io.Writer
	Color bool
}

// NewReporter returns a reporter for w that colors its prefixes when w is
// a terminal.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{W: w, Color: isTerminal(w)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Errorf writes an error-level diagnostic.
func (r *Reporter) Errorf(format string, args ...any) {
	r.report(errorStyle, "error: ", format, args...)
}

// Warningf writes a warning-level diagnostic.
func (r *Reporter) Warningf(format string, args ...any) {
	r.report(warningStyle, "warning: ", format, args...)
}

func (r *Reporter) report(style color.Style, prefix, format string, args ...any) {
	if r.Color {
		prefix = style.Sprint(prefix)
	}
	_, _ = fmt.Fprintf(r.W, "%s%s\n", prefix, fmt.Sprintf(format, args...))
}
