// Package diag renders parse failures against the source they came from.
package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/xiam/infix/parser"
)

// Printer writes diagnostics to an output
type Printer struct {
	w io.Writer

	location *color.Color
	message  *color.Color
	caret    *color.Color
}

// NewPrinter creates a Printer. When useColor is false no escape sequences
// are written, regardless of the terminal.
func NewPrinter(w io.Writer, useColor bool) *Printer {
	p := &Printer{
		w:        w,
		location: color.New(color.Bold),
		message:  color.New(color.FgRed),
		caret:    color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.location, p.message, p.caret} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Report writes err as a diagnostic for the named source. Parse errors get
// the offending line and a caret under the failing token.
func (p *Printer) Report(name string, src string, err error) {
	var perr *parser.Error
	if !errors.As(err, &perr) {
		fmt.Fprintf(p.w, "%s %s\n", p.location.Sprintf("%s:", name), p.message.Sprint(err.Error()))
		return
	}

	line, col := perr.Pos()
	fmt.Fprintf(p.w, "%s %s\n", p.location.Sprintf("%s:%d:%d:", name, line, col), p.message.Sprint(perr.Message()))

	text, ok := sourceLine(src, line)
	if !ok {
		return
	}
	fmt.Fprintf(p.w, "%s\n", text)
	fmt.Fprintf(p.w, "%s%s\n", caretPadding(text, col), p.caret.Sprint("^"))
}

func sourceLine(src string, line int) (string, bool) {
	lines := strings.Split(src, "\n")
	if line < 1 || line > len(lines) {
		return "", false
	}
	return strings.TrimRight(lines[line-1], "\r"), true
}

// caretPadding keeps tabs so the caret lines up with the token.
func caretPadding(text string, col int) string {
	var b strings.Builder
	for i, r := range []rune(text) {
		if i >= col-1 {
			break
		}
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}
