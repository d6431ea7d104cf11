// Package console writes user-facing output. Diagnostics are coloured only
// when they go to a terminal.
package console

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
	colorReset  = "\033[0m"
)

// Printer sends regular output to Out and diagnostics to Err.
type Printer struct {
	Out   io.Writer
	Err   io.Writer
	Color bool
}

// New returns a Printer that colours diagnostics when err is a terminal and
// noColor is false.
func New(out, err io.Writer, noColor bool) *Printer {
	return &Printer{Out: out, Err: err, Color: !noColor && isTerminal(err)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.Out, format, args...)
}

func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.Out, args...)
}

// Warnf reports a recoverable problem with the input, such as a bad field.
func (p *Printer) Warnf(format string, args ...any) {
	p.diag(colorYellow, "warning: ", format, args...)
}

// Errorf reports a failed operation.
func (p *Printer) Errorf(format string, args ...any) {
	p.diag(colorRed, "error: ", format, args...)
}

func (p *Printer) diag(color, prefix, format string, args ...any) {
	msg := prefix + fmt.Sprintf(format, args...)
	if p.Color {
		msg = color + msg + colorReset
	}
	fmt.Fprintln(p.Err, msg)
}
