// Package cli holds the terminal output helpers shared by namecase commands.
package cli

import (
	"fmt"
	"io"
	"os"
)

// Printer writes user-facing messages: results and progress to Out,
// warnings and errors to Err.
type Printer struct {
	Out io.Writer
	Err io.Writer
}

// Std returns a Printer on the process's stdout and stderr.
func Std() *Printer {
	return &Printer{Out: os.Stdout, Err: os.Stderr}
}

// Info prints an informational message.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.Out, msg)
}

// Infof prints a formatted informational message.
func (p *Printer) Infof(format string, args ...any) {
	fmt.Fprintf(p.Out, format+"\n", args...)
}

// Success prints a success message.
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.Out, "✓", msg)
}

// Successf prints a formatted success message.
func (p *Printer) Successf(format string, args ...any) {
	fmt.Fprintf(p.Out, "✓ "+format+"\n", args...)
}

// Warnf prints a formatted warning.
func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintf(p.Err, "warning: "+format+"\n", args...)
}

// Error prints an error message with details and returns exit code 1.
func (p *Printer) Error(msg string, err error) int {
	if err == nil {
		fmt.Fprintln(p.Err, "error:", msg)
	} else {
		fmt.Fprintf(p.Err, "error: %s: %v\n", msg, err)
	}
	return 1
}

// Usage prints a usage error followed by the usage text and returns exit
// code 1.
func (p *Printer) Usage(msg, usage string) int {
	fmt.Fprintln(p.Err, "error:", msg)
	fmt.Fprintln(p.Err)
	fmt.Fprint(p.Err, usage)
	return 1
}

// KeyValues prints key/value rows with the values aligned in one column.
func (p *Printer) KeyValues(rows [][2]string) {
	width := 0
	for _, r := range rows {
		if len(r[0]) > width {
			width = len(r[0])
		}
	}
	for _, r := range rows {
		fmt.Fprintf(p.Out, "%-*s  %s\n", width, r[0], r[1])
	}
}
