package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Printer writes styled command output to a writer.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// Width returns the width used for boxes
func (p *Printer) Width() int {
	return p.width
}

// SetWidth overrides the detected terminal width
func (p *Printer) SetWidth(width int) *Printer {
	p.width = width
	return p
}

// Print writes content to the output
func (p *Printer) Print(content string) {
	_, _ = fmt.Fprint(p.out, content)
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// Newline prints an empty line
func (p *Printer) Newline() {
	_, _ = fmt.Fprintln(p.out)
}

// PrintHeader prints a command header box
func (p *Printer) PrintHeader(title, command string, params ...Detail) {
	p.Println(NewHeader(title, command, params...).SetWidth(p.width).Render())
}

// PrintResult prints any result box at the printer's width
func (p *Printer) PrintResult(r *Result) {
	p.Println(r.SetWidth(p.width).Render())
}

// PrintSuccess prints a success result box
func (p *Printer) PrintSuccess(title string, details ...Detail) {
	p.PrintResult(NewSuccessResult(title, details...))
}

// PrintFailure prints a failure result box with a hint list
func (p *Printer) PrintFailure(title string, err error, hints ...string) {
	p.PrintResult(NewFailureResult(title, err, hints...))
}

// PrintMatches prints one item per line, highlighting a leading prefix
// when it matches case-insensitively.
func (p *Printer) PrintMatches(items []string, prefix string) {
	for _, item := range items {
		if prefix != "" && len(item) >= len(prefix) && strings.EqualFold(item[:len(prefix)], prefix) {
			p.Println("  " + MatchStyle.Render(item[:len(prefix)]) + item[len(prefix):])
			continue
		}
		p.Println("  " + item)
	}
}
