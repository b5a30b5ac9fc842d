package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgBlue, color.Bold)
	labelColor   = color.New(color.FgWhite, color.Bold)
	dimColor     = color.New(color.FgHiBlack)
)

// printer writes formatted, optionally colored, lines to a command's
// stdout and stderr.
type printer struct {
	out io.Writer
	err io.Writer
}

func newPrinter(out, err io.Writer) *printer {
	return &printer{out: out, err: err}
}

// Section prints a section header
func (p *printer) Section(title string) {
	_, _ = fmt.Fprintln(p.out)
	_, _ = headerColor.Fprintf(p.out, "▸ %s\n", title)
	_, _ = fmt.Fprintln(p.out)
}

// Success prints a success line
func (p *printer) Success(msg string) {
	_, _ = successColor.Fprintln(p.out, msg)
}

// Warning prints a warning line to stdout
func (p *printer) Warning(msg string) {
	_, _ = warningColor.Fprintln(p.out, msg)
}

// Error prints an error line to stderr
func (p *printer) Error(msg string) {
	_, _ = errorColor.Fprintln(p.err, msg)
}

// Info prints an uncolored line
func (p *printer) Info(msg string) {
	_, _ = fmt.Fprintln(p.out, msg)
}

// Dim prints a de-emphasized line
func (p *printer) Dim(msg string) {
	_, _ = dimColor.Fprintln(p.out, msg)
}

// LabelValue prints a label-value pair
func (p *printer) LabelValue(label, value string) {
	_, _ = labelColor.Fprintf(p.out, "  %s: ", label)
	_, _ = fmt.Fprintln(p.out, value)
}

// List prints a list of items with bullet points
func (p *printer) List(items []string, indent int) {
	indentStr := strings.Repeat("  ", indent)
	for _, item := range items {
		_, _ = infoColor.Fprintf(p.out, "%s• %s\n", indentStr, item)
	}
}

// Count formats a count with the singular or plural noun
func Count(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}
