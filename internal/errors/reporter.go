package errors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"layer/internal/ast"
)

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// CompilerError is a diagnostic from any stage. Front-end errors carry a
// source Position; runtime errors carry a Frame instead.
type CompilerError struct {
	Level       ErrorLevel
	Code        string
	Message     string
	Position    ast.Position
	Length      int
	Frame       *Frame
	Suggestions []Suggestion
	Notes       []string
	HelpText    string
}

// Frame locates a runtime failure in the executed IR.
type Frame struct {
	PC    int
	Instr string
}

func (e CompilerError) Error() string {
	switch {
	case e.Position.Line > 0:
		return fmt.Sprintf("%s:%d:%d: %s[%s]: %s",
			e.Position.Filename, e.Position.Line, e.Position.Column, e.Level, e.Code, e.Message)
	case e.Frame != nil:
		return fmt.Sprintf("pc %d: %s[%s]: %s", e.Frame.PC, e.Level, e.Code, e.Message)
	default:
		return fmt.Sprintf("%s[%s]: %s", e.Level, e.Code, e.Message)
	}
}

// Suggestion is a possible fix; Replacement is shown as a code snippet
type Suggestion struct {
	Message     string
	Replacement string
	Position    ast.Position
	Length      int
}

var levelColors = map[ErrorLevel]*color.Color{
	Error:   color.New(color.FgRed, color.Bold),
	Warning: color.New(color.FgYellow, color.Bold),
	Note:    color.New(color.FgBlue, color.Bold),
	Help:    color.New(color.FgGreen, color.Bold),
}

var (
	dim   = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	blue  = color.New(color.FgBlue).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
)

// minimum gutter width keeps short files aligned
const minimum = 3

func levelColor(level ErrorLevel) *color.Color {
	if c, ok := levelColors[level]; ok {
		return c
	}
	return levelColors[Error]
}

// ErrorReporter renders diagnostics against one source file
type ErrorReporter struct {
	filename string
	lines    []string
}

func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// gutter writes the numbered left margin shared by every block of one
// diagnostic.
type gutter struct {
	b     *strings.Builder
	width int
}

func (g gutter) blank() {
	fmt.Fprintf(g.b, "%*s %s\n", g.width, "", dim("│"))
}

func (g gutter) row(label string, text string) {
	fmt.Fprintf(g.b, "%s %s %s\n", label, dim("│"), text)
}

func (g gutter) number(n int, emphasize bool) string {
	s := fmt.Sprintf("%*d", g.width, n)
	if emphasize {
		return bold(s)
	}
	return dim(s)
}

func (g gutter) pad() string {
	return strings.Repeat(" ", g.width)
}

// FormatError renders err in a Rust-like layout: header, location,
// source or IR excerpt with a marker, suggestions and notes.
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var b strings.Builder
	c := levelColor(err.Level)

	if err.Code != "" {
		fmt.Fprintf(&b, "%s[%s]: %s\n", c.Sprint(err.Level), err.Code, err.Message)
	} else {
		fmt.Fprintf(&b, "%s: %s\n", c.Sprint(err.Level), err.Message)
	}

	g := gutter{b: &b, width: minimum}
	switch {
	case err.Position.Line > 0:
		g.width = max(minimum, len(strconv.Itoa(err.Position.Line+1)))
		er.writeSource(g, err, c)
	case err.Frame != nil:
		g.width = max(minimum, len(strconv.Itoa(err.Frame.PC)))
		er.writeFrame(g, err.Frame, c)
	}

	writeSuggestions(g, err.Suggestions)

	for _, note := range err.Notes {
		g.row(g.pad(), blue("note:")+" "+note)
	}
	if err.HelpText != "" {
		g.row(g.pad(), green("help:")+" "+err.HelpText)
	}

	b.WriteString("\n")
	return b.String()
}

func (er *ErrorReporter) writeSource(g gutter, err CompilerError, c *color.Color) {
	line := err.Position.Line
	fmt.Fprintf(g.b, "%s %s %s:%d:%d\n", g.pad(), dim("-->"), er.filename, line, err.Position.Column)
	g.blank()

	if line > 1 && line-2 < len(er.lines) {
		g.row(g.number(line-1, false), er.lines[line-2])
	}
	if line <= len(er.lines) {
		g.row(g.number(line, true), er.lines[line-1])
		g.row(g.pad(), marker(err.Position.Column, err.Length, c))
	}
	if line < len(er.lines) {
		g.row(g.number(line+1, false), er.lines[line])
	}
}

// writeFrame shows the failing instruction with its pc in the gutter.
func (er *ErrorReporter) writeFrame(g gutter, frame *Frame, c *color.Color) {
	fmt.Fprintf(g.b, "%s %s %s (ir)\n", g.pad(), dim("-->"), er.filename)
	g.blank()
	g.row(g.number(frame.PC, true), frame.Instr)
	g.row(g.pad(), marker(1, len(frame.Instr), c))
}

func writeSuggestions(g gutter, suggestions []Suggestion) {
	if len(suggestions) == 0 {
		return
	}
	g.blank()
	for i, s := range suggestions {
		lead := "    "
		if i == 0 {
			lead = "help: try"
		}
		g.row(g.pad(), cyan(lead)+" "+s.Message)
		for _, line := range strings.Split(s.Replacement, "\n") {
			if line != "" {
				g.row(g.pad(), "    "+cyan(line))
			}
		}
	}
}

func marker(column, length int, c *color.Color) string {
	return strings.Repeat(" ", max(0, column-1)) + c.Sprint(strings.Repeat("^", max(1, length)))
}

// FormatErrors renders a list of errors in order
func (er *ErrorReporter) FormatErrors(errs []CompilerError) string {
	var b strings.Builder
	for _, err := range errs {
		b.WriteString(er.FormatError(err))
	}
	return b.String()
}
