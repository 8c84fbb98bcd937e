// Package repl runs Layer programs interactively. Each accepted entry is
// appended to a session buffer and the whole buffer is recompiled, so
// variables declared earlier stay visible; only output produced by the new
// entry is printed.
package repl

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"layer/internal/compiler"
	"layer/internal/errors"
	"layer/internal/ir"
)

const (
	PROMPT       = ">> "
	CONTINUATION = ".. "
	filename     = "<repl>"
)

// Session holds the accepted source of an interactive run.
type Session struct {
	source  string
	printed int
	filed   int
	cfg     compiler.Config

	// fileSink receives fwrite lines; nil keeps them with write output
	fileSink io.Writer
}

// NewSession creates an empty session. cfg.Output is ignored since the
// session returns write lines itself; a non-nil cfg.FileOutput receives the
// fwrite lines each entry adds.
func NewSession(cfg compiler.Config) *Session {
	return &Session{cfg: cfg, fileSink: cfg.FileOutput}
}

// Source returns the accepted program text.
func (s *Session) Source() string { return s.source }

// Reset forgets every accepted entry.
func (s *Session) Reset() {
	s.source = ""
	s.printed = 0
	s.filed = 0
}

// Eval compiles and runs the session with entry appended. On success the
// entry is kept and the lines it produced are returned. On failure the
// session is unchanged.
func (s *Session) Eval(entry string) ([]string, error) {
	candidate := s.source + entry
	if !strings.HasSuffix(candidate, "\n") {
		candidate += "\n"
	}

	var out, fileOut bytes.Buffer
	cfg := s.cfg
	cfg.Output = &out
	cfg.FileOutput = &out
	if s.fileSink != nil {
		cfg.FileOutput = &fileOut
	}

	if err := compiler.Run(filename, candidate, cfg); err != nil {
		return nil, err
	}

	lines := splitLines(out.String())
	fresh := lines[min(s.printed, len(lines)):]
	fileLines := splitLines(fileOut.String())
	freshFile := fileLines[min(s.filed, len(fileLines)):]

	s.source = candidate
	s.printed = len(lines)
	s.filed = len(fileLines)

	for _, line := range freshFile {
		if _, err := fmt.Fprintln(s.fileSink, line); err != nil {
			return fresh, err
		}
	}
	return fresh, nil
}

// IR returns the optimized IR listing of the accepted source.
func (s *Session) IR() (string, error) {
	result, err := compiler.Compile(filename, s.source, s.cfg.Optimize)
	if err != nil {
		return "", err
	}
	return ir.FormatNumbered(result.Code), nil
}

// Start reads entries from in until EOF or :quit and writes results to out.
func Start(in io.Reader, out io.Writer, cfg compiler.Config) {
	session := NewSession(cfg)
	scanner := bufio.NewScanner(in)
	errColor := color.New(color.FgRed).SprintFunc()

	for {
		entry, ok := readEntry(scanner, out)
		if !ok {
			fmt.Fprintln(out)
			return
		}

		switch strings.TrimSpace(entry) {
		case "":
			continue
		case ":quit", ":q", "exit":
			return
		case ":reset":
			session.Reset()
			continue
		case ":source":
			fmt.Fprint(out, session.Source())
			continue
		case ":ir":
			listing, err := session.IR()
			if err != nil {
				fmt.Fprintln(out, errColor(err.Error()))
				continue
			}
			fmt.Fprint(out, listing)
			continue
		}

		lines, err := session.Eval(entry)
		if err != nil {
			reporter := errors.NewErrorReporter(filename, session.Source()+entry+"\n")
			if diags := compiler.Diagnostics(err); len(diags) > 0 {
				fmt.Fprint(out, reporter.FormatErrors(diags))
			} else {
				fmt.Fprintln(out, errColor(err.Error()))
			}
			continue
		}
		for _, line := range lines {
			fmt.Fprintln(out, line)
		}
	}
}

// readEntry reads one logical entry, continuing while braces are open or
// the last line ends with an arrow.
func readEntry(scanner *bufio.Scanner, out io.Writer) (string, bool) {
	var b strings.Builder
	prompt := PROMPT

	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return b.String(), b.Len() > 0
		}
		b.WriteString(scanner.Text())
		b.WriteByte('\n')

		if !needsMore(b.String()) {
			return b.String(), true
		}
		prompt = CONTINUATION
	}
}

func needsMore(src string) bool {
	depth := 0
	inString := false
	last := ""

	for _, line := range strings.Split(src, "\n") {
		for i := 0; i < len(line); i++ {
			c := line[i]
			switch {
			case inString:
				if c == '"' {
					inString = false
				}
			case c == '"':
				inString = true
			case c == '#':
				i = len(line)
			case c == '{':
				depth++
			case c == '}':
				depth--
			}
		}
		inString = false
		if t := strings.TrimSpace(stripComment(line)); t != "" {
			last = t
		}
	}

	return depth > 0 || strings.HasSuffix(last, "->")
}

func stripComment(line string) string {
	inString := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inString = !inString
		case '#':
			if !inString {
				return line[:i]
			}
		}
	}
	return line
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
