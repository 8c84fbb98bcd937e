package vm

import (
	"io"
	"strings"
)

// lineWriter buffers the values of one write statement until its newline.
type lineWriter struct {
	w       io.Writer
	pending []string
}

func newLineWriter(w io.Writer) *lineWriter {
	return &lineWriter{w: w}
}

func (l *lineWriter) append(s string) {
	l.pending = append(l.pending, s)
}

func (l *lineWriter) flush() error {
	line := strings.Join(l.pending, " ") + "\n"
	l.pending = l.pending[:0]
	_, err := io.WriteString(l.w, line)
	return err
}

func (l *lineWriter) discard() {
	l.pending = l.pending[:0]
}
