package parser

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"layer/internal/ast"
)

// ParseError is a syntax error with the position it was detected at
type ParseError struct {
	Message  string
	Position ast.Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Position.Filename, e.Position.Line, e.Position.Column, e.Message)
}

func wrapParticipleError(path string, err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		pos := makePos(perr.Position())
		if pos.Filename == "" {
			pos.Filename = path
		}
		return &ParseError{Message: perr.Message(), Position: pos}
	}

	return &ParseError{
		Message:  err.Error(),
		Position: ast.Position{Filename: path, Line: 1, Column: 1},
	}
}

func makePos(pos lexer.Position) ast.Position {
	return ast.Position{
		Filename: pos.Filename,
		Offset:   pos.Offset,
		Line:     pos.Line,
		Column:   pos.Column,
	}
}
