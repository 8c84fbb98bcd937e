package parser

import (
	"layer/grammar"
	"layer/internal/ast"
)

// ParseSource parses Layer source into a precedence-resolved AST. Syntax
// errors are returned as *ParseError.
func ParseSource(path string, source string) (*ast.Program, error) {
	tree, err := grammar.ParseString(path, source)
	if err != nil {
		return nil, wrapParticipleError(path, err)
	}

	b := &builder{}
	program := b.program(tree)
	if b.err != nil {
		return nil, b.err
	}

	return program, nil
}

// Tokenize returns the token stream of source. A lexing failure is returned
// as *ParseError together with the tokens read before it.
func Tokenize(path string, source string) ([]grammar.Token, error) {
	tokens, err := grammar.Tokens(path, source)
	if err != nil {
		return tokens, wrapParticipleError(path, err)
	}
	return tokens, nil
}
