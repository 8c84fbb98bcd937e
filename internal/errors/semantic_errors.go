package errors

import (
	"fmt"
	"strings"

	"layer/internal/ast"
)

// SemanticErrorBuilder provides a fluent interface for creating errors with suggestions
type SemanticErrorBuilder struct {
	err CompilerError
}

// NewSemanticError creates a new semantic error builder
func NewSemanticError(code, message string, pos ast.Position) *SemanticErrorBuilder {
	return &SemanticErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *SemanticErrorBuilder) WithLength(length int) *SemanticErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *SemanticErrorBuilder) WithSuggestion(message string) *SemanticErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *SemanticErrorBuilder) WithReplacement(message, replacement string, pos ast.Position, length int) *SemanticErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Position:    pos,
		Length:      length,
	})
	return b
}

// WithNote adds a note to the error
func (b *SemanticErrorBuilder) WithNote(note string) *SemanticErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *SemanticErrorBuilder) WithHelp(help string) *SemanticErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *SemanticErrorBuilder) Build() CompilerError {
	return b.err
}

// SyntaxError wraps a parser message
func SyntaxError(message string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorSyntax, message, pos).Build()
}

// UndeclaredIdentifier creates an error for reads of unknown names with suggestions
func UndeclaredIdentifier(name string, pos ast.Position, similarNames []string) CompilerError {
	builder := NewSemanticError(ErrorUndeclaredIdentifier, fmt.Sprintf("undeclared identifier '%s'", name), pos).
		WithLength(len(name))

	switch len(similarNames) {
	case 0:
		builder = builder.WithSuggestion("make sure the variable is declared before use").
			WithNote("variables are declared with 'cvar' or 'ivar'")
	case 1:
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", similarNames[0]))
	default:
		suggestions := strings.Join(similarNames, "', '")
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", suggestions))
	}

	return builder.Build()
}

// DuplicateDeclaration creates an error for redeclared or shadowing names
func DuplicateDeclaration(name string, pos ast.Position, previous ast.Position) CompilerError {
	return NewSemanticError(ErrorDuplicateDeclaration, fmt.Sprintf("'%s' is already declared", name), pos).
		WithLength(len(name)).
		WithNote(fmt.Sprintf("previous declaration at line %d, column %d", previous.Line, previous.Column)).
		WithHelp(fmt.Sprintf("assign with '%s = ...' instead of declaring it again", name)).
		Build()
}

// MissingInitializer creates an error for ivar declarations without a value
func MissingInitializer(name string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorMissingInitializer, fmt.Sprintf("ivar '%s' must be initialized", name), pos).
		WithReplacement("give it a value", fmt.Sprintf("ivar %s = ...", name), pos, 0).
		WithNote("use 'cvar' for variables that receive a value later").
		Build()
}

// AssignUndeclared creates an error for assignments to unknown names
func AssignUndeclared(name string, pos ast.Position, similarNames []string) CompilerError {
	builder := NewSemanticError(ErrorAssignUndeclared, fmt.Sprintf("cannot assign to undeclared variable '%s'", name), pos).
		WithLength(len(name))

	if len(similarNames) > 0 {
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", similarNames[0]))
	} else {
		builder = builder.WithReplacement("declare it first", fmt.Sprintf("cvar %s = ...", name), pos, 0)
	}

	return builder.Build()
}

// UninitializedRead creates an error for reads of a cvar that has no value yet
func UninitializedRead(name string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorUninitializedRead, fmt.Sprintf("'%s' is read before it is assigned", name), pos).
		WithLength(len(name)).
		WithHelp(fmt.Sprintf("assign '%s' before reading it", name)).
		Build()
}

// AssignImmutable creates an error for assignments to an ivar
func AssignImmutable(name string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorAssignImmutable, fmt.Sprintf("cannot assign twice to ivar '%s'", name), pos).
		WithLength(len(name)).
		WithNote("ivar values are fixed at declaration").
		WithHelp(fmt.Sprintf("declare '%s' with 'cvar' to make it reassignable", name)).
		Build()
}

// WithFrame attaches the IR location of a runtime failure
func (b *SemanticErrorBuilder) WithFrame(pc int, instr string) *SemanticErrorBuilder {
	b.err.Frame = &Frame{PC: pc, Instr: instr}
	return b
}

// RuntimeError wraps a virtual machine failure for display. frame is nil
// when the failure happened before any instruction ran.
func RuntimeError(code, message string, frame *Frame) CompilerError {
	builder := NewSemanticError(code, message, ast.Position{})
	if frame != nil {
		builder = builder.WithFrame(frame.PC, frame.Instr)
	}
	return builder.Build()
}

// FindSimilarNames returns candidates within a small edit distance of target
func FindSimilarNames(target string, candidates []string) []string {
	var similar []string

	for _, candidate := range candidates {
		if candidate != target && levenshteinDistance(target, candidate) <= 2 && len(candidate) > 2 {
			similar = append(similar, candidate)
		}
	}

	return similar
}

func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
