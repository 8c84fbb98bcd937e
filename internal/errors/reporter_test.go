package errors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layer/internal/ast"
)

func init() {
	color.NoColor = true
}

func TestErrorReporter(t *testing.T) {
	source := `cvar count = 0
loop i for 3 times -> {
    count = cuont + i
}
write(count)`

	reporter := NewErrorReporter("test.layer", source)

	err := UndeclaredIdentifier("cuont", ast.Position{Line: 3, Column: 13}, []string{"count"})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorUndeclaredIdentifier+"]")
	assert.Contains(t, formatted, "undeclared identifier 'cuont'")
	assert.Contains(t, formatted, "test.layer:3:13")
	assert.Contains(t, formatted, "did you mean 'count'?")

	// context lines around the error and a marker the width of the name
	assert.Contains(t, formatted, "loop i for 3 times -> {")
	assert.Contains(t, formatted, "            ^^^^^")
	assert.Contains(t, formatted, "}")
}

func TestFormatErrorWithoutPosition(t *testing.T) {
	reporter := NewErrorReporter("run.layer", "write(1 / 0)")

	err := RuntimeError(ErrorStepLimitExceeded, "step limit exceeded", nil)
	formatted := reporter.FormatError(err)

	assert.Equal(t, "error[E0305]: step limit exceeded\n\n", formatted)
}

func TestFormatRuntimeFrame(t *testing.T) {
	reporter := NewErrorReporter("run.layer", "write(1 / 0)")

	err := RuntimeError(ErrorDivisionByZero, "division by zero", &Frame{PC: 2, Instr: "DIV _t0, _t1 -> _t2"})
	formatted := reporter.FormatError(err)

	lines := strings.Split(formatted, "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, "error[E0302]: division by zero", lines[0])
	assert.Equal(t, "    --> run.layer (ir)", lines[1])
	assert.Equal(t, "    │", lines[2])
	assert.Equal(t, "  2 │ DIV _t0, _t1 -> _t2", lines[3])
	assert.Equal(t, "    │ "+strings.Repeat("^", len("DIV _t0, _t1 -> _t2")), lines[4])
	assert.NotContains(t, formatted, "note:")
}

func TestFormatSuggestionReplacement(t *testing.T) {
	reporter := NewErrorReporter("a.layer", "ivar limit")

	formatted := reporter.FormatError(MissingInitializer("limit", ast.Position{Line: 1, Column: 6}))

	assert.Contains(t, formatted, "help: try give it a value")
	assert.Contains(t, formatted, "ivar limit = ...")
	assert.Contains(t, formatted, "note: use 'cvar'")
}

func TestUndeclaredIdentifierSuggestions(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 5}

	err := UndeclaredIdentifier("xyz", pos, nil)
	assert.Len(t, err.Suggestions, 1)
	assert.Contains(t, err.Suggestions[0].Message, "make sure the variable is declared")
	assert.Contains(t, err.Notes[0], "'cvar' or 'ivar'")

	err = UndeclaredIdentifier("ag", pos, []string{"age", "agg"})
	assert.Contains(t, err.Suggestions[0].Message, "did you mean one of: 'age', 'agg'?")
}

func TestErrorConstructors(t *testing.T) {
	pos := ast.Position{Filename: "a.layer", Line: 2, Column: 1}

	tests := []struct {
		name string
		err  CompilerError
		code string
		text string
	}{
		{"duplicate", DuplicateDeclaration("age", pos, ast.Position{Line: 1, Column: 6}), ErrorDuplicateDeclaration, "already declared"},
		{"missing initializer", MissingInitializer("limit", pos), ErrorMissingInitializer, "must be initialized"},
		{"assign undeclared", AssignUndeclared("total", pos, nil), ErrorAssignUndeclared, "undeclared variable 'total'"},
		{"uninitialized read", UninitializedRead("later", pos), ErrorUninitializedRead, "read before it is assigned"},
		{"assign immutable", AssignImmutable("limit", pos), ErrorAssignImmutable, "ivar 'limit'"},
		{"syntax", SyntaxError("unexpected token", pos), ErrorSyntax, "unexpected token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, Error, tt.err.Level)
			assert.Contains(t, tt.err.Message, tt.text)
		})
	}
}

func TestCompilerErrorAsError(t *testing.T) {
	err := UninitializedRead("x", ast.Position{Filename: "a.layer", Line: 4, Column: 7})
	assert.Equal(t, "a.layer:4:7: error[E0105]: 'x' is read before it is assigned", err.Error())

	runtime := RuntimeError(ErrorTypeMismatch, "cannot add text and number", nil)
	assert.Equal(t, "error[E0301]: cannot add text and number", runtime.Error())

	framed := RuntimeError(ErrorTypeMismatch, "cannot add text and number", &Frame{PC: 4, Instr: "ADD _t1, _t2 -> _t3"})
	assert.Equal(t, "pc 4: error[E0301]: cannot add text and number", framed.Error())
}

func TestCollect(t *testing.T) {
	pos := ast.Position{Line: 1, Column: 1}

	var merr *multierror.Error
	merr = multierror.Append(merr, MissingInitializer("a", pos))
	merr = multierror.Append(merr, AssignImmutable("b", pos))

	errs := Collect(fmt.Errorf("check failed: %w", merr.ErrorOrNil()))
	require.Len(t, errs, 2)
	assert.Equal(t, ErrorMissingInitializer, errs[0].Code)
	assert.Equal(t, ErrorAssignImmutable, errs[1].Code)

	assert.Nil(t, Collect(nil))
	assert.Empty(t, Collect(fmt.Errorf("plain")))

	single := Collect(SyntaxError("bad", pos))
	require.Len(t, single, 1)
	assert.Equal(t, ErrorSyntax, single[0].Code)
}

func TestFindSimilarNames(t *testing.T) {
	candidates := []string{"count", "counter", "age", "total"}

	assert.Equal(t, []string{"count"}, FindSimilarNames("cuont", candidates))
	assert.Empty(t, FindSimilarNames("zzzzzz", candidates))
	assert.NotContains(t, FindSimilarNames("count", candidates), "count")
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("age", "age"))
	assert.Equal(t, 1, levenshteinDistance("age", "ages"))
	assert.Equal(t, 2, levenshteinDistance("cuont", "count"))
	assert.Equal(t, 3, levenshteinDistance("", "abc"))
}

func TestErrorCategories(t *testing.T) {
	assert.Equal(t, "Syntax", GetErrorCategory(ErrorSyntax))
	assert.Equal(t, "Semantic Analysis", GetErrorCategory(ErrorAssignImmutable))
	assert.Equal(t, "Internal", GetErrorCategory(ErrorDuplicateLabel))
	assert.Equal(t, "Runtime", GetErrorCategory(ErrorStepLimitExceeded))

	assert.True(t, strings.HasPrefix(GetErrorDescription(ErrorDivisionByZero), "Division"))
	assert.Equal(t, "Unknown error code", GetErrorDescription("E9999"))
}
