package semantic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"layer/internal/ast"
	"layer/internal/errors"
	"layer/internal/parser"
)

func analyze(t *testing.T, src string) []errors.CompilerError {
	t.Helper()
	program, err := parser.ParseSource("test.layer", src)
	require.NoError(t, err)
	return NewAnalyzer().Analyze(program)
}

func codes(errs []errors.CompilerError) []string {
	out := make([]string, len(errs))
	for i, err := range errs {
		out[i] = err.Code
	}
	return out
}

func TestValidPrograms(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"declare and write", "cvar age = 5\nwrite(age)"},
		{"late assignment", "cvar later\nlater = 3\nwrite(later)"},
		{"ivar read", "ivar limit = 10\nwrite(limit * 2)"},
		{"loop variable", "loop i for 3 times -> write(i)"},
		{"loop reuses outer variable", "cvar i = 9\nloop i for 3 times -> write(i)\nwrite(i)"},
		{"sibling scopes", "if true -> { cvar x = 1 }\nif true -> { cvar x = 2 }"},
		{"sequential loops share name", "loop i for 2 -> write(i)\nloop i for 2 -> write(i)"},
		{"while with counter", "cvar n = 0\nloop while n < 3 -> n = n + 1"},
		{"empty program", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, analyze(t, tt.src))
		})
	}
}

func TestInvalidPrograms(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected []string
	}{
		{"undeclared read", "write(missing)", []string{errors.ErrorUndeclaredIdentifier}},
		{"self reference in initializer", "cvar x = x + 1", []string{errors.ErrorUndeclaredIdentifier}},
		{"duplicate", "cvar a = 1\ncvar a = 2", []string{errors.ErrorDuplicateDeclaration}},
		{"shadowing", "cvar a = 1\nif a > 0 -> { cvar a = 2 }", []string{errors.ErrorDuplicateDeclaration}},
		{"shadowing loop variable", "loop i for 2 -> { cvar i = 0 }", []string{errors.ErrorDuplicateDeclaration}},
		{"ivar without value", "ivar limit", []string{errors.ErrorMissingInitializer}},
		{"assign undeclared", "total = 1", []string{errors.ErrorAssignUndeclared}},
		{"read before assignment", "cvar later\nwrite(later)", []string{errors.ErrorUninitializedRead}},
		{"assign ivar", "ivar limit = 1\nlimit = 2", []string{errors.ErrorAssignImmutable}},
		{"ivar as loop variable", "ivar i = 0\nloop i for 2 -> write(i)", []string{errors.ErrorAssignImmutable}},
		{"out of scope", "if true -> { cvar inner = 1 }\nwrite(inner)", []string{errors.ErrorUndeclaredIdentifier}},
		{"loop variable out of scope", "loop i for 2 -> write(i)\nwrite(i)", []string{errors.ErrorUndeclaredIdentifier}},
		{
			"several errors in order",
			"write(a)\nivar b\nb = 1",
			[]string{errors.ErrorUndeclaredIdentifier, errors.ErrorMissingInitializer, errors.ErrorAssignImmutable},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, codes(analyze(t, tt.src)))
		})
	}
}

func TestUndeclaredSuggestsSimilarName(t *testing.T) {
	errs := analyze(t, "cvar count = 0\nwrite(cuont)")
	require.Len(t, errs, 1)
	require.NotEmpty(t, errs[0].Suggestions)
	assert.Contains(t, errs[0].Suggestions[0].Message, "'count'")
	assert.Equal(t, 2, errs[0].Position.Line)
	assert.Equal(t, 7, errs[0].Position.Column)
}

func TestCheckReturnsMultierror(t *testing.T) {
	program, err := parser.ParseSource("test.layer", "write(a)\nwrite(b)")
	require.NoError(t, err)

	err = Check(program)
	require.Error(t, err)
	assert.Len(t, errors.Collect(err), 2)

	ok, err := parser.ParseSource("test.layer", "cvar a = 1")
	require.NoError(t, err)
	assert.NoError(t, Check(ok))
}

func TestSymbolTable(t *testing.T) {
	root := NewSymbolTable(nil)
	root.Define("outer", SymbolCvar, nil, ast.Position{Line: 1})

	child := NewSymbolTable(root)
	child.Define("inner", SymbolIvar, nil, ast.Position{Line: 2})

	assert.NotNil(t, child.Lookup("outer"))
	assert.Nil(t, child.LookupLocal("outer"))
	assert.NotNil(t, child.LookupLocal("inner"))
	assert.Nil(t, root.Lookup("inner"))
	assert.Equal(t, []string{"inner", "outer"}, child.VisibleNames())
}
