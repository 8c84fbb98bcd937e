package grammar_test

import (
	"layer/grammar"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeclarations(t *testing.T) {
	program, err := grammar.ParseString("decl.layer", `
# a comment
cvar age = 5
ivar name = "Ada"
cvar later
later = age + 1
`)
	require.NoError(t, err)
	require.Len(t, program.Statements, 4)

	decl := program.Statements[0].VarDecl
	require.NotNil(t, decl)
	assert.Equal(t, "cvar", decl.Kind)
	assert.Equal(t, "age", decl.Name)
	assert.Equal(t, "5", *decl.Value.Left.Value.Number)
	assert.Equal(t, 3, decl.Pos.Line)

	ivar := program.Statements[1].VarDecl
	require.NotNil(t, ivar)
	assert.Equal(t, "ivar", ivar.Kind)
	assert.Equal(t, `"Ada"`, *ivar.Value.Left.Value.String)

	assert.Nil(t, program.Statements[2].VarDecl.Value)

	assign := program.Statements[3].Assign
	require.NotNil(t, assign)
	assert.Equal(t, "later", assign.Name)
	require.Len(t, assign.Value.Ops, 1)
	assert.Equal(t, "+", assign.Value.Ops[0].Operator)
}

func TestParseWrite(t *testing.T) {
	program, err := grammar.ParseString("write.layer", `write("a", 1, true) fwrite() write(x)`)
	require.NoError(t, err)
	require.Len(t, program.Statements, 3)

	w := program.Statements[0].Write
	require.NotNil(t, w)
	assert.Equal(t, "write", w.Keyword)
	assert.Len(t, w.Args, 3)
	assert.Equal(t, "true", *w.Args[2].Left.Value.Bool)

	assert.Equal(t, "fwrite", program.Statements[1].Write.Keyword)
	assert.Empty(t, program.Statements[1].Write.Args)

	assert.Equal(t, "x", *program.Statements[2].Write.Args[0].Left.Value.Ident)
}

func TestParseLoops(t *testing.T) {
	program, err := grammar.ParseString("loops.layer", `
loop i for 3 times -> write(i)
loop j for n -> {
    write(j)
    write(j * 2)
}
loop while x < 10 -> {}
`)
	require.NoError(t, err)
	require.Len(t, program.Statements, 3)

	first := program.Statements[0].For
	require.NotNil(t, first)
	assert.Equal(t, "i", first.Var)
	require.NotNil(t, first.Body.Single)
	assert.NotNil(t, first.Body.Single.Write)

	second := program.Statements[1].For
	require.NotNil(t, second)
	assert.Equal(t, "n", *second.Count.Left.Value.Ident)
	assert.Len(t, second.Body.Statements, 2)

	while := program.Statements[2].While
	require.NotNil(t, while)
	assert.Equal(t, "<", while.Cond.Ops[0].Operator)
	assert.Nil(t, while.Body.Single)
	assert.Empty(t, while.Body.Statements)
}

func TestParseIfAndExpressions(t *testing.T) {
	program, err := grammar.ParseString("if.layer", `if -(a - 1) ^ 2 >= 4 -> write("big")`)
	require.NoError(t, err)
	require.Len(t, program.Statements, 1)

	stmt := program.Statements[0].If
	require.NotNil(t, stmt)

	cond := stmt.Cond
	assert.True(t, cond.Left.Negate)
	require.NotNil(t, cond.Left.Value.Parens)
	require.Len(t, cond.Ops, 2)
	assert.Equal(t, "^", cond.Ops[0].Operator)
	assert.Equal(t, ">=", cond.Ops[1].Operator)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"missing arrow", "if x write(x)"},
		{"unterminated string", `write("abc)`},
		{"dangling operator", "cvar x = 1 +"},
		{"unknown character", "cvar x = 1 % 2"},
		{"unclosed block", "loop while x -> { write(x)"},
		{"keyword as name", "cvar = 1"},
		{"keyword assignment", "while = 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := grammar.ParseString("bad.layer", tt.source)
			assert.Error(t, err)
		})
	}
}

func TestKeywordPrefixIsIdentifier(t *testing.T) {
	program, err := grammar.ParseString("ident.layer", "cvar iffy = 1\nwritten = iffy")
	require.NoError(t, err)
	require.Len(t, program.Statements, 2)
	assert.Equal(t, "iffy", program.Statements[0].VarDecl.Name)
	assert.Equal(t, "written", program.Statements[1].Assign.Name)
}
