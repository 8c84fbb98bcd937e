package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func num(raw string, v float64) *NumberLiteral {
	return &NumberLiteral{Value: v, Raw: raw}
}

func TestVarDeclString(t *testing.T) {
	decl := &VarDecl{Kind: Cvar, Name: "age", Value: num("5", 5)}
	assert.Equal(t, "cvar age = 5", decl.String())

	bare := &VarDecl{Kind: Cvar, Name: "total"}
	assert.Equal(t, "cvar total", bare.String())
}

func TestBinaryOpString(t *testing.T) {
	expr := &BinaryOp{
		Left: &Identifier{Name: "age"},
		Op:   OpAdd,
		Right: &BinaryOp{
			Left:  num("2", 2),
			Op:    OpPow,
			Right: num("3", 3),
		},
	}
	assert.Equal(t, "(age + (2 ^ 3))", expr.String())
}

func TestWriteStmtString(t *testing.T) {
	write := &WriteStmt{Args: []Expr{&StringLiteral{Value: "age:"}, &Identifier{Name: "age"}}}
	assert.Equal(t, `write("age:", age)`, write.String())

	fwrite := &WriteStmt{Args: []Expr{&BooleanLiteral{Value: true}}, IsFile: true}
	assert.Equal(t, "fwrite(true)", fwrite.String())
}

func TestLoopString(t *testing.T) {
	loop := &LoopFor{
		Var:   "i",
		Count: num("3", 3),
		Body:  &Block{Statements: []Stmt{&WriteStmt{Args: []Expr{&Identifier{Name: "i"}}}}},
	}
	assert.Equal(t, "loop i for 3 times -> {\n    write(i)\n}", loop.String())

	while := &LoopWhile{
		Cond: &BinaryOp{Left: &Identifier{Name: "x"}, Op: OpLt, Right: num("10", 10)},
		Body: &Block{},
	}
	assert.Equal(t, "loop while (x < 10) -> {}", while.String())
}

func TestDump(t *testing.T) {
	program := &Program{
		Statements: []Stmt{
			&VarDecl{Kind: Cvar, Name: "age", Value: num("5", 5)},
			&IfStmt{
				Cond: &BinaryOp{Left: &Identifier{Name: "age"}, Op: OpGt, Right: num("10", 10)},
				Body: &Block{Statements: []Stmt{
					&WriteStmt{Args: []Expr{&StringLiteral{Value: "big"}}},
				}},
			},
		},
	}

	expected := `Program
  VarDecl cvar age
    NumberLiteral 5
  IfStmt
    BinaryOp >
      Identifier age
      NumberLiteral 10
    Block
      WriteStmt
        StringLiteral "big"
`
	assert.Equal(t, expected, Dump(program))
}

func TestOperatorClasses(t *testing.T) {
	for _, op := range []Operator{OpAdd, OpSub, OpMul, OpDiv, OpPow} {
		assert.True(t, op.IsArithmetic(), op)
		assert.False(t, op.IsComparison(), op)
	}
	for _, op := range []Operator{OpEq, OpNe, OpLt, OpLe, OpGt, OpGe} {
		assert.True(t, op.IsComparison(), op)
		assert.False(t, op.IsArithmetic(), op)
	}
	assert.False(t, Operator("%").IsArithmetic())
}

func TestNodeTypes(t *testing.T) {
	assert.Equal(t, LOOP_FOR, (&LoopFor{}).NodeType())
	assert.Equal(t, "LoopFor", LOOP_FOR.String())
	assert.Equal(t, "BinaryOp", (&BinaryOp{}).NodeType().String())
	assert.Equal(t, "Illegal", NodeType(999).String())
}
