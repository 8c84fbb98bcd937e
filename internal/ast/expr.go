package ast

// Expr is the closed set of expression nodes. Expressions reach the back end
// with precedence already resolved into the tree shape.
type Expr interface {
	Node
	Accept(v ExprVisitor) error
	isExpr()
}

// ExprVisitor has one method per expression variant. Adding a variant
// without extending every visitor is a compile error.
type ExprVisitor interface {
	VisitIdentifier(*Identifier) error
	VisitNumberLiteral(*NumberLiteral) error
	VisitStringLiteral(*StringLiteral) error
	VisitBooleanLiteral(*BooleanLiteral) error
	VisitBinaryOp(*BinaryOp) error
}

// Identifier represents a variable reference
// Example: "age"
type Identifier struct {
	Pos    Position
	EndPos Position
	Name   string
}

// NumberLiteral represents a numeric constant
// Example: "5", "2.5"
type NumberLiteral struct {
	Pos    Position
	EndPos Position
	Value  float64
	Raw    string
}

// StringLiteral represents a quoted string; Value has the quotes removed
// Example: "\"Final age:\""
type StringLiteral struct {
	Pos    Position
	EndPos Position
	Value  string
}

// BooleanLiteral represents true or false
type BooleanLiteral struct {
	Pos    Position
	EndPos Position
	Value  bool
}

// BinaryOp represents an infix operation
// Example: "age + 2", "2 ^ 3", "age > 10"
type BinaryOp struct {
	Pos    Position
	EndPos Position
	Left   Expr
	Op     Operator
	Right  Expr
}

// Operator is the textual form of a binary operator
type Operator string

const (
	OpAdd Operator = "+"
	OpSub Operator = "-"
	OpMul Operator = "*"
	OpDiv Operator = "/"
	OpPow Operator = "^"

	OpEq Operator = "=="
	OpNe Operator = "!="
	OpLt Operator = "<"
	OpLe Operator = "<="
	OpGt Operator = ">"
	OpGe Operator = ">="
)

// IsArithmetic reports whether op produces a number from two operands.
func (op Operator) IsArithmetic() bool {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpPow:
		return true
	}
	return false
}

// IsComparison reports whether op produces a boolean.
func (op Operator) IsComparison() bool {
	switch op {
	case OpEq, OpNe, OpLt, OpLe, OpGt, OpGe:
		return true
	}
	return false
}

func (*Identifier) isExpr() {}

func (*NumberLiteral) isExpr() {}

func (*StringLiteral) isExpr() {}

func (*BooleanLiteral) isExpr() {}

func (*BinaryOp) isExpr() {}

func (i *Identifier) Accept(v ExprVisitor) error     { return v.VisitIdentifier(i) }
func (n *NumberLiteral) Accept(v ExprVisitor) error  { return v.VisitNumberLiteral(n) }
func (s *StringLiteral) Accept(v ExprVisitor) error  { return v.VisitStringLiteral(s) }
func (b *BooleanLiteral) Accept(v ExprVisitor) error { return v.VisitBooleanLiteral(b) }
func (b *BinaryOp) Accept(v ExprVisitor) error       { return v.VisitBinaryOp(b) }
