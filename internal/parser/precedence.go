package parser

import (
	"layer/grammar"
	"layer/internal/ast"
)

const lowestPrecedence = 1

var binaryPrecedence = map[string]int{
	"==": 1, "!=": 1,
	"<": 1, "<=": 1, ">": 1, ">=": 1,
	"+": 2, "-": 2,
	"*": 3, "/": 3,
	"^": 4,
}

var rightAssociative = map[string]bool{
	"^": true,
}

// chain is a flat operand/operator sequence as produced by the grammar.
// Operator i joins operands i and i+1.
type chain struct {
	operands []ast.Expr
	ops      []*grammar.BinOp
	next     int
}

func (b *builder) climb(c *chain, minPrec int) ast.Expr {
	left := c.operands[c.next]

	for c.next < len(c.ops) {
		op := c.ops[c.next]
		prec, ok := binaryPrecedence[op.Operator]
		if !ok {
			b.fail(makePos(op.Pos), "unknown operator %q", op.Operator)
			return left
		}
		if prec < minPrec {
			break
		}

		c.next++
		nextMin := prec + 1
		if rightAssociative[op.Operator] {
			nextMin = prec
		}
		right := b.climb(c, nextMin)

		left = &ast.BinaryOp{
			Pos:    left.NodePos(),
			EndPos: right.NodeEndPos(),
			Left:   left,
			Op:     ast.Operator(op.Operator),
			Right:  right,
		}
	}

	return left
}
