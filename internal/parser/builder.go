package parser

import (
	"fmt"
	"strconv"

	"layer/grammar"
	"layer/internal/ast"
)

// builder converts the participle tree into AST nodes. The first conversion
// failure is kept in err; later ones are ignored.
type builder struct {
	err error
}

func (b *builder) fail(pos ast.Position, format string, args ...any) {
	if b.err == nil {
		b.err = &ParseError{Message: fmt.Sprintf(format, args...), Position: pos}
	}
}

func (b *builder) program(tree *grammar.Program) *ast.Program {
	program := &ast.Program{
		Pos:    makePos(tree.Pos),
		EndPos: makePos(tree.EndPos),
	}
	for _, stmt := range tree.Statements {
		if s := b.statement(stmt); s != nil {
			program.Statements = append(program.Statements, s)
		}
	}
	return program
}

func (b *builder) statement(stmt *grammar.Statement) ast.Stmt {
	switch {
	case stmt.VarDecl != nil:
		d := stmt.VarDecl
		decl := &ast.VarDecl{
			Pos:    makePos(d.Pos),
			EndPos: makePos(d.EndPos),
			Kind:   ast.DeclKind(d.Kind),
			Name:   d.Name,
		}
		if d.Value != nil {
			decl.Value = b.expr(d.Value)
		}
		return decl

	case stmt.Assign != nil:
		a := stmt.Assign
		return &ast.Assignment{
			Pos:    makePos(a.Pos),
			EndPos: makePos(a.EndPos),
			Name:   a.Name,
			Value:  b.expr(a.Value),
		}

	case stmt.Write != nil:
		w := stmt.Write
		write := &ast.WriteStmt{
			Pos:    makePos(w.Pos),
			EndPos: makePos(w.EndPos),
			IsFile: w.Keyword == "fwrite",
		}
		for _, arg := range w.Args {
			write.Args = append(write.Args, b.expr(arg))
		}
		return write

	case stmt.For != nil:
		f := stmt.For
		return &ast.LoopFor{
			Pos:    makePos(f.Pos),
			EndPos: makePos(f.EndPos),
			Var:    f.Var,
			Count:  b.expr(f.Count),
			Body:   b.block(f.Body),
		}

	case stmt.While != nil:
		w := stmt.While
		return &ast.LoopWhile{
			Pos:    makePos(w.Pos),
			EndPos: makePos(w.EndPos),
			Cond:   b.expr(w.Cond),
			Body:   b.block(w.Body),
		}

	case stmt.If != nil:
		i := stmt.If
		return &ast.IfStmt{
			Pos:    makePos(i.Pos),
			EndPos: makePos(i.EndPos),
			Cond:   b.expr(i.Cond),
			Body:   b.block(i.Body),
		}
	}

	b.fail(makePos(stmt.Pos), "expected statement")
	return nil
}

func (b *builder) block(blk *grammar.Block) *ast.Block {
	block := &ast.Block{
		Pos:    makePos(blk.Pos),
		EndPos: makePos(blk.EndPos),
	}

	if blk.Single != nil {
		if s := b.statement(blk.Single); s != nil {
			block.Statements = append(block.Statements, s)
		}
		return block
	}

	for _, stmt := range blk.Statements {
		if s := b.statement(stmt); s != nil {
			block.Statements = append(block.Statements, s)
		}
	}
	return block
}

func (b *builder) expr(e *grammar.Expr) ast.Expr {
	c := &chain{operands: []ast.Expr{b.unary(e.Left)}}
	for _, op := range e.Ops {
		c.ops = append(c.ops, op)
		c.operands = append(c.operands, b.unary(op.Right))
	}
	return b.climb(c, lowestPrecedence)
}

func (b *builder) unary(u *grammar.UnaryExpr) ast.Expr {
	value := b.primary(u.Value)
	if !u.Negate {
		return value
	}

	pos := makePos(u.Pos)
	if lit, ok := value.(*ast.NumberLiteral); ok {
		return &ast.NumberLiteral{
			Pos:    pos,
			EndPos: lit.EndPos,
			Value:  -lit.Value,
			Raw:    "-" + lit.Raw,
		}
	}

	return &ast.BinaryOp{
		Pos:    pos,
		EndPos: value.NodeEndPos(),
		Left:   &ast.NumberLiteral{Pos: pos, EndPos: pos, Value: 0, Raw: "0"},
		Op:     ast.OpSub,
		Right:  value,
	}
}

func (b *builder) primary(p *grammar.PrimaryExpr) ast.Expr {
	pos, end := makePos(p.Pos), makePos(p.EndPos)

	switch {
	case p.Number != nil:
		n, err := strconv.ParseFloat(*p.Number, 64)
		if err != nil {
			b.fail(pos, "invalid number literal %q", *p.Number)
		}
		return &ast.NumberLiteral{Pos: pos, EndPos: end, Value: n, Raw: *p.Number}

	case p.String != nil:
		raw := *p.String
		return &ast.StringLiteral{Pos: pos, EndPos: end, Value: raw[1 : len(raw)-1]}

	case p.Bool != nil:
		return &ast.BooleanLiteral{Pos: pos, EndPos: end, Value: *p.Bool == "true"}

	case p.Ident != nil:
		return &ast.Identifier{Pos: pos, EndPos: end, Name: *p.Ident}

	case p.Parens != nil:
		return b.expr(p.Parens)
	}

	b.fail(pos, "expected expression")
	return &ast.Identifier{Pos: pos, EndPos: end}
}
