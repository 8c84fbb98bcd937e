package ast

import (
	"fmt"
	"strings"
)

// Dump renders the program as an indented tree, one node per line.
//
//	Program
//	  VarDecl cvar age
//	    NumberLiteral 5
func Dump(p *Program) string {
	d := &dumper{}
	d.line("Program")
	d.depth++
	for _, stmt := range p.Statements {
		_ = stmt.Accept(d)
	}
	return d.out.String()
}

type dumper struct {
	out   strings.Builder
	depth int
}

func (d *dumper) line(format string, args ...interface{}) {
	d.out.WriteString(strings.Repeat("  ", d.depth))
	d.out.WriteString(fmt.Sprintf(format, args...))
	d.out.WriteString("\n")
}

func (d *dumper) nested(fn func()) {
	d.depth++
	fn()
	d.depth--
}

func (d *dumper) expr(e Expr) {
	d.nested(func() { _ = e.Accept(d) })
}

func (d *dumper) block(b *Block) {
	d.nested(func() { _ = b.Accept(d) })
}

func (d *dumper) VisitVarDecl(s *VarDecl) error {
	d.line("VarDecl %s %s", s.Kind, s.Name)
	if s.Value != nil {
		d.expr(s.Value)
	}
	return nil
}

func (d *dumper) VisitAssignment(s *Assignment) error {
	d.line("Assignment %s", s.Name)
	d.expr(s.Value)
	return nil
}

func (d *dumper) VisitWriteStmt(s *WriteStmt) error {
	if s.IsFile {
		d.line("WriteStmt file")
	} else {
		d.line("WriteStmt")
	}
	for _, arg := range s.Args {
		d.expr(arg)
	}
	return nil
}

func (d *dumper) VisitLoopFor(s *LoopFor) error {
	d.line("LoopFor %s", s.Var)
	d.expr(s.Count)
	d.block(s.Body)
	return nil
}

func (d *dumper) VisitLoopWhile(s *LoopWhile) error {
	d.line("LoopWhile")
	d.expr(s.Cond)
	d.block(s.Body)
	return nil
}

func (d *dumper) VisitIfStmt(s *IfStmt) error {
	d.line("IfStmt")
	d.expr(s.Cond)
	d.block(s.Body)
	return nil
}

func (d *dumper) VisitBlock(s *Block) error {
	d.line("Block")
	d.nested(func() {
		for _, stmt := range s.Statements {
			_ = stmt.Accept(d)
		}
	})
	return nil
}

func (d *dumper) VisitIdentifier(e *Identifier) error {
	d.line("Identifier %s", e.Name)
	return nil
}

func (d *dumper) VisitNumberLiteral(e *NumberLiteral) error {
	d.line("NumberLiteral %s", e.String())
	return nil
}

func (d *dumper) VisitStringLiteral(e *StringLiteral) error {
	d.line("StringLiteral %s", e.String())
	return nil
}

func (d *dumper) VisitBooleanLiteral(e *BooleanLiteral) error {
	d.line("BooleanLiteral %t", e.Value)
	return nil
}

func (d *dumper) VisitBinaryOp(e *BinaryOp) error {
	d.line("BinaryOp %s", e.Op)
	d.expr(e.Left)
	d.expr(e.Right)
	return nil
}
