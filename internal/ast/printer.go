package ast

import (
	"fmt"
	"strconv"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder
	for _, stmt := range p.Statements {
		b.WriteString(stmt.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (b *Block) String() string {
	if len(b.Statements) == 0 {
		return "{}"
	}

	var sb strings.Builder
	sb.WriteString("{\n")
	for _, stmt := range b.Statements {
		sb.WriteString("    " + strings.ReplaceAll(stmt.String(), "\n", "\n    ") + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func (d *VarDecl) String() string {
	if d.Value == nil {
		return fmt.Sprintf("%s %s", d.Kind, d.Name)
	}
	return fmt.Sprintf("%s %s = %s", d.Kind, d.Name, d.Value.String())
}

func (a *Assignment) String() string {
	return fmt.Sprintf("%s = %s", a.Name, a.Value.String())
}

func (w *WriteStmt) String() string {
	args := make([]string, len(w.Args))
	for i, arg := range w.Args {
		args[i] = arg.String()
	}

	name := "write"
	if w.IsFile {
		name = "fwrite"
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
}

func (l *LoopFor) String() string {
	return fmt.Sprintf("loop %s for %s times -> %s", l.Var, l.Count.String(), l.Body.String())
}

func (l *LoopWhile) String() string {
	return fmt.Sprintf("loop while %s -> %s", l.Cond.String(), l.Body.String())
}

func (i *IfStmt) String() string {
	return fmt.Sprintf("if %s -> %s", i.Cond.String(), i.Body.String())
}

func (i *Identifier) String() string {
	return i.Name
}

func (n *NumberLiteral) String() string {
	if n.Raw != "" {
		return n.Raw
	}
	return strconv.FormatFloat(n.Value, 'g', -1, 64)
}

func (s *StringLiteral) String() string {
	return `"` + s.Value + `"`
}

func (b *BooleanLiteral) String() string {
	return strconv.FormatBool(b.Value)
}

func (b *BinaryOp) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op, b.Right.String())
}
