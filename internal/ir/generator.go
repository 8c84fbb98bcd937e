package ir

import (
	"fmt"

	"github.com/tliron/commonlog"

	"layer/internal/ast"
	"layer/internal/value"
)

var log = commonlog.GetLogger("layer.ir")

var arithOps = map[ast.Operator]ArithOp{
	ast.OpAdd: Add,
	ast.OpSub: Sub,
	ast.OpMul: Mul,
	ast.OpDiv: Div,
	ast.OpPow: Pow,
}

var cmpOps = map[ast.Operator]CmpOp{
	ast.OpEq: Eq,
	ast.OpNe: Ne,
	ast.OpLt: Lt,
	ast.OpLe: Le,
	ast.OpGt: Gt,
	ast.OpGe: Ge,
}

// Generator lowers a checked AST into linear IR. Its allocators keep
// counting across Generate calls, so sequences produced by one Generator
// never share temp or label names.
type Generator struct {
	temps  *TempAllocator
	labels *LabelAllocator
	code   []Instruction

	// result of the most recently lowered expression
	last Temp
}

// NewGenerator creates a generator over the given allocators; nil
// allocators are replaced by fresh ones.
func NewGenerator(temps *TempAllocator, labels *LabelAllocator) *Generator {
	if temps == nil {
		temps = NewTempAllocator()
	}
	if labels == nil {
		labels = NewLabelAllocator()
	}
	return &Generator{temps: temps, labels: labels}
}

// Generate lowers program with fresh allocators
func Generate(program *ast.Program) ([]Instruction, error) {
	return NewGenerator(nil, nil).Generate(program)
}

// Generate lowers every statement of program in order
func (g *Generator) Generate(program *ast.Program) ([]Instruction, error) {
	if program == nil {
		return nil, fmt.Errorf("%w: nil program", ErrUnsupportedConstruct)
	}

	g.code = nil
	for _, stmt := range program.Statements {
		if err := g.lowerStmt(stmt); err != nil {
			return nil, err
		}
	}

	log.Debugf("generated %d instructions from %d statements", len(g.code), len(program.Statements))
	return g.code, nil
}

func (g *Generator) emit(inst Instruction) {
	g.code = append(g.code, inst)
}

func (g *Generator) lowerStmt(stmt ast.Stmt) error {
	if stmt == nil {
		return fmt.Errorf("%w: nil statement", ErrUnsupportedConstruct)
	}
	return stmt.Accept(g)
}

func (g *Generator) lowerExpr(expr ast.Expr) (Temp, error) {
	if expr == nil {
		return 0, fmt.Errorf("%w: nil expression", ErrUnsupportedConstruct)
	}
	if err := expr.Accept(g); err != nil {
		return 0, err
	}
	return g.last, nil
}

// lowerCondition emits the code for a branch condition. A comparison at the
// top of the expression becomes a comparison condition; anything else is
// truth-tested.
func (g *Generator) lowerCondition(expr ast.Expr) (Condition, error) {
	if bin, ok := expr.(*ast.BinaryOp); ok && bin != nil {
		if op, ok := cmpOps[bin.Op]; ok {
			left, err := g.lowerExpr(bin.Left)
			if err != nil {
				return Condition{}, err
			}
			right, err := g.lowerExpr(bin.Right)
			if err != nil {
				return Condition{}, err
			}
			return Comparison(op, left, right), nil
		}
	}

	t, err := g.lowerExpr(expr)
	if err != nil {
		return Condition{}, err
	}
	return TruthOf(t), nil
}

func (g *Generator) lowerBlock(b *ast.Block) error {
	if b == nil {
		return fmt.Errorf("%w: nil block", ErrUnsupportedConstruct)
	}
	return b.Accept(g)
}

func (g *Generator) VisitVarDecl(d *ast.VarDecl) error {
	var src Temp
	if d.Value == nil {
		src = g.temps.Next()
		g.emit(&LoadConst{Value: value.Null(), Dest: src})
	} else {
		t, err := g.lowerExpr(d.Value)
		if err != nil {
			return err
		}
		src = t
	}

	g.emit(&StoreVar{Source: src, Name: d.Name})
	return nil
}

func (g *Generator) VisitAssignment(a *ast.Assignment) error {
	t, err := g.lowerExpr(a.Value)
	if err != nil {
		return err
	}
	g.emit(&StoreVar{Source: t, Name: a.Name})
	return nil
}

func (g *Generator) VisitWriteStmt(w *ast.WriteStmt) error {
	stream := Stdout
	if w.IsFile {
		stream = File
	}

	for _, arg := range w.Args {
		t, err := g.lowerExpr(arg)
		if err != nil {
			return err
		}
		g.emit(&CallWrite{Source: t, Stream: stream})
	}
	g.emit(&PrintNewline{Stream: stream})
	return nil
}

func (g *Generator) VisitLoopFor(l *ast.LoopFor) error {
	zero := g.temps.Next()
	g.emit(&LoadConst{Value: value.Number(0), Dest: zero})
	g.emit(&StoreVar{Source: zero, Name: l.Var})

	// the count is evaluated once, before the first iteration
	count, err := g.lowerExpr(l.Count)
	if err != nil {
		return err
	}

	start := g.labels.Next(ForStartPrefix)
	end := g.labels.Next(ForEndPrefix)

	g.emit(&Label{Name: start})
	i := g.temps.Next()
	g.emit(&LoadVar{Name: l.Var, Dest: i})
	g.emit(&JumpIfFalse{Cond: Comparison(Lt, i, count), Label: end})

	if err := g.lowerBlock(l.Body); err != nil {
		return err
	}

	cur := g.temps.Next()
	one := g.temps.Next()
	next := g.temps.Next()
	g.emit(&LoadVar{Name: l.Var, Dest: cur})
	g.emit(&LoadConst{Value: value.Number(1), Dest: one})
	g.emit(&BinaryOp{Op: Add, Left: cur, Right: one, Dest: next})
	g.emit(&StoreVar{Source: next, Name: l.Var})
	g.emit(&Jump{Label: start})
	g.emit(&Label{Name: end})
	return nil
}

func (g *Generator) VisitLoopWhile(l *ast.LoopWhile) error {
	start := g.labels.Next(WhileStartPrefix)
	end := g.labels.Next(WhileEndPrefix)

	g.emit(&Label{Name: start})
	cond, err := g.lowerCondition(l.Cond)
	if err != nil {
		return err
	}
	g.emit(&JumpIfFalse{Cond: cond, Label: end})

	if err := g.lowerBlock(l.Body); err != nil {
		return err
	}

	g.emit(&Jump{Label: start})
	g.emit(&Label{Name: end})
	return nil
}

func (g *Generator) VisitIfStmt(s *ast.IfStmt) error {
	cond, err := g.lowerCondition(s.Cond)
	if err != nil {
		return err
	}

	end := g.labels.Next(IfEndPrefix)
	g.emit(&JumpIfFalse{Cond: cond, Label: end})

	if err := g.lowerBlock(s.Body); err != nil {
		return err
	}

	g.emit(&Label{Name: end})
	return nil
}

func (g *Generator) VisitBlock(b *ast.Block) error {
	for _, stmt := range b.Statements {
		if err := g.lowerStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) VisitIdentifier(e *ast.Identifier) error {
	g.last = g.temps.Next()
	g.emit(&LoadVar{Name: e.Name, Dest: g.last})
	return nil
}

func (g *Generator) VisitNumberLiteral(e *ast.NumberLiteral) error {
	return g.loadConst(value.Number(e.Value))
}

func (g *Generator) VisitStringLiteral(e *ast.StringLiteral) error {
	return g.loadConst(value.Text(e.Value))
}

func (g *Generator) VisitBooleanLiteral(e *ast.BooleanLiteral) error {
	return g.loadConst(value.Bool(e.Value))
}

func (g *Generator) loadConst(v value.Value) error {
	g.last = g.temps.Next()
	g.emit(&LoadConst{Value: v, Dest: g.last})
	return nil
}

func (g *Generator) VisitBinaryOp(e *ast.BinaryOp) error {
	left, err := g.lowerExpr(e.Left)
	if err != nil {
		return err
	}
	right, err := g.lowerExpr(e.Right)
	if err != nil {
		return err
	}

	dest := g.temps.Next()
	if op, ok := arithOps[e.Op]; ok {
		g.emit(&BinaryOp{Op: op, Left: left, Right: right, Dest: dest})
	} else if op, ok := cmpOps[e.Op]; ok {
		g.emit(&Compare{Op: op, Left: left, Right: right, Dest: dest})
	} else {
		return fmt.Errorf("%w: operator %q", ErrUnsupportedConstruct, e.Op)
	}

	g.last = dest
	return nil
}
