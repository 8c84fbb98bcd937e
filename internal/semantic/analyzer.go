package semantic

import (
	"github.com/hashicorp/go-multierror"

	"layer/internal/ast"
	"layer/internal/errors"
)

// Analyzer checks declared-versus-used rules over a parsed program. It
// performs no type inference.
type Analyzer struct {
	errors  []errors.CompilerError
	symbols *SymbolTable
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Check analyzes program and returns every violation as a multierror of
// errors.CompilerError, or nil.
func Check(program *ast.Program) error {
	a := NewAnalyzer()
	a.Analyze(program)

	var result *multierror.Error
	for _, err := range a.errors {
		result = multierror.Append(result, err)
	}
	return result.ErrorOrNil()
}

// Analyze runs the checker and returns the collected errors in source order.
func (a *Analyzer) Analyze(program *ast.Program) []errors.CompilerError {
	a.errors = nil
	a.symbols = NewSymbolTable(nil)

	for _, stmt := range program.Statements {
		// visitor methods record errors instead of returning them
		_ = stmt.Accept(a)
	}
	return a.errors
}

// GetErrors returns the errors from the last Analyze call
func (a *Analyzer) GetErrors() []errors.CompilerError {
	return a.errors
}

func (a *Analyzer) pushScope() {
	a.symbols = NewSymbolTable(a.symbols)
}

func (a *Analyzer) popScope() {
	a.symbols = a.symbols.parent
}

func (a *Analyzer) checkExpr(expr ast.Expr) {
	if expr != nil {
		_ = expr.Accept(a)
	}
}

func (a *Analyzer) VisitVarDecl(d *ast.VarDecl) error {
	a.checkExpr(d.Value)

	if d.Kind == ast.Ivar && d.Value == nil {
		a.addCompilerError(errors.MissingInitializer(d.Name, d.Pos))
	}

	if previous := a.symbols.Lookup(d.Name); previous != nil {
		a.addDuplicateDeclarationError(d.Name, d.Pos, previous)
		return nil
	}

	kind := SymbolCvar
	if d.Kind == ast.Ivar {
		kind = SymbolIvar
	}
	symbol := a.symbols.Define(d.Name, kind, d, d.Pos)
	// an ivar without initializer is already reported; treat it as assigned
	// so its reads do not produce a second error
	symbol.Assigned = d.Value != nil || kind == SymbolIvar
	return nil
}

func (a *Analyzer) VisitAssignment(s *ast.Assignment) error {
	a.checkExpr(s.Value)

	symbol := a.symbols.Lookup(s.Name)
	switch {
	case symbol == nil:
		a.addAssignUndeclaredError(s.Name, s.Pos)
	case symbol.Kind == SymbolIvar:
		a.addCompilerError(errors.AssignImmutable(s.Name, s.Pos))
	default:
		symbol.Assigned = true
	}
	return nil
}

func (a *Analyzer) VisitWriteStmt(s *ast.WriteStmt) error {
	for _, arg := range s.Args {
		a.checkExpr(arg)
	}
	return nil
}

func (a *Analyzer) VisitLoopFor(s *ast.LoopFor) error {
	a.checkExpr(s.Count)

	a.pushScope()
	defer a.popScope()

	if existing := a.symbols.Lookup(s.Var); existing != nil {
		if existing.Kind == SymbolIvar {
			a.addCompilerError(errors.AssignImmutable(s.Var, s.Pos))
		}
		existing.Assigned = true
	} else {
		symbol := a.symbols.Define(s.Var, SymbolLoopVar, s, s.Pos)
		symbol.Assigned = true
	}

	return s.Body.Accept(a)
}

func (a *Analyzer) VisitLoopWhile(s *ast.LoopWhile) error {
	a.checkExpr(s.Cond)
	return s.Body.Accept(a)
}

func (a *Analyzer) VisitIfStmt(s *ast.IfStmt) error {
	a.checkExpr(s.Cond)
	return s.Body.Accept(a)
}

func (a *Analyzer) VisitBlock(b *ast.Block) error {
	if b == nil {
		return nil
	}

	a.pushScope()
	defer a.popScope()

	for _, stmt := range b.Statements {
		_ = stmt.Accept(a)
	}
	return nil
}

func (a *Analyzer) VisitIdentifier(e *ast.Identifier) error {
	symbol := a.symbols.Lookup(e.Name)
	if symbol == nil {
		a.addUndeclaredIdentifierError(e.Name, e.Pos)
		return nil
	}
	if !symbol.Assigned {
		a.addCompilerError(errors.UninitializedRead(e.Name, e.Pos))
	}
	return nil
}

func (a *Analyzer) VisitNumberLiteral(*ast.NumberLiteral) error { return nil }

func (a *Analyzer) VisitStringLiteral(*ast.StringLiteral) error { return nil }

func (a *Analyzer) VisitBooleanLiteral(*ast.BooleanLiteral) error { return nil }

func (a *Analyzer) VisitBinaryOp(e *ast.BinaryOp) error {
	a.checkExpr(e.Left)
	a.checkExpr(e.Right)
	return nil
}
