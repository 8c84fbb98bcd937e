package semantic

import (
	"layer/internal/ast"
	"layer/internal/errors"
)

func (a *Analyzer) addCompilerError(err errors.CompilerError) {
	a.errors = append(a.errors, err)
}

func (a *Analyzer) addUndeclaredIdentifierError(name string, pos ast.Position) {
	similar := errors.FindSimilarNames(name, a.symbols.VisibleNames())
	a.addCompilerError(errors.UndeclaredIdentifier(name, pos, similar))
}

func (a *Analyzer) addAssignUndeclaredError(name string, pos ast.Position) {
	similar := errors.FindSimilarNames(name, a.symbols.VisibleNames())
	a.addCompilerError(errors.AssignUndeclared(name, pos, similar))
}

func (a *Analyzer) addDuplicateDeclarationError(name string, pos ast.Position, previous *Symbol) {
	a.addCompilerError(errors.DuplicateDeclaration(name, pos, previous.Position))
}
