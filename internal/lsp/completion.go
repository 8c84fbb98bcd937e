package lsp

import (
	"slices"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"layer/internal/ast"
)

var keywords = []struct {
	label  string
	detail string
}{
	{"cvar", "mutable variable declaration"},
	{"ivar", "immutable variable declaration"},
	{"write", "print values to standard output"},
	{"fwrite", "print values to the file stream"},
	{"loop", "for or while loop"},
	{"for", "counted loop"},
	{"times", "counted loop suffix"},
	{"while", "conditional loop"},
	{"if", "conditional block"},
	{"true", "boolean literal"},
	{"false", "boolean literal"},
}

func keywordCompletions() []protocol.CompletionItem {
	kind := protocol.CompletionItemKindKeyword
	items := make([]protocol.CompletionItem, 0, len(keywords))
	for _, kw := range keywords {
		items = append(items, protocol.CompletionItem{
			Label:  kw.label,
			Kind:   &kind,
			Detail: ptrString(kw.detail),
		})
	}
	return items
}

// variableCompletions lists every variable the program declares, in
// first-declaration order.
func variableCompletions(program *ast.Program) []protocol.CompletionItem {
	if program == nil {
		return nil
	}

	c := &declCollector{}
	for _, stmt := range program.Statements {
		_ = stmt.Accept(c)
	}

	items := make([]protocol.CompletionItem, 0, len(c.names))
	for i, name := range c.names {
		kind := protocol.CompletionItemKindVariable
		if c.kinds[i] == ast.Ivar {
			kind = protocol.CompletionItemKindConstant
		}
		items = append(items, protocol.CompletionItem{
			Label:  name,
			Kind:   &kind,
			Detail: ptrString(string(c.kinds[i])),
		})
	}
	return items
}

type declCollector struct {
	names []string
	kinds []ast.DeclKind
}

func (c *declCollector) add(name string, kind ast.DeclKind) {
	if slices.Contains(c.names, name) {
		return
	}
	c.names = append(c.names, name)
	c.kinds = append(c.kinds, kind)
}

func (c *declCollector) VisitVarDecl(s *ast.VarDecl) error {
	c.add(s.Name, s.Kind)
	return nil
}

func (c *declCollector) VisitAssignment(*ast.Assignment) error { return nil }

func (c *declCollector) VisitWriteStmt(*ast.WriteStmt) error { return nil }

func (c *declCollector) VisitLoopFor(s *ast.LoopFor) error {
	c.add(s.Var, ast.Cvar)
	return s.Body.Accept(c)
}

func (c *declCollector) VisitLoopWhile(s *ast.LoopWhile) error { return s.Body.Accept(c) }

func (c *declCollector) VisitIfStmt(s *ast.IfStmt) error { return s.Body.Accept(c) }

func (c *declCollector) VisitBlock(s *ast.Block) error {
	for _, stmt := range s.Statements {
		if err := stmt.Accept(c); err != nil {
			return err
		}
	}
	return nil
}
