package semantic

import (
	"sort"

	"layer/internal/ast"
)

type SymbolKind int

const (
	SymbolCvar SymbolKind = iota
	SymbolIvar
	SymbolLoopVar
)

type Symbol struct {
	Name     string
	Kind     SymbolKind
	Node     ast.Node
	Position ast.Position
	Assigned bool // a value has been stored on some path before this point
}

type SymbolTable struct {
	symbols map[string]*Symbol
	parent  *SymbolTable
}

func NewSymbolTable(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]*Symbol),
		parent:  parent,
	}
}

func (st *SymbolTable) Define(name string, kind SymbolKind, node ast.Node, pos ast.Position) *Symbol {
	symbol := &Symbol{
		Name:     name,
		Kind:     kind,
		Node:     node,
		Position: pos,
	}
	st.symbols[name] = symbol
	return symbol
}

func (st *SymbolTable) Lookup(name string) *Symbol {
	if symbol, exists := st.symbols[name]; exists {
		return symbol
	}
	if st.parent != nil {
		return st.parent.Lookup(name)
	}
	return nil
}

func (st *SymbolTable) LookupLocal(name string) *Symbol {
	if symbol, exists := st.symbols[name]; exists {
		return symbol
	}
	return nil
}

// VisibleNames lists every name reachable from this scope, sorted.
func (st *SymbolTable) VisibleNames() []string {
	seen := make(map[string]bool)
	for scope := st; scope != nil; scope = scope.parent {
		for name := range scope.symbols {
			seen[name] = true
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
