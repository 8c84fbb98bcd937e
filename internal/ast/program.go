package ast

// Program represents a whole Layer source file
// Example: "cvar age = 5\nwrite(age)"
type Program struct {
	Pos        Position
	EndPos     Position
	Statements []Stmt
}

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// DeclKind distinguishes the two declaration keywords
type DeclKind string

const (
	// Cvar declares a variable that may be reassigned and may start uninitialized
	Cvar DeclKind = "cvar"
	// Ivar declares a variable that must be initialized and is never reassigned
	Ivar DeclKind = "ivar"
)

// VarDecl represents a variable declaration
// Example: "cvar age = 5", "cvar total", "ivar limit = 10"
type VarDecl struct {
	Pos    Position
	EndPos Position
	Kind   DeclKind
	Name   string
	Value  Expr // nil when declared without an initializer
}

// Assignment represents reassignment of a declared variable
// Example: "age = age + 2"
type Assignment struct {
	Pos    Position
	EndPos Position
	Name   string
	Value  Expr
}

// WriteStmt represents write(...) and fwrite(...) calls
// Example: "write("After", i, "age:", age)"
type WriteStmt struct {
	Pos    Position
	EndPos Position
	Args   []Expr
	IsFile bool // true for fwrite
}

// LoopFor represents a counted loop; Var runs from 0 to Count-1
// Example: "loop i for 3 times -> write(i)"
type LoopFor struct {
	Pos    Position
	EndPos Position
	Var    string
	Count  Expr
	Body   *Block
}

// LoopWhile represents a conditional loop
// Example: "loop while x < 10 -> { x = x + 1 }"
type LoopWhile struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Body   *Block
}

// IfStmt represents a conditional block; there is no else arm
// Example: "if age > 10 -> write("big")"
type IfStmt struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Body   *Block
}

// Block represents a braced statement list or a single-statement body
// Example: "{ write(i)\n age = age + 1 }"
type Block struct {
	Pos        Position
	EndPos     Position
	Statements []Stmt
}
