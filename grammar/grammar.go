package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

type Program struct {
	Pos        lexer.Position
	EndPos     lexer.Position
	Statements []*Statement `@@*`
}

type Statement struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	VarDecl *VarDecl    `  @@`
	Write   *WriteStmt  `| @@`
	While   *WhileLoop  `| @@`
	For     *ForLoop    `| @@`
	If      *IfStmt     `| @@`
	Assign  *AssignStmt `| @@`
}

type VarDecl struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Kind   string `@("cvar" | "ivar")`
	Name   string `@Ident`
	Value  *Expr  `[ "=" @@ ]`
}

type AssignStmt struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   string `@Ident "="`
	Value  *Expr  `@@`
}

type WriteStmt struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Keyword string  `@("write" | "fwrite")`
	Args    []*Expr `"(" [ @@ { "," @@ } ] ")"`
}

type WhileLoop struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Cond   *Expr  `"loop" "while" @@ "->"`
	Body   *Block `@@`
}

type ForLoop struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Var    string `"loop" @Ident "for"`
	Count  *Expr  `@@ [ "times" ] "->"`
	Body   *Block `@@`
}

type IfStmt struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Cond   *Expr  `"if" @@ "->"`
	Body   *Block `@@`
}

// Block is either a braced statement list or a single statement.
type Block struct {
	Pos        lexer.Position
	EndPos     lexer.Position
	Statements []*Statement `  "{" @@* "}"`
	Single     *Statement   `| @@`
}

// Expr is a flat operand/operator chain; precedence is resolved by the
// parser package when it builds the AST.
type Expr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Left   *UnaryExpr `@@`
	Ops    []*BinOp   `{ @@ }`
}

type BinOp struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Operator string     `@("==" | "!=" | "<=" | ">=" | "<" | ">" | "+" | "-" | "*" | "/" | "^")`
	Right    *UnaryExpr `@@`
}

type UnaryExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Negate bool         `[ @"-" ]`
	Value  *PrimaryExpr `@@`
}

type PrimaryExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Number *string `  @Number`
	String *string `| @String`
	Bool   *string `| @("true" | "false")`
	Ident  *string `| @Ident`
	Parens *Expr   `| "(" @@ ")"`
}
