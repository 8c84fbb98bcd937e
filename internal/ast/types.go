package ast

type NodeType int

const (
	ILLEGAL NodeType = iota

	PROGRAM
	BLOCK

	// Statements
	VAR_DECL
	ASSIGNMENT
	WRITE_STMT
	LOOP_FOR
	LOOP_WHILE
	IF_STMT

	// Expressions
	IDENTIFIER
	NUMBER_LITERAL
	STRING_LITERAL
	BOOLEAN_LITERAL
	BINARY_OP
)

var nodeTypeNames = [...]string{
	ILLEGAL:         "Illegal",
	PROGRAM:         "Program",
	BLOCK:           "Block",
	VAR_DECL:        "VarDecl",
	ASSIGNMENT:      "Assignment",
	WRITE_STMT:      "WriteStmt",
	LOOP_FOR:        "LoopFor",
	LOOP_WHILE:      "LoopWhile",
	IF_STMT:         "IfStmt",
	IDENTIFIER:      "Identifier",
	NUMBER_LITERAL:  "NumberLiteral",
	STRING_LITERAL:  "StringLiteral",
	BOOLEAN_LITERAL: "BooleanLiteral",
	BINARY_OP:       "BinaryOp",
}

func (t NodeType) String() string {
	if t < 0 || int(t) >= len(nodeTypeNames) {
		return nodeTypeNames[ILLEGAL]
	}
	return nodeTypeNames[t]
}
