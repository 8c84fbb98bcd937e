package ir

import (
	"fmt"

	"layer/internal/value"
)

// Temp names a virtual register. Temps are written exactly once in a
// generated sequence and print as _t<N>.
type Temp int

func (t Temp) String() string {
	return fmt.Sprintf("_t%d", int(t))
}

// Stream selects the sink a write goes to
type Stream int

const (
	Stdout Stream = iota
	File
)

func (s Stream) String() string {
	if s == File {
		return "file"
	}
	return "stdout"
}

// ArithOp is an arithmetic operator of a BinaryOp instruction
type ArithOp int

const (
	Add ArithOp = iota
	Sub
	Mul
	Div
	Pow
)

var arithNames = [...]string{Add: "ADD", Sub: "SUB", Mul: "MUL", Div: "DIV", Pow: "POW"}
var arithSymbols = [...]string{Add: "+", Sub: "-", Mul: "*", Div: "/", Pow: "^"}

func (op ArithOp) String() string { return arithNames[op] }

// Symbol returns the source-level operator
func (op ArithOp) Symbol() string { return arithSymbols[op] }

// CmpOp is a comparison operator used by Compare and conditional jumps
type CmpOp int

const (
	Eq CmpOp = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

var cmpNames = [...]string{Eq: "CMP_EQ", Ne: "CMP_NE", Lt: "CMP_LT", Le: "CMP_LE", Gt: "CMP_GT", Ge: "CMP_GE"}
var cmpSymbols = [...]string{Eq: "==", Ne: "!=", Lt: "<", Le: "<=", Gt: ">", Ge: ">="}

func (op CmpOp) String() string { return cmpNames[op] }

func (op CmpOp) Symbol() string { return cmpSymbols[op] }

// Condition is what a JumpIfFalse tests: either the truthiness of one temp
// or a comparison between two temps.
type Condition struct {
	Left      Temp
	Op        CmpOp
	Right     Temp
	IsCompare bool
}

// TruthOf builds a condition that tests a single temp
func TruthOf(t Temp) Condition {
	return Condition{Left: t}
}

// Comparison builds a condition that compares two temps
func Comparison(op CmpOp, left, right Temp) Condition {
	return Condition{Left: left, Op: op, Right: right, IsCompare: true}
}

func (c Condition) Operands() []Temp {
	if c.IsCompare {
		return []Temp{c.Left, c.Right}
	}
	return []Temp{c.Left}
}

func (c Condition) String() string {
	if c.IsCompare {
		return fmt.Sprintf("%s %s %s", c.Left, c.Op.Symbol(), c.Right)
	}
	return c.Left.String()
}

// Instruction is one step of the linear IR. The set of implementations is
// closed; Visitor has one method per implementation.
type Instruction interface {
	// Target returns the temp the instruction writes, if any
	Target() (Temp, bool)
	// Operands returns the temps the instruction reads
	Operands() []Temp
	// HasSideEffects reports whether the instruction must survive dead code
	// elimination regardless of its target being read
	HasSideEffects() bool
	Accept(v Visitor) error
	String() string
	isInstruction()
}

type Visitor interface {
	VisitLoadConst(i *LoadConst) error
	VisitLoadVar(i *LoadVar) error
	VisitBinaryOp(i *BinaryOp) error
	VisitCompare(i *Compare) error
	VisitStoreVar(i *StoreVar) error
	VisitCallWrite(i *CallWrite) error
	VisitPrintNewline(i *PrintNewline) error
	VisitLabel(i *Label) error
	VisitJump(i *Jump) error
	VisitJumpIfFalse(i *JumpIfFalse) error
}

// LoadConst writes a literal into a temp
type LoadConst struct {
	Value value.Value
	Dest  Temp
}

// LoadVar reads a named variable into a temp
type LoadVar struct {
	Name string
	Dest Temp
}

// BinaryOp applies an arithmetic operator to two temps
type BinaryOp struct {
	Op    ArithOp
	Left  Temp
	Right Temp
	Dest  Temp
}

// Compare evaluates a comparison into a boolean temp
type Compare struct {
	Op    CmpOp
	Left  Temp
	Right Temp
	Dest  Temp
}

// StoreVar copies a temp into a named variable
type StoreVar struct {
	Source Temp
	Name   string
}

// CallWrite appends one value to the pending output line of a stream
type CallWrite struct {
	Source Temp
	Stream Stream
}

// PrintNewline terminates the pending output line of a stream
type PrintNewline struct {
	Stream Stream
}

// Label marks a jump target
type Label struct {
	Name string
}

// Jump transfers control unconditionally
type Jump struct {
	Label string
}

// JumpIfFalse transfers control when Cond is falsy
type JumpIfFalse struct {
	Cond  Condition
	Label string
}

func (i *LoadConst) Target() (Temp, bool)    { return i.Dest, true }
func (i *LoadVar) Target() (Temp, bool)      { return i.Dest, true }
func (i *BinaryOp) Target() (Temp, bool)     { return i.Dest, true }
func (i *Compare) Target() (Temp, bool)      { return i.Dest, true }
func (i *StoreVar) Target() (Temp, bool)     { return 0, false }
func (i *CallWrite) Target() (Temp, bool)    { return 0, false }
func (i *PrintNewline) Target() (Temp, bool) { return 0, false }
func (i *Label) Target() (Temp, bool)        { return 0, false }
func (i *Jump) Target() (Temp, bool)         { return 0, false }
func (i *JumpIfFalse) Target() (Temp, bool)  { return 0, false }

func (i *LoadConst) Operands() []Temp    { return nil }
func (i *LoadVar) Operands() []Temp      { return nil }
func (i *BinaryOp) Operands() []Temp     { return []Temp{i.Left, i.Right} }
func (i *Compare) Operands() []Temp      { return []Temp{i.Left, i.Right} }
func (i *StoreVar) Operands() []Temp     { return []Temp{i.Source} }
func (i *CallWrite) Operands() []Temp    { return []Temp{i.Source} }
func (i *PrintNewline) Operands() []Temp { return nil }
func (i *Label) Operands() []Temp        { return nil }
func (i *Jump) Operands() []Temp         { return nil }
func (i *JumpIfFalse) Operands() []Temp  { return i.Cond.Operands() }

func (i *LoadConst) HasSideEffects() bool    { return false }
func (i *LoadVar) HasSideEffects() bool      { return false }
func (i *BinaryOp) HasSideEffects() bool     { return false }
func (i *Compare) HasSideEffects() bool      { return false }
func (i *StoreVar) HasSideEffects() bool     { return true }
func (i *CallWrite) HasSideEffects() bool    { return true }
func (i *PrintNewline) HasSideEffects() bool { return true }
func (i *Label) HasSideEffects() bool        { return true }
func (i *Jump) HasSideEffects() bool         { return true }
func (i *JumpIfFalse) HasSideEffects() bool  { return true }

func (i *LoadConst) Accept(v Visitor) error    { return v.VisitLoadConst(i) }
func (i *LoadVar) Accept(v Visitor) error      { return v.VisitLoadVar(i) }
func (i *BinaryOp) Accept(v Visitor) error     { return v.VisitBinaryOp(i) }
func (i *Compare) Accept(v Visitor) error      { return v.VisitCompare(i) }
func (i *StoreVar) Accept(v Visitor) error     { return v.VisitStoreVar(i) }
func (i *CallWrite) Accept(v Visitor) error    { return v.VisitCallWrite(i) }
func (i *PrintNewline) Accept(v Visitor) error { return v.VisitPrintNewline(i) }
func (i *Label) Accept(v Visitor) error        { return v.VisitLabel(i) }
func (i *Jump) Accept(v Visitor) error         { return v.VisitJump(i) }
func (i *JumpIfFalse) Accept(v Visitor) error  { return v.VisitJumpIfFalse(i) }

func (*LoadConst) isInstruction()    {}
func (*LoadVar) isInstruction()      {}
func (*BinaryOp) isInstruction()     {}
func (*Compare) isInstruction()      {}
func (*StoreVar) isInstruction()     {}
func (*CallWrite) isInstruction()    {}
func (*PrintNewline) isInstruction() {}
func (*Label) isInstruction()        {}
func (*Jump) isInstruction()         {}
func (*JumpIfFalse) isInstruction()  {}
