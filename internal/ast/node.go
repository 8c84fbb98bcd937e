package ast

type Node interface {
	NodePos() Position
	NodeEndPos() Position
	NodeType() NodeType
	String() string
}

// Stmt is the closed set of statement nodes.
type Stmt interface {
	Node
	Accept(v StmtVisitor) error
	isStmt()
}

// StmtVisitor has one method per statement variant.
type StmtVisitor interface {
	VisitVarDecl(*VarDecl) error
	VisitAssignment(*Assignment) error
	VisitWriteStmt(*WriteStmt) error
	VisitLoopFor(*LoopFor) error
	VisitLoopWhile(*LoopWhile) error
	VisitIfStmt(*IfStmt) error
	VisitBlock(*Block) error
}

func (*VarDecl) isStmt()    {}
func (*Assignment) isStmt() {}
func (*WriteStmt) isStmt()  {}
func (*LoopFor) isStmt()    {}
func (*LoopWhile) isStmt()  {}
func (*IfStmt) isStmt()     {}
func (*Block) isStmt()      {}

func (d *VarDecl) Accept(v StmtVisitor) error    { return v.VisitVarDecl(d) }
func (a *Assignment) Accept(v StmtVisitor) error { return v.VisitAssignment(a) }
func (w *WriteStmt) Accept(v StmtVisitor) error  { return v.VisitWriteStmt(w) }
func (l *LoopFor) Accept(v StmtVisitor) error    { return v.VisitLoopFor(l) }
func (l *LoopWhile) Accept(v StmtVisitor) error  { return v.VisitLoopWhile(l) }
func (i *IfStmt) Accept(v StmtVisitor) error     { return v.VisitIfStmt(i) }
func (b *Block) Accept(v StmtVisitor) error      { return v.VisitBlock(b) }

func (p *Program) NodePos() Position    { return p.Pos }
func (p *Program) NodeEndPos() Position { return p.EndPos }
func (*Program) NodeType() NodeType     { return PROGRAM }

func (b *Block) NodePos() Position    { return b.Pos }
func (b *Block) NodeEndPos() Position { return b.EndPos }
func (*Block) NodeType() NodeType     { return BLOCK }

func (d *VarDecl) NodePos() Position    { return d.Pos }
func (d *VarDecl) NodeEndPos() Position { return d.EndPos }
func (*VarDecl) NodeType() NodeType     { return VAR_DECL }

func (a *Assignment) NodePos() Position    { return a.Pos }
func (a *Assignment) NodeEndPos() Position { return a.EndPos }
func (*Assignment) NodeType() NodeType     { return ASSIGNMENT }

func (w *WriteStmt) NodePos() Position    { return w.Pos }
func (w *WriteStmt) NodeEndPos() Position { return w.EndPos }
func (*WriteStmt) NodeType() NodeType     { return WRITE_STMT }

func (l *LoopFor) NodePos() Position    { return l.Pos }
func (l *LoopFor) NodeEndPos() Position { return l.EndPos }
func (*LoopFor) NodeType() NodeType     { return LOOP_FOR }

func (l *LoopWhile) NodePos() Position    { return l.Pos }
func (l *LoopWhile) NodeEndPos() Position { return l.EndPos }
func (*LoopWhile) NodeType() NodeType     { return LOOP_WHILE }

func (i *IfStmt) NodePos() Position    { return i.Pos }
func (i *IfStmt) NodeEndPos() Position { return i.EndPos }
func (*IfStmt) NodeType() NodeType     { return IF_STMT }

func (i *Identifier) NodePos() Position    { return i.Pos }
func (i *Identifier) NodeEndPos() Position { return i.EndPos }
func (*Identifier) NodeType() NodeType     { return IDENTIFIER }

func (n *NumberLiteral) NodePos() Position    { return n.Pos }
func (n *NumberLiteral) NodeEndPos() Position { return n.EndPos }
func (*NumberLiteral) NodeType() NodeType     { return NUMBER_LITERAL }

func (s *StringLiteral) NodePos() Position    { return s.Pos }
func (s *StringLiteral) NodeEndPos() Position { return s.EndPos }
func (*StringLiteral) NodeType() NodeType     { return STRING_LITERAL }

func (b *BooleanLiteral) NodePos() Position    { return b.Pos }
func (b *BooleanLiteral) NodeEndPos() Position { return b.EndPos }
func (*BooleanLiteral) NodeType() NodeType     { return BOOLEAN_LITERAL }

func (b *BinaryOp) NodePos() Position    { return b.Pos }
func (b *BinaryOp) NodeEndPos() Position { return b.EndPos }
func (*BinaryOp) NodeType() NodeType     { return BINARY_OP }
