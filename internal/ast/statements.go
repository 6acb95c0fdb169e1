package ast

import "github.com/mining-lang/mining/pkg/token"

// RelOp is a relational-comparison operator used in a Basic condition.
type RelOp int

const (
	Gt RelOp = iota
	Lt
	Ge
	Le
	Eq
	Ne
)

func (op RelOp) String() string {
	switch op {
	case Gt:
		return ">"
	case Lt:
		return "<"
	case Ge:
		return ">="
	case Le:
		return "<="
	case Eq:
		return "=="
	case Ne:
		return "!="
	default:
		return "?"
	}
}

// LogOp is a logical-composition operator joining two Conditions.
type LogOp int

const (
	LogAnd LogOp = iota
	LogOr
)

// Condition is one of BasicCond, NotCond, or LogicCond.
type Condition interface {
	Node
	condNode()
}

// BasicCond is `Left Rel Right`.
type BasicCond struct {
	Left  Expr
	Right Expr
	Op    RelOp
	Token token.Token
}

func (c *BasicCond) Pos() token.Position { return c.Token.Pos }
func (*BasicCond) condNode()             {}

// NotCond is `! Condition`.
type NotCond struct {
	Inner Condition
	Token token.Token
}

func (c *NotCond) Pos() token.Position { return c.Token.Pos }
func (*NotCond) condNode()             {}

// LogicCond is `Condition (&& | ||) Condition`.
type LogicCond struct {
	Left  Condition
	Right Condition
	Op    LogOp
	Token token.Token
}

func (c *LogicCond) Pos() token.Position { return c.Token.Pos }
func (*LogicCond) condNode()             {}

// Assign is the Assign(Assignment) instruction form.
type Assign struct {
	Assignment Assignment
}

func (a *Assign) Pos() token.Position { return a.Assignment.Pos() }
func (*Assign) instNode()             {}

// IfStmt is `IF ( Cond ) { Inst* } (ELSE { Inst* })?`.
type IfStmt struct {
	Cond  Condition
	Then  []Instruction
	Else  []Instruction // nil when no ELSE clause
	Token token.Token
}

func (s *IfStmt) Pos() token.Position { return s.Token.Pos }
func (*IfStmt) instNode()             {}

// ForStmt is `FOR ( Assign : Expr : Expr ) { Inst* }`. The loop variable is
// Init.Target.
type ForStmt struct {
	Init  Assignment
	Step  Expr
	Bound Expr
	Body  []Instruction
	Token token.Token
}

func (s *ForStmt) Pos() token.Position { return s.Token.Pos }
func (*ForStmt) instNode()             {}

// ReadStmt is `READ ( Name )` or `READ ( Name [ Expr ] )`.
type ReadStmt struct {
	Index  Expr // nil for the scalar form
	Target string
	Token  token.Token
}

func (s *ReadStmt) Pos() token.Position { return s.Token.Pos }
func (*ReadStmt) instNode()             {}

// WriteElem is one element of a WRITE statement: a string literal or an
// expression (a bare variable, a subscript, or — per the supplemented
// grammar variant in SPEC_FULL.md §3 — any arithmetic expression).
type WriteElem interface {
	Node
	writeElemNode()
}

// StringElem is a string-literal WriteElem.
type StringElem struct {
	Value string
	Token token.Token
}

func (e *StringElem) Pos() token.Position { return e.Token.Pos }
func (*StringElem) writeElemNode()        {}

// ExprElem is an expression WriteElem (bare variable, subscript, or any
// arithmetic expression).
type ExprElem struct {
	Value Expr
}

func (e *ExprElem) Pos() token.Position { return e.Value.Pos() }
func (*ExprElem) writeElemNode()        {}

// WriteStmt is `WRITE ( WriteElem (, WriteElem)* )`.
type WriteStmt struct {
	Elements []WriteElem
	Token    token.Token
}

func (s *WriteStmt) Pos() token.Position { return s.Token.Pos }
func (*WriteStmt) instNode()             {}
