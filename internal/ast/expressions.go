package ast

import (
	"github.com/mining-lang/mining/internal/types"
	"github.com/mining-lang/mining/pkg/token"
)

// BinOp is the arithmetic operator of a BinaryOp expression.
type BinOp int

const (
	Add BinOp = iota
	Sub
	Mul
	Div
)

func (op BinOp) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	default:
		return "?"
	}
}

// Literal is a literal scalar value (int, float, or char) as parsed
// directly from a token.
type Literal struct {
	Value types.Value
	Token token.Token
}

func (l *Literal) Pos() token.Position { return l.Token.Pos }
func (*Literal) exprNode()             {}

// VarExpr references a scalar variable by name.
type VarExpr struct {
	Name  string
	Token token.Token
}

func (v *VarExpr) Pos() token.Position { return v.Token.Pos }
func (*VarExpr) exprNode()             {}

// Subscript references one cell of an array variable.
type Subscript struct {
	Index Expr
	Name  string
	Token token.Token
}

func (s *Subscript) Pos() token.Position { return s.Token.Pos }
func (*Subscript) exprNode()             {}

// BinaryOp is a two-operand arithmetic expression.
type BinaryOp struct {
	Left  Expr
	Right Expr
	Op    BinOp
	Token token.Token
}

func (b *BinaryOp) Pos() token.Position { return b.Token.Pos }
func (*BinaryOp) exprNode()             {}

// UnaryOp is the parenthesized unary-minus form `(-expr)` (spec.md §4.2).
// `(+expr)` is a parser-level no-op and never produces a node: it parses to
// its operand directly.
type UnaryOp struct {
	Operand Expr
	Token   token.Token
}

func (u *UnaryOp) Pos() token.Position { return u.Token.Pos }
func (*UnaryOp) exprNode()             {}
