package ast

import (
	"github.com/mining-lang/mining/internal/types"
	"github.com/mining-lang/mining/pkg/token"
)

// VarItem is one entry of a NameList: `Name` or `Name = Expr`.
type VarItem struct {
	Init  Expr // nil for the Simple form
	Name  string
	Token token.Token
}

// VariableDecl is `Type NameList ;` — a group of scalar declarations
// sharing one declared type.
type VariableDecl struct {
	Vars  []VarItem
	Type  types.Kind
	Token token.Token
}

func (d *VariableDecl) Pos() token.Position { return d.Token.Pos }
func (*VariableDecl) declNode()             {}

// ArrayItem is one entry of an ArrayList: `Name[Size]`, optionally followed
// by `= ArrayInit` (an element list) or `= StringLit` (Char arrays only).
type ArrayItem struct {
	Size       Expr
	Init       []Expr // non-nil for the bracketed-list initializer form
	InitString *string // non-nil for the string-literal initializer form
	Name       string
	Token      token.Token
}

// ArrayDeclGroup is `Type ArrayList ;`.
type ArrayDeclGroup struct {
	Arrays []ArrayItem
	Type   types.Kind
	Token  token.Token
}

func (d *ArrayDeclGroup) Pos() token.Position { return d.Token.Pos }
func (*ArrayDeclGroup) declNode()             {}

// ConstantDecl is `CONST Type AssignList ;` — every entry must be
// initialized (enforced by the grammar, spec.md §4.2).
type ConstantDecl struct {
	Assigns []Assignment
	Type    types.Kind
	Token   token.Token
}

func (d *ConstantDecl) Pos() token.Position { return d.Token.Pos }
func (*ConstantDecl) declNode()             {}

// Assignment is `Name = Expr` or `Name[Index] = Expr`; it is shared by
// constant declarations, the Assign instruction, and FOR's init clause.
type Assignment struct {
	Index  Expr // nil for the scalar form
	Value  Expr
	Target string
	Token  token.Token
}

func (a *Assignment) Pos() token.Position { return a.Token.Pos }
