// Package ast defines MinING's abstract syntax tree node types
// (spec.md §3). Every node carries the Position of the token it was
// reduced from, for diagnostics; the tree itself is immutable once built
// by the parser — only the symbol table is mutated during analysis.
package ast

import "github.com/mining-lang/mining/pkg/token"

// Node is the common interface implemented by every AST node.
type Node interface {
	Pos() token.Position
}

// Expr is any node that produces a value when evaluated.
type Expr interface {
	Node
	exprNode()
}

// Declaration is one of VariableDecl, ArrayDeclGroup, or ConstantDecl.
type Declaration interface {
	Node
	declNode()
}

// Instruction is one of Assign, IfStmt, ForStmt, ReadStmt, or WriteStmt.
type Instruction interface {
	Node
	instNode()
}

// Program is the root of the tree: three optional ordered blocks, matching
// the VAR_GLOBAL / DECLARATION / INSTRUCTION grammar productions of
// spec.md §4.2.
type Program struct {
	Global       []Declaration
	Local        []Declaration
	Instructions []Instruction
}

func (p *Program) Pos() token.Position {
	switch {
	case len(p.Global) > 0:
		return p.Global[0].Pos()
	case len(p.Local) > 0:
		return p.Local[0].Pos()
	case len(p.Instructions) > 0:
		return p.Instructions[0].Pos()
	default:
		return token.Position{Line: 1, Column: 1}
	}
}
