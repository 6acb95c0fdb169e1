// Package semantic implements MinING's semantic analyzer (spec.md §4.4):
// it walks the parser's AST in declaration-then-instruction order,
// populating and checking the shared symbol table, folding constant
// expressions as it goes, and reporting the first semantic error found.
package semantic

import (
	"github.com/mining-lang/mining/internal/ast"
	"github.com/mining-lang/mining/internal/diag"
	"github.com/mining-lang/mining/internal/symboltable"
	"github.com/mining-lang/mining/internal/types"
	"github.com/mining-lang/mining/pkg/token"
)

const maxIdentifierLength = 8

// Analyzer performs semantic analysis against a single, owned symbol
// table. Per spec.md §5 it is single-threaded and holds no locks: the
// table is private to the Analyzer for the lifetime of one Analyze call.
type Analyzer struct {
	table *symboltable.Table
}

// New creates an Analyzer with a fresh, empty symbol table.
func New() *Analyzer {
	return &Analyzer{table: symboltable.New()}
}

// Table returns the symbol table populated by Analyze. Valid only after a
// successful Analyze call.
func (a *Analyzer) Table() *symboltable.Table {
	return a.table
}

// Analyze walks prog in declaration-then-instruction order (spec.md
// §4.4 "Processing order") and either fully populates the symbol table, or
// returns the first semantic error encountered.
func (a *Analyzer) Analyze(prog *ast.Program) error {
	if err := a.declareBlock(prog.Global); err != nil {
		return err
	}
	if err := a.declareBlock(prog.Local); err != nil {
		return err
	}
	return a.analyzeInstructions(prog.Instructions, false)
}

// declareBlock processes one declaration block: VAR_GLOBAL or DECLARATION.
// It first pre-seeds a typeless stub for every name about to be declared
// (spec.md §9, "two-pass declaration visibility"), then processes each
// declaration left-to-right, filling in type, const-ness, and initial
// values. A name that collides with an existing symbol — in this block or
// an earlier one — is a DuplicateDeclaration, reported at the colliding
// declaration's own position.
func (a *Analyzer) declareBlock(decls []ast.Declaration) error {
	for _, d := range decls {
		if err := a.preseedNames(d); err != nil {
			return err
		}
	}
	for _, d := range decls {
		if err := a.analyzeDeclaration(d); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) preseedNames(d ast.Declaration) error {
	switch decl := d.(type) {
	case *ast.VariableDecl:
		for _, v := range decl.Vars {
			if err := a.checkAndStub(v.Name, v.Token.Pos); err != nil {
				return err
			}
		}
	case *ast.ArrayDeclGroup:
		for _, v := range decl.Arrays {
			if err := a.checkAndStub(v.Name, v.Token.Pos); err != nil {
				return err
			}
		}
	case *ast.ConstantDecl:
		for _, v := range decl.Assigns {
			if err := a.checkAndStub(v.Target, v.Token.Pos); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *Analyzer) checkAndStub(name string, pos token.Position) error {
	// Defense in depth: the lexer already rejects identifiers longer than
	// 8 characters (spec.md §4.1), so this branch is unreachable in
	// practice but is kept per spec.md §4.4.2's explicit instruction.
	if len(name) > maxIdentifierLength {
		return diag.NewSemantic(diag.IdentifierTooLong, pos,
			"identifier %q exceeds maximum length of %d", name, maxIdentifierLength)
	}
	if err := a.table.InsertStub(name); err != nil {
		return diag.NewSemantic(diag.DuplicateDeclaration, pos, "%q is already declared", name)
	}
	return nil
}

func (a *Analyzer) analyzeDeclaration(d ast.Declaration) error {
	switch decl := d.(type) {
	case *ast.VariableDecl:
		return a.analyzeVariableDecl(decl)
	case *ast.ArrayDeclGroup:
		return a.analyzeArrayDecl(decl)
	case *ast.ConstantDecl:
		return a.analyzeConstantDecl(decl)
	default:
		panic("semantic: unknown declaration node")
	}
}

// analyzeInstructions walks a straight-line instruction list. runtimeActive
// is carried down the recursion per spec.md §4.4.4: it starts false at the
// top level and becomes true inside IF/ELSE/FOR bodies, suppressing the
// symbol-table write side effect of Assign and Read without disabling any
// validation.
func (a *Analyzer) analyzeInstructions(insts []ast.Instruction, runtimeActive bool) error {
	for _, inst := range insts {
		if err := a.analyzeInstruction(inst, runtimeActive); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) analyzeInstruction(inst ast.Instruction, runtimeActive bool) error {
	switch n := inst.(type) {
	case *ast.Assign:
		return a.analyzeAssignment(n.Assignment, runtimeActive)
	case *ast.IfStmt:
		return a.analyzeIf(n)
	case *ast.ForStmt:
		return a.analyzeFor(n)
	case *ast.ReadStmt:
		return a.analyzeRead(n, runtimeActive)
	case *ast.WriteStmt:
		return a.analyzeWrite(n)
	default:
		panic("semantic: unknown instruction node")
	}
}

func (a *Analyzer) analyzeIf(n *ast.IfStmt) error {
	if err := a.validateCondition(n.Cond); err != nil {
		return err
	}
	if err := a.analyzeInstructions(n.Then, true); err != nil {
		return err
	}
	if n.Else != nil {
		if err := a.analyzeInstructions(n.Else, true); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) analyzeFor(n *ast.ForStmt) error {
	if err := a.analyzeAssignment(n.Init, false); err != nil {
		return err
	}
	sym, _ := a.table.Get(n.Init.Target)
	loopKind := sym.Type.Kind

	step, err := a.evalExpr(n.Step)
	if err != nil {
		return err
	}
	if step.Kind != loopKind {
		return diag.NewSemantic(diag.TypeMismatch, n.Step.Pos(),
			"FOR step must be %s, got %s", loopKind, step.Kind)
	}

	bound, err := a.evalExpr(n.Bound)
	if err != nil {
		return err
	}
	if bound.Kind != loopKind {
		return diag.NewSemantic(diag.TypeMismatch, n.Bound.Pos(),
			"FOR bound must be %s, got %s", loopKind, bound.Kind)
	}

	return a.analyzeInstructions(n.Body, true)
}

func (a *Analyzer) analyzeRead(n *ast.ReadStmt, runtimeActive bool) error {
	sym, ok := a.table.Get(n.Target)
	if !ok {
		return diag.NewSemantic(diag.UndeclaredVariable, n.Token.Pos, "undeclared variable %q", n.Target)
	}
	if sym.IsConstant == symboltable.Yes {
		return diag.NewSemantic(diag.ConstantModification, n.Token.Pos, "cannot READ into constant %q", n.Target)
	}

	index := 0
	elemKind := sym.Type.Kind
	if n.Index != nil {
		if !sym.Type.IsArray() {
			return diag.NewSemantic(diag.ScalarSubscripted, n.Token.Pos, "%q is not an array", n.Target)
		}
		idx, err := a.evalExpr(n.Index)
		if err != nil {
			return err
		}
		if err := a.checkIndex(n.Target, idx, n.Token.Pos); err != nil {
			return err
		}
		index = int(idx.I)
		elemKind = sym.Type.Elem
	} else if sym.Type.IsArray() {
		return diag.NewSemantic(diag.TypeMismatch, n.Token.Pos, "%q is an array; subscript required", n.Target)
	}

	if runtimeActive {
		return nil
	}
	return a.table.UpdateSlot(n.Target, index, types.ZeroOf(elemKind, n.Token.Pos))
}

// analyzeWrite type-checks a WRITE statement's elements without evaluating
// them: spec.md §4.4.3 requires only that a variable element be declared
// ("No value flow"), so an array variable or a declared-but-unassigned
// scalar is valid here even though neither can be fully evaluated to a
// value (see inferExprKind).
func (a *Analyzer) analyzeWrite(n *ast.WriteStmt) error {
	for _, elem := range n.Elements {
		switch e := elem.(type) {
		case *ast.StringElem:
			// Always valid.
		case *ast.ExprElem:
			if _, err := a.inferExprKind(e.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkIndex validates idx as a legal subscript into the array symbol
// named target, per spec.md §4.4.1's Subscript rules.
func (a *Analyzer) checkIndex(target string, idx types.Value, pos token.Position) error {
	if idx.Kind != types.Integer {
		return diag.NewSemantic(diag.TypeMismatch, pos, "array index must be Integer, got %s", idx.Kind)
	}
	if idx.I < 0 {
		return diag.NewSemantic(diag.NegativeIndex, pos, "negative index %d into %q", idx.I, target)
	}
	sym, _ := a.table.Get(target)
	if int(idx.I) >= *sym.Size {
		return diag.NewSemantic(diag.IndexOutOfBounds, pos,
			"index %d out of bounds for %q (size %d)", idx.I, target, *sym.Size)
	}
	return nil
}
