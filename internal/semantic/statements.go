package semantic

import (
	"github.com/mining-lang/mining/internal/ast"
	"github.com/mining-lang/mining/internal/diag"
	"github.com/mining-lang/mining/internal/symboltable"
)

// analyzeAssignment validates and — unless runtimeActive suppresses the
// write — materializes `X = expr` or `X[idx] = expr` (spec.md §4.4.3).
// Constants are rejected unconditionally, even under runtimeActive: a
// constant cannot be reassigned inside a branch or loop body either.
func (a *Analyzer) analyzeAssignment(asn ast.Assignment, runtimeActive bool) error {
	sym, ok := a.table.Get(asn.Target)
	if !ok {
		return diag.NewSemantic(diag.UndeclaredVariable, asn.Token.Pos, "undeclared variable %q", asn.Target)
	}
	if sym.IsConstant == symboltable.Yes {
		return diag.NewSemantic(diag.ConstantModification, asn.Token.Pos, "cannot assign to constant %q", asn.Target)
	}

	rhs, err := a.evalExpr(asn.Value)
	if err != nil {
		return err
	}

	if asn.Index == nil {
		if sym.Type.IsArray() {
			return diag.NewSemantic(diag.TypeMismatch, asn.Token.Pos, "%q is an array; subscript required", asn.Target)
		}
		if rhs.Kind != sym.Type.Kind {
			return diag.NewSemantic(diag.TypeMismatch, asn.Value.Pos(),
				"expected %s, got %s", sym.Type.Kind, rhs.Kind)
		}
		if runtimeActive {
			return nil
		}
		return a.table.UpdateSlot(asn.Target, 0, rhs)
	}

	if !sym.Type.IsArray() {
		return diag.NewSemantic(diag.ScalarSubscripted, asn.Token.Pos, "%q is not an array", asn.Target)
	}
	idx, err := a.evalExpr(asn.Index)
	if err != nil {
		return err
	}
	if err := a.checkIndex(asn.Target, idx, asn.Index.Pos()); err != nil {
		return err
	}
	if rhs.Kind != sym.Type.Elem {
		return diag.NewSemantic(diag.TypeMismatch, asn.Value.Pos(),
			"expected %s, got %s", sym.Type.Elem, rhs.Kind)
	}
	if runtimeActive {
		return nil
	}
	return a.table.UpdateSlot(asn.Target, int(idx.I), rhs)
}
