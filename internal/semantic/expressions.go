package semantic

import (
	"github.com/mining-lang/mining/internal/ast"
	"github.com/mining-lang/mining/internal/diag"
	"github.com/mining-lang/mining/internal/types"
)

const (
	minInt16 = -32768
	maxInt16 = 32767
	charMod  = 0x7F
)

// evalExpr recursively evaluates expr to a types.Value, per spec.md
// §4.4.1. Every leaf must have a known value: an unset scalar slot or an
// unset array cell is a fatal UseBeforeAssign, not a "value unknown"
// result — this analyzer always fully evaluates or reports the first
// error, it never defers a partially-known expression (see DESIGN.md).
func (a *Analyzer) evalExpr(expr ast.Expr) (types.Value, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.VarExpr:
		return a.evalVarExpr(e)
	case *ast.Subscript:
		return a.evalSubscript(e)
	case *ast.BinaryOp:
		return a.evalBinaryOp(e)
	case *ast.UnaryOp:
		return a.evalUnaryOp(e)
	default:
		panic("semantic: unknown expression node")
	}
}

// evalUnaryOp negates the operand of a parenthesized `(-expr)` form. Negation
// is defined for Integer and Float only; a negated Char has no meaning
// (spec.md §4.4.1 defines Char arithmetic only for binary Add/Sub).
func (a *Analyzer) evalUnaryOp(e *ast.UnaryOp) (types.Value, error) {
	v, err := a.evalExpr(e.Operand)
	if err != nil {
		return types.Value{}, err
	}
	switch v.Kind {
	case types.Integer:
		neg := -int32(v.I)
		if neg < minInt16 || neg > maxInt16 {
			return types.Value{}, diag.NewSemantic(diag.IntegerOverflowInExpr, e.Token.Pos,
				"integer overflow in expression: result %d out of int16 range", neg)
		}
		return types.Int(int16(neg), e.Token.Pos), nil
	case types.Float:
		return types.Flt(-v.F, e.Token.Pos), nil
	default:
		return types.Value{}, diag.NewSemantic(diag.TypeMismatch, e.Token.Pos,
			"unary minus is not defined for %s", v.Kind)
	}
}

func (a *Analyzer) evalVarExpr(e *ast.VarExpr) (types.Value, error) {
	sym, ok := a.table.Get(e.Name)
	if !ok || sym.Type == nil {
		return types.Value{}, diag.NewSemantic(diag.UndeclaredVariable, e.Token.Pos, "undeclared variable %q", e.Name)
	}
	if sym.Type.IsArray() {
		return types.Value{}, diag.NewSemantic(diag.TypeMismatch, e.Token.Pos, "%q is an array; subscript required", e.Name)
	}
	slot, err := a.table.Slot(e.Name, 0)
	if err != nil || !slot.Set {
		return types.Value{}, diag.NewSemantic(diag.UseBeforeAssign, e.Token.Pos, "%q used before assigned", e.Name)
	}
	return slot.Value, nil
}

func (a *Analyzer) evalSubscript(e *ast.Subscript) (types.Value, error) {
	sym, ok := a.table.Get(e.Name)
	if !ok || sym.Type == nil {
		return types.Value{}, diag.NewSemantic(diag.UndeclaredVariable, e.Token.Pos, "undeclared variable %q", e.Name)
	}
	if !sym.Type.IsArray() {
		return types.Value{}, diag.NewSemantic(diag.NonArraySubscripted, e.Token.Pos, "%q is not an array", e.Name)
	}
	idx, err := a.evalExpr(e.Index)
	if err != nil {
		return types.Value{}, err
	}
	if err := a.checkIndex(e.Name, idx, e.Token.Pos); err != nil {
		return types.Value{}, err
	}
	slot, err := a.table.Slot(e.Name, int(idx.I))
	if err != nil || !slot.Set {
		return types.Value{}, diag.NewSemantic(diag.UseBeforeAssign, e.Token.Pos, "%s[%d] used before assigned", e.Name, idx.I)
	}
	return slot.Value, nil
}

func (a *Analyzer) evalBinaryOp(e *ast.BinaryOp) (types.Value, error) {
	left, err := a.evalExpr(e.Left)
	if err != nil {
		return types.Value{}, err
	}
	right, err := a.evalExpr(e.Right)
	if err != nil {
		return types.Value{}, err
	}
	if left.Kind != right.Kind {
		return types.Value{}, diag.NewSemantic(diag.TypeMismatch, e.Token.Pos,
			"binary operator %s requires matching operand types, got %s and %s", e.Op, left.Kind, right.Kind)
	}

	switch left.Kind {
	case types.Integer:
		return a.evalIntegerOp(e, left, right)
	case types.Float:
		return a.evalFloatOp(e, left, right)
	case types.Char:
		return a.evalCharOp(e, left, right)
	default:
		return types.Value{}, diag.NewSemantic(diag.TypeMismatch, e.Token.Pos, "arrays cannot be used in arithmetic")
	}
}

func (a *Analyzer) evalIntegerOp(e *ast.BinaryOp, left, right types.Value) (types.Value, error) {
	l, r := int32(left.I), int32(right.I)
	var result int32
	switch e.Op {
	case ast.Add:
		result = l + r
	case ast.Sub:
		result = l - r
	case ast.Mul:
		result = l * r
	case ast.Div:
		if r == 0 {
			return types.Value{}, diag.NewSemantic(diag.DivisionByZero, e.Left.Pos(), "integer division by zero")
		}
		result = l / r
	}
	if result < minInt16 || result > maxInt16 {
		return types.Value{}, diag.NewSemantic(diag.IntegerOverflowInExpr, e.Token.Pos,
			"integer overflow in expression: result %d out of int16 range", result)
	}
	return types.Int(int16(result), e.Token.Pos), nil
}

func (a *Analyzer) evalFloatOp(e *ast.BinaryOp, left, right types.Value) (types.Value, error) {
	l, r := left.F, right.F
	var result float32
	switch e.Op {
	case ast.Add:
		result = l + r
	case ast.Sub:
		result = l - r
	case ast.Mul:
		result = l * r
	case ast.Div:
		if r == 0 {
			return types.Value{}, diag.NewSemantic(diag.DivisionByZero, e.Left.Pos(), "float division by zero")
		}
		result = l / r
	}
	return types.Flt(result, e.Token.Pos), nil
}

// inferExprKind type-checks expr and reports its Kind without requiring a
// value, per spec.md §4.4's "records type-correctness without a value" mode
// (used by WRITE elements and condition operands, neither of which flow a
// runtime value): a declared-but-unassigned scalar and a bare array
// variable are both well-typed here, where evalExpr would reject the first
// as UseBeforeAssign and the second as TypeMismatch.
func (a *Analyzer) inferExprKind(expr ast.Expr) (types.Kind, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value.Kind, nil
	case *ast.VarExpr:
		sym, ok := a.table.Get(e.Name)
		if !ok || sym.Type == nil {
			return 0, diag.NewSemantic(diag.UndeclaredVariable, e.Token.Pos, "undeclared variable %q", e.Name)
		}
		if sym.Type.IsArray() {
			return types.ArrayKind, nil
		}
		return sym.Type.Kind, nil
	case *ast.Subscript:
		sym, ok := a.table.Get(e.Name)
		if !ok || sym.Type == nil {
			return 0, diag.NewSemantic(diag.UndeclaredVariable, e.Token.Pos, "undeclared variable %q", e.Name)
		}
		if !sym.Type.IsArray() {
			return 0, diag.NewSemantic(diag.NonArraySubscripted, e.Token.Pos, "%q is not an array", e.Name)
		}
		idxKind, err := a.inferExprKind(e.Index)
		if err != nil {
			return 0, err
		}
		if idxKind != types.Integer {
			return 0, diag.NewSemantic(diag.TypeMismatch, e.Token.Pos, "array index must be Integer, got %s", idxKind)
		}
		return sym.Type.Elem, nil
	case *ast.UnaryOp:
		kind, err := a.inferExprKind(e.Operand)
		if err != nil {
			return 0, err
		}
		if kind != types.Integer && kind != types.Float {
			return 0, diag.NewSemantic(diag.TypeMismatch, e.Token.Pos, "unary minus is not defined for %s", kind)
		}
		return kind, nil
	case *ast.BinaryOp:
		left, err := a.inferExprKind(e.Left)
		if err != nil {
			return 0, err
		}
		right, err := a.inferExprKind(e.Right)
		if err != nil {
			return 0, err
		}
		if left != right {
			return 0, diag.NewSemantic(diag.TypeMismatch, e.Token.Pos,
				"binary operator %s requires matching operand types, got %s and %s", e.Op, left, right)
		}
		if left == types.ArrayKind {
			return 0, diag.NewSemantic(diag.TypeMismatch, e.Token.Pos, "arrays cannot be used in arithmetic")
		}
		if left == types.Char && (e.Op == ast.Mul || e.Op == ast.Div) {
			return 0, diag.NewSemantic(diag.InvalidCharArith, e.Token.Pos, "operator %s is not defined for Char operands", e.Op)
		}
		return left, nil
	default:
		panic("semantic: unknown expression node")
	}
}

// evalCharOp implements the Char arithmetic of spec.md §4.4.1: Add/Sub map
// to unsigned byte arithmetic modulo charMod (0x7F); Mul/Div are undefined.
// Results therefore lie in 0..0x7E: a sum or difference of exactly 0x7F
// reduces to 0.
func (a *Analyzer) evalCharOp(e *ast.BinaryOp, left, right types.Value) (types.Value, error) {
	switch e.Op {
	case ast.Add:
		return types.Chr(byte((int(left.C)+int(right.C))%charMod), e.Token.Pos), nil
	case ast.Sub:
		diff := (int(left.C) - int(right.C)) % charMod
		if diff < 0 {
			diff += charMod
		}
		return types.Chr(byte(diff), e.Token.Pos), nil
	default:
		return types.Value{}, diag.NewSemantic(diag.InvalidCharArith, e.Token.Pos,
			"operator %s is not defined for Char operands", e.Op)
	}
}
