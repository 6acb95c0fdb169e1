package semantic

import (
	"github.com/mining-lang/mining/internal/ast"
	"github.com/mining-lang/mining/internal/diag"
	"github.com/mining-lang/mining/internal/types"
)

// validateCondition type-checks a Condition tree (spec.md §4.4.1's Basic,
// Not, and Logic forms) without producing a value: conditions are never
// folded to a constant, only validated, and per spec.md §4.4.5 an operand
// need only be "declared" — a declared-but-unassigned variable is a valid
// operand, so operand kinds are inferred with inferExprKind rather than
// evaluated.
func (a *Analyzer) validateCondition(c ast.Condition) error {
	switch cond := c.(type) {
	case *ast.BasicCond:
		left, err := a.inferExprKind(cond.Left)
		if err != nil {
			return err
		}
		right, err := a.inferExprKind(cond.Right)
		if err != nil {
			return err
		}
		if left != right {
			return diag.NewSemantic(diag.IncompatibleTypesInCondition, cond.Token.Pos,
				"cannot compare %s with %s", left, right)
		}
		if left == types.ArrayKind {
			return diag.NewSemantic(diag.IncompatibleTypesInCondition, cond.Token.Pos, "arrays cannot be compared")
		}
		return nil
	case *ast.NotCond:
		return a.validateCondition(cond.Inner)
	case *ast.LogicCond:
		if err := a.validateCondition(cond.Left); err != nil {
			return err
		}
		return a.validateCondition(cond.Right)
	default:
		panic("semantic: unknown condition node")
	}
}
