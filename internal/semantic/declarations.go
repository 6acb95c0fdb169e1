package semantic

import (
	"github.com/mining-lang/mining/internal/ast"
	"github.com/mining-lang/mining/internal/diag"
	"github.com/mining-lang/mining/internal/symboltable"
	"github.com/mining-lang/mining/internal/types"
	"github.com/mining-lang/mining/pkg/token"
)

const maxArraySize = 32767

// analyzeVariableDecl types every name in a scalar declaration group and, for
// the `Name = Expr` form, folds and materializes its initial value
// (spec.md §4.4.2).
func (a *Analyzer) analyzeVariableDecl(decl *ast.VariableDecl) error {
	for _, v := range decl.Vars {
		sym, _ := a.table.Get(v.Name)
		sym.Type = typePtr(types.Scalar(decl.Type))
		sym.IsConstant = symboltable.No

		if v.Init == nil {
			continue
		}
		val, err := a.evalExpr(v.Init)
		if err != nil {
			return err
		}
		if val.Kind != decl.Type {
			return diag.NewSemantic(diag.TypeMismatch, v.Init.Pos(),
				"expected %s, got %s", decl.Type, val.Kind)
		}
		if err := a.table.UpdateSlot(v.Name, 0, val); err != nil {
			return err
		}
	}
	return nil
}

// analyzeArrayDecl validates the declared size of every array in the group,
// allocates its slots, and — when present — folds and materializes the
// bracketed-list or string-literal initializer, cycling it to fill the
// array when it is shorter than the declared size (spec.md §9, "cycle-fill
// initializer padding").
func (a *Analyzer) analyzeArrayDecl(decl *ast.ArrayDeclGroup) error {
	for _, arr := range decl.Arrays {
		size, err := a.evalArraySize(arr.Size)
		if err != nil {
			return err
		}

		sym, _ := a.table.Get(arr.Name)
		sym.Type = typePtr(types.NewArray(decl.Type, size))
		sym.Size = intPtr(size)
		sym.Values = make([]symboltable.Slot, size)

		switch {
		case arr.Init != nil:
			if err := a.fillArrayFromExprs(arr.Name, decl.Type, arr.Init, size); err != nil {
				return err
			}
		case arr.InitString != nil:
			if decl.Type != types.Char {
				return diag.NewSemantic(diag.TypeMismatch, arr.Token.Pos,
					"string initializer is only valid for Char arrays")
			}
			if err := a.fillArrayFromString(arr.Name, *arr.InitString, arr.Token.Pos, size); err != nil {
				return err
			}
		}
	}
	return nil
}

func (a *Analyzer) evalArraySize(sizeExpr ast.Expr) (int, error) {
	size, err := a.evalExpr(sizeExpr)
	if err != nil {
		return 0, err
	}
	if size.Kind != types.Integer {
		return 0, diag.NewSemantic(diag.NonIntegerArraySize, sizeExpr.Pos(),
			"array size must be Integer, got %s", size.Kind)
	}
	if size.I <= 0 {
		return 0, diag.NewSemantic(diag.NonPositiveArraySize, sizeExpr.Pos(),
			"array size must be positive, got %d", size.I)
	}
	if int(size.I) > maxArraySize {
		return 0, diag.NewSemantic(diag.ArraySizeOverflow, sizeExpr.Pos(),
			"array size %d exceeds maximum of %d", size.I, maxArraySize)
	}
	return int(size.I), nil
}

// fillArrayFromExprs folds every initializer expression once, then cycles
// the resulting sequence across the array's slots. A longer initializer
// list than the declared size is rejected outright: cycling only ever
// stretches a short list, it never truncates one.
func (a *Analyzer) fillArrayFromExprs(name string, elemKind types.Kind, exprs []ast.Expr, size int) error {
	if len(exprs) > size {
		return diag.NewSemantic(diag.ArrayOverflowInInitializer, exprs[size].Pos(),
			"too many initializer elements for array %q of size %d", name, size)
	}
	values := make([]types.Value, len(exprs))
	for i, e := range exprs {
		val, err := a.evalExpr(e)
		if err != nil {
			return err
		}
		if val.Kind != elemKind {
			return diag.NewSemantic(diag.TypeMismatch, e.Pos(), "expected %s, got %s", elemKind, val.Kind)
		}
		values[i] = val
	}
	for i := 0; i < size; i++ {
		if err := a.table.UpdateSlot(name, i, values[i%len(values)]); err != nil {
			return err
		}
	}
	return nil
}

// fillArrayFromString cycles the bytes of a Char array's string-literal
// initializer across its slots, the same way fillArrayFromExprs cycles a
// bracketed element list. An empty string initializes every slot to the
// NUL character (spec.md §4.4.2's boundary case for `CHAR X[N] = ""`).
func (a *Analyzer) fillArrayFromString(name, s string, pos token.Position, size int) error {
	if len(s) > size {
		return diag.NewSemantic(diag.ArrayOverflowInInitializer, pos,
			"string initializer for array %q of size %d is too long", name, size)
	}
	cycle := s
	if cycle == "" {
		cycle = "\x00"
	}
	for i := 0; i < size; i++ {
		c := cycle[i%len(cycle)]
		if err := a.table.UpdateSlot(name, i, types.Chr(c, pos)); err != nil {
			return err
		}
	}
	return nil
}

// analyzeConstantDecl types every entry of a CONST group, folds its
// mandatory initializer, and marks the symbol permanently constant
// (spec.md §4.2: every constant entry carries an initializer, enforced by
// the grammar rather than here).
func (a *Analyzer) analyzeConstantDecl(decl *ast.ConstantDecl) error {
	for _, asn := range decl.Assigns {
		sym, _ := a.table.Get(asn.Target)
		sym.Type = typePtr(types.Scalar(decl.Type))
		sym.IsConstant = symboltable.Yes

		val, err := a.evalExpr(asn.Value)
		if err != nil {
			return err
		}
		if val.Kind != decl.Type {
			return diag.NewSemantic(diag.TypeMismatch, asn.Value.Pos(),
				"expected %s, got %s", decl.Type, val.Kind)
		}
		if err := a.table.UpdateSlot(asn.Target, 0, val); err != nil {
			return err
		}
	}
	return nil
}

func typePtr(t types.Type) *types.Type { return &t }

func intPtr(i int) *int { return &i }
