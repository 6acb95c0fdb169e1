// Package types defines MinING's scalar and array type system (spec.md §3)
// and the runtime TypeValue representation produced by constant evaluation.
package types

import "fmt"

// Kind enumerates the closed set of scalar kinds plus Array. Nested arrays
// are disallowed (spec.md §3), so Array's Elem is always a scalar Kind.
type Kind int

const (
	Integer Kind = iota
	Float
	Char
	ArrayKind
)

func (k Kind) String() string {
	switch k {
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	case Char:
		return "Char"
	case ArrayKind:
		return "Array"
	default:
		return "Unknown"
	}
}

// Type is MinING's closed type sum: Integer, Float, Char, or
// Array(element, size) with element one of the three scalars and
// 0 < size <= 32767 (spec.md §3).
type Type struct {
	Kind Kind
	Elem Kind // valid only when Kind == ArrayKind
	Size int  // valid only when Kind == ArrayKind
}

// Scalar constructs a scalar Type of the given kind.
func Scalar(k Kind) Type { return Type{Kind: k} }

// NewArray constructs an Array(elem, size) Type.
func NewArray(elem Kind, size int) Type { return Type{Kind: ArrayKind, Elem: elem, Size: size} }

// IsArray reports whether t is an array type.
func (t Type) IsArray() bool { return t.Kind == ArrayKind }

// Equals compares two Types structurally; location is not part of Type, so
// there is nothing to ignore here (contrast with Value.Equals below).
func (t Type) Equals(o Type) bool {
	if t.Kind != o.Kind {
		return false
	}
	if t.Kind == ArrayKind {
		return t.Elem == o.Elem && t.Size == o.Size
	}
	return true
}

// ElemType returns the scalar Type of an array's elements. Panics if t is
// not an array; callers must check IsArray first.
func (t Type) ElemType() Type {
	if t.Kind != ArrayKind {
		panic("types: ElemType called on non-array type")
	}
	return Scalar(t.Elem)
}

func (t Type) String() string {
	if t.Kind == ArrayKind {
		return fmt.Sprintf("Array(%s, %d)", t.Elem, t.Size)
	}
	return t.Kind.String()
}
