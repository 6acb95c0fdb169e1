package types

import (
	"fmt"

	"github.com/mining-lang/mining/pkg/token"
)

// Value is MinING's runtime TypeValue: a tagged union of Integer(int16),
// Float(float32), Char(byte), or Array(sequence of Value), each carrying the
// Position of the token that produced it (spec.md §3). Positions are
// informational only: Equals ignores them, as spec.md invariant 5 requires.
type Value struct {
	Kind Kind
	I    int16
	F    float32
	C    byte
	Arr  []Value
	Pos  token.Position
}

// Int builds an Integer value.
func Int(v int16, pos token.Position) Value { return Value{Kind: Integer, I: v, Pos: pos} }

// Flt builds a Float value.
func Flt(v float32, pos token.Position) Value { return Value{Kind: Float, F: v, Pos: pos} }

// Chr builds a Char value.
func Chr(v byte, pos token.Position) Value { return Value{Kind: Char, C: v, Pos: pos} }

// Array builds an Array value from its element sequence.
func Array(elems []Value, pos token.Position) Value {
	return Value{Kind: ArrayKind, Arr: elems, Pos: pos}
}

// Type returns the static Type of v. Array values report their element
// kind and current length as Size.
func (v Value) Type() Type {
	if v.Kind == ArrayKind {
		elem := Integer
		if len(v.Arr) > 0 {
			elem = v.Arr[0].Kind
		}
		return NewArray(elem, len(v.Arr))
	}
	return Scalar(v.Kind)
}

// Equals compares two Values by kind and payload, ignoring Pos, per
// spec.md invariant 5 ("equality/compatibility checks ignore [location]").
func (v Value) Equals(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case Integer:
		return v.I == o.I
	case Float:
		return v.F == o.F
	case Char:
		return v.C == o.C
	case ArrayKind:
		if len(v.Arr) != len(o.Arr) {
			return false
		}
		for i := range v.Arr {
			if !v.Arr[i].Equals(o.Arr[i]) {
				return false
			}
		}
		return true
	}
	return false
}

func (v Value) String() string {
	switch v.Kind {
	case Integer:
		return fmt.Sprintf("%d", v.I)
	case Float:
		return fmt.Sprintf("%g", v.F)
	case Char:
		return fmt.Sprintf("%q", rune(v.C))
	case ArrayKind:
		return fmt.Sprintf("%v", v.Arr)
	}
	return "<invalid>"
}

// ZeroOf returns the zero-value TypeValue for a scalar kind, used by
// Read() to materialize a slot without a source token (spec.md §4.4.3);
// the position is the position supplied by the instruction being analyzed.
func ZeroOf(k Kind, pos token.Position) Value {
	switch k {
	case Integer:
		return Int(0, pos)
	case Float:
		return Flt(0, pos)
	case Char:
		return Chr(0, pos)
	}
	panic("types: ZeroOf called with non-scalar kind")
}
