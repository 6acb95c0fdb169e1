// Package symboltable implements MinING's single global symbol table
// (spec.md §4.3): an ordered mapping from identifier to Symbol, with
// cell-indexed slot values.
package symboltable

import (
	"errors"

	"github.com/mining-lang/mining/internal/types"
)

// Tri is the tri-state of Symbol.IsConstant: a symbol's const-ness is
// unknown until the analyzer has processed its declaration.
type Tri int

const (
	Unset Tri = iota
	No
	Yes
)

// Slot is one storage cell: either unset, or holding a current value.
type Slot struct {
	Value types.Value
	Set   bool
}

// Symbol is one entry of the table, per spec.md §3.
type Symbol struct {
	Type       *types.Type // nil until the analyzer assigns one
	Identifier string
	Address    *int // reserved for codegen; never set by this package
	Size       *int // present only for arrays
	Values     []Slot
	IsConstant Tri
}

var (
	// ErrDuplicate is returned by Insert when the identifier already exists.
	ErrDuplicate = errors.New("symbol already declared")
	// ErrNotFound is returned by operations on an unknown identifier.
	ErrNotFound = errors.New("symbol not found")
	// ErrOutOfRange is returned by UpdateSlot/Slot for an invalid index.
	ErrOutOfRange = errors.New("slot index out of range")
)

// Table is the ordered identifier -> Symbol mapping. It has no concurrency
// control: per spec.md §5, it is owned by the pipeline driver (the
// Analyzer) for the duration of analysis and is never shared across
// goroutines.
type Table struct {
	symbols map[string]*Symbol
	order   []string
}

// New creates an empty Table.
func New() *Table {
	return &Table{symbols: make(map[string]*Symbol)}
}

// Insert adds a new symbol. Returns ErrDuplicate if the identifier is
// already present (spec.md invariant 1: re-declaration is a fatal error).
func (t *Table) Insert(sym *Symbol) error {
	if _, exists := t.symbols[sym.Identifier]; exists {
		return ErrDuplicate
	}
	t.symbols[sym.Identifier] = sym
	t.order = append(t.order, sym.Identifier)
	return nil
}

// InsertStub inserts an identifier-only symbol with one unset scalar slot,
// used by the declaration pre-pass (spec.md §9, "two-pass declaration
// visibility") so that forward references within the same block resolve to
// a symbol, while a genuine self-reference in an initializer still reads
// as unset and is rejected as UseBeforeAssign by the analyzer.
func (t *Table) InsertStub(name string) error {
	return t.Insert(&Symbol{Identifier: name, Values: []Slot{{}}})
}

// Get looks up a symbol by name.
func (t *Table) Get(name string) (*Symbol, bool) {
	sym, ok := t.symbols[name]
	return sym, ok
}

// Remove deletes a symbol, if present.
func (t *Table) Remove(name string) {
	if _, ok := t.symbols[name]; !ok {
		return
	}
	delete(t.symbols, name)
	for i, n := range t.order {
		if n == name {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// UpdateSlot writes value into the symbol's slot at index. Const-ness is
// not enforced here — spec.md §4.3 makes the analyzer responsible for
// rejecting writes that would violate const-ness before calling this.
func (t *Table) UpdateSlot(name string, index int, value types.Value) error {
	sym, ok := t.symbols[name]
	if !ok {
		return ErrNotFound
	}
	if index < 0 || index >= len(sym.Values) {
		return ErrOutOfRange
	}
	sym.Values[index] = Slot{Value: value, Set: true}
	return nil
}

// Slot returns the slot at index for the named symbol.
func (t *Table) Slot(name string, index int) (Slot, error) {
	sym, ok := t.symbols[name]
	if !ok {
		return Slot{}, ErrNotFound
	}
	if index < 0 || index >= len(sym.Values) {
		return Slot{}, ErrOutOfRange
	}
	return sym.Values[index], nil
}

// Names returns identifiers in insertion order, for deterministic
// iteration (declaration order) by the dump printer and tests.
func (t *Table) Names() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of symbols currently in the table.
func (t *Table) Len() int { return len(t.order) }
