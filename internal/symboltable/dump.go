package symboltable

import (
	"fmt"
	"io"

	"github.com/mining-lang/mining/internal/types"
)

const (
	colWidth        = 17
	valuesPerRow    = 4 // how many array cells share the Value column before wrapping
)

// Dump writes a fixed-width ASCII table to w: six 17-character columns
// (Identifier, Type, Size, Constant, Address, Value), one row per symbol in
// declaration order, with array values wrapping into continuation rows
// whose leading five fields are blank (spec.md §6).
func (t *Table) Dump(w io.Writer) {
	header := []string{"Identifier", "Type", "Size", "Constant", "Address", "Value"}
	writeRow(w, header)

	for _, name := range t.order {
		sym := t.symbols[name]
		writeSymbolRows(w, sym)
	}
}

func writeRow(w io.Writer, cols []string) {
	for _, c := range cols {
		fmt.Fprintf(w, "%-*.*s", colWidth, colWidth, c)
	}
	fmt.Fprintln(w)
}

func writeSymbolRows(w io.Writer, sym *Symbol) {
	typeCol := ""
	if sym.Type != nil {
		typeCol = sym.Type.Kind.String()
	}
	sizeCol := ""
	if sym.Size != nil {
		sizeCol = fmt.Sprintf("%d", *sym.Size)
	}
	constCol := triString(sym.IsConstant)
	addrCol := ""
	if sym.Address != nil {
		addrCol = fmt.Sprintf("%d", *sym.Address)
	}

	values := valueStrings(sym.Values)
	if len(values) == 0 {
		writeRow(w, []string{sym.Identifier, typeCol, sizeCol, constCol, addrCol, ""})
		return
	}

	for i := 0; i < len(values); i += valuesPerRow {
		end := i + valuesPerRow
		if end > len(values) {
			end = len(values)
		}
		chunk := joinComma(values[i:end])
		if i == 0 {
			writeRow(w, []string{sym.Identifier, typeCol, sizeCol, constCol, addrCol, chunk})
		} else {
			writeRow(w, []string{"", "", "", "", "", chunk})
		}
	}
}

func triString(tri Tri) string {
	switch tri {
	case Yes:
		return "true"
	case No:
		return "false"
	default:
		return ""
	}
}

func valueStrings(slots []Slot) []string {
	out := make([]string, len(slots))
	for i, s := range slots {
		if !s.Set {
			out[i] = "-"
			continue
		}
		out[i] = valueString(s.Value)
	}
	return out
}

func valueString(v types.Value) string {
	switch v.Kind {
	case types.Integer:
		return fmt.Sprintf("%d", v.I)
	case types.Float:
		return fmt.Sprintf("%g", v.F)
	case types.Char:
		return fmt.Sprintf("%q", rune(v.C))
	default:
		return v.String()
	}
}

func joinComma(ss []string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += ","
		}
		out += s
	}
	return out
}

