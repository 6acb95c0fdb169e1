// Package token defines the lexical token vocabulary shared by the lexer,
// parser, and diagnostics packages.
package token

import "fmt"

// Position identifies a single lexeme's location in the source text.
// Lines are 1-based; columns are 1-based byte positions within the line.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
