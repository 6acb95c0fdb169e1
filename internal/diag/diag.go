// Package diag defines the flat error taxonomy shared by the lexer, parser,
// and semantic analyzer (the symbol table returns its own sentinel errors),
// and the single-line
// rendering the CLI prints on failure, per spec.md §7.
package diag

import (
	"fmt"

	"github.com/mining-lang/mining/pkg/token"
)

// Kind is the top-level error category. Every Error belongs to exactly one.
type Kind string

const (
	Lexical   Kind = "Lexical"
	Syntactic Kind = "Syntactic"
	Semantic  Kind = "Semantic"
)

// Code identifies the specific error within a Kind, matching the taxonomy
// enumerated in spec.md §7 one-for-one. Tests assert on Code rather than on
// message text, since message text is not part of the contract.
type Code string

const (
	// Lexical.
	UnrecognizedToken   Code = "UnrecognizedToken"
	InvalidNumberFormat Code = "InvalidNumberFormat"
	IntegerOverflow     Code = "IntegerOverflow"
	FloatOverflow       Code = "FloatOverflow"
	IdentifierTooLong   Code = "IdentifierTooLong"

	// Syntactic.
	UnexpectedToken      Code = "UnexpectedToken"
	UnexpectedEndOfInput Code = "UnexpectedEndOfInput"

	// Semantic.
	UndeclaredVariable           Code = "UndeclaredVariable"
	DuplicateDeclaration         Code = "DuplicateDeclaration"
	TypeMismatch                 Code = "TypeMismatch"
	ConstantModification         Code = "ConstantModification"
	NonPositiveArraySize         Code = "NonPositiveArraySize"
	NonIntegerArraySize          Code = "NonIntegerArraySize"
	ArraySizeOverflow            Code = "ArraySizeOverflow"
	IndexOutOfBounds             Code = "IndexOutOfBounds"
	NegativeIndex                Code = "NegativeIndex"
	NonArraySubscripted          Code = "NonArraySubscripted"
	ScalarSubscripted            Code = "ScalarSubscripted"
	UseBeforeAssign              Code = "UseBeforeAssign"
	DivisionByZero               Code = "DivisionByZero"
	IntegerOverflowInExpr        Code = "IntegerOverflowInExpr"
	InvalidCharArith             Code = "InvalidCharArith"
	IncompatibleTypesInCondition Code = "IncompatibleTypesInCondition"
	ArrayOverflowInInitializer   Code = "ArrayOverflowInInitializer"
)

// Error is a single fatal diagnostic: a Kind, a programmatic Code, a
// human-readable Message, and the source Position it points at.
type Error struct {
	Kind    Kind
	Code    Code
	Message string
	Pos     token.Position
}

// Error implements the error interface, formatting exactly as spec.md §6
// requires: "<Kind> Error: <message> at (<line>:<column>)".
func (e *Error) Error() string {
	return fmt.Sprintf("%s Error: %s at (%d:%d)", e.Kind, e.Message, e.Pos.Line, e.Pos.Column)
}

// New builds a diagnostic. Stage-specific helpers (New Lexical/Syntactic/
// Semantic wrappers below) are preferred at call sites for readability.
func New(kind Kind, code Code, pos token.Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Code: code, Message: fmt.Sprintf(format, args...), Pos: pos}
}

// NewLexical builds a Lexical diagnostic.
func NewLexical(code Code, pos token.Position, format string, args ...any) *Error {
	return New(Lexical, code, pos, format, args...)
}

// NewSyntactic builds a Syntactic diagnostic.
func NewSyntactic(code Code, pos token.Position, format string, args ...any) *Error {
	return New(Syntactic, code, pos, format, args...)
}

// NewSemantic builds a Semantic diagnostic.
func NewSemantic(code Code, pos token.Position, format string, args ...any) *Error {
	return New(Semantic, code, pos, format, args...)
}
