// Package parser reduces a MinING token stream to a Program AST using
// recursive descent with Pratt-style expression parsing, following the
// curToken/peekToken lookahead pattern used throughout the example corpus.
// Per spec.md §4.2 there is no error recovery: the first syntactic error
// aborts parsing.
package parser

import (
	"github.com/mining-lang/mining/internal/ast"
	"github.com/mining-lang/mining/internal/diag"
	"github.com/mining-lang/mining/internal/lexer"
	"github.com/mining-lang/mining/pkg/token"
)

// Precedence levels for MinING's two-tier arithmetic grammar (spec.md §4.2).
const (
	_ int = iota
	LOWEST
	SUM     // + -
	PRODUCT // * /
)

var precedences = map[token.TokenType]int{
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
}

// Parser consumes a lexer.Lexer one token of lookahead ahead of the current
// token, the same curToken/peekToken shape as the example corpus's
// hand-written recursive-descent parsers.
type Parser struct {
	l         *lexer.Lexer
	curToken  token.Token
	peekToken token.Token
}

// New creates a Parser positioned before the first token of l's source.
func New(l *lexer.Lexer) (*Parser, error) {
	p := &Parser{l: l}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) nextToken() error {
	p.curToken = p.peekToken
	tok, err := p.l.NextToken()
	if err != nil {
		return err
	}
	p.peekToken = tok
	return nil
}

func (p *Parser) curTokenIs(t token.TokenType) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.TokenType) bool { return p.peekToken.Type == t }

// expectPeek advances past the peek token if it matches t, otherwise returns
// an UnexpectedToken syntactic error pointing at the peek token's position.
func (p *Parser) expectPeek(t token.TokenType) error {
	if !p.peekTokenIs(t) {
		return p.peekError(t)
	}
	return p.nextToken()
}

func (p *Parser) peekError(want token.TokenType) error {
	if p.peekTokenIs(token.EOF) {
		return diag.NewSyntactic(diag.UnexpectedEndOfInput, p.peekToken.Pos,
			"unexpected end of input, expected %s", want)
	}
	return diag.NewSyntactic(diag.UnexpectedToken, p.peekToken.Pos,
		"expected next token to be %s, got %s (%q) instead", want, p.peekToken.Type, p.peekToken.Literal)
}

func (p *Parser) curError(format string, args ...any) error {
	return diag.NewSyntactic(diag.UnexpectedToken, p.curToken.Pos, format, args...)
}

// expectCur reports an UnexpectedToken error if curToken is not t, without
// advancing (use when curToken has already been positioned by the caller).
func (p *Parser) expectCur(t token.TokenType) error {
	if !p.curTokenIs(t) {
		return p.curError("expected %s, got %s (%q)", t, p.curToken.Type, p.curToken.Literal)
	}
	return nil
}

// ParseProgram parses the three optional top-level blocks of spec.md §4.2's
// grammar and returns the resulting Program, or the first syntactic error.
func (p *Parser) ParseProgram() (*ast.Program, error) {
	prog := &ast.Program{}

	if p.curTokenIs(token.VAR_GLOBAL) {
		decls, err := p.parseDeclBlock()
		if err != nil {
			return nil, err
		}
		prog.Global = decls
	}
	if p.curTokenIs(token.DECLARATION) {
		decls, err := p.parseDeclBlock()
		if err != nil {
			return nil, err
		}
		prog.Local = decls
	}
	if p.curTokenIs(token.INSTRUCTION) {
		insts, err := p.parseInstBlock()
		if err != nil {
			return nil, err
		}
		prog.Instructions = insts
	}

	if !p.curTokenIs(token.EOF) {
		return nil, p.curError("unexpected token %s (%q) after program blocks", p.curToken.Type, p.curToken.Literal)
	}
	return prog, nil
}

func (p *Parser) parseDeclBlock() ([]ast.Declaration, error) {
	if err := p.expectPeek(token.LBRACE); err != nil {
		return nil, err
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}

	var decls []ast.Declaration
	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			return nil, diag.NewSyntactic(diag.UnexpectedEndOfInput, p.curToken.Pos, "unterminated declaration block")
		}
		decl, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
		if err := p.nextToken(); err != nil {
			return nil, err
		}
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	return decls, nil
}

func (p *Parser) parseInstBlock() ([]ast.Instruction, error) {
	if err := p.expectPeek(token.LBRACE); err != nil {
		return nil, err
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}

	insts, err := p.parseInstructions()
	if err != nil {
		return nil, err
	}
	if !p.curTokenIs(token.RBRACE) {
		return nil, p.curError("expected %s, got %s (%q)", token.RBRACE, p.curToken.Type, p.curToken.Literal)
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	return insts, nil
}

// parseInstructions parses instructions until it reaches RBRACE, leaving
// curToken on it; reaching EOF first is an UnexpectedEndOfInput error. Used
// both for the top-level
// INSTRUCTION block and for IF/FOR bodies.
func (p *Parser) parseInstructions() ([]ast.Instruction, error) {
	var insts []ast.Instruction
	for !p.curTokenIs(token.RBRACE) {
		if p.curTokenIs(token.EOF) {
			return nil, diag.NewSyntactic(diag.UnexpectedEndOfInput, p.curToken.Pos, "unterminated block")
		}
		inst, err := p.parseInstruction()
		if err != nil {
			return nil, err
		}
		insts = append(insts, inst)
		if err := p.nextToken(); err != nil {
			return nil, err
		}
	}
	return insts, nil
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}
