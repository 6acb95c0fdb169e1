package parser

import (
	"strconv"

	"github.com/mining-lang/mining/internal/ast"
	"github.com/mining-lang/mining/internal/diag"
	"github.com/mining-lang/mining/internal/types"
	"github.com/mining-lang/mining/pkg/token"
)

// parseExpression implements precedence-climbing over the two-tier
// SUM/PRODUCT grammar of spec.md §4.2, leaving curToken on the last token
// consumed.
func (p *Parser) parseExpression(precedence int) (ast.Expr, error) {
	left, err := p.parsePrefixExpr()
	if err != nil {
		return nil, err
	}

	for !p.peekTokenIs(token.SEMICOLON) && precedence < p.peekPrecedence() {
		switch p.peekToken.Type {
		case token.PLUS, token.MINUS, token.ASTERISK, token.SLASH:
			if err := p.nextToken(); err != nil {
				return nil, err
			}
			left, err = p.parseBinaryOp(left)
			if err != nil {
				return nil, err
			}
		default:
			return left, nil
		}
	}
	return left, nil
}

// parsePrefixExpr parses one of the grammar's leaf expression forms:
// Name, Name[Expr], IntLit, FloatLit, CharLit, or a parenthesized group
// (including the two unary-sign forms).
func (p *Parser) parsePrefixExpr() (ast.Expr, error) {
	switch p.curToken.Type {
	case token.IDENT:
		return p.parseIdentOrSubscript()
	case token.INT:
		return p.parseIntLiteral()
	case token.FLOAT:
		return p.parseFloatLiteral()
	case token.CHAR:
		return p.parseCharLiteral()
	case token.LPAREN:
		return p.parseParenExpr()
	default:
		return nil, p.curError("unexpected token %s (%q), expected an expression", p.curToken.Type, p.curToken.Literal)
	}
}

func (p *Parser) parseIdentOrSubscript() (ast.Expr, error) {
	tok := p.curToken
	name := p.curToken.Literal

	if !p.peekTokenIs(token.LBRACK) {
		return &ast.VarExpr{Name: name, Token: tok}, nil
	}

	if err := p.nextToken(); err != nil {
		return nil, err
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	index, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.RBRACK); err != nil {
		return nil, err
	}
	return &ast.Subscript{Index: index, Name: name, Token: tok}, nil
}

func (p *Parser) parseIntLiteral() (ast.Expr, error) {
	tok := p.curToken
	v, err := strconv.ParseInt(tok.Literal, 10, 32)
	if err != nil {
		return nil, diag.NewLexical(diag.InvalidNumberFormat, tok.Pos, "invalid integer literal %q", tok.Literal)
	}
	return &ast.Literal{Value: types.Int(int16(v), tok.Pos), Token: tok}, nil
}

func (p *Parser) parseFloatLiteral() (ast.Expr, error) {
	tok := p.curToken
	v, err := strconv.ParseFloat(tok.Literal, 32)
	if err != nil {
		return nil, diag.NewLexical(diag.InvalidNumberFormat, tok.Pos, "invalid float literal %q", tok.Literal)
	}
	return &ast.Literal{Value: types.Flt(float32(v), tok.Pos), Token: tok}, nil
}

func (p *Parser) parseCharLiteral() (ast.Expr, error) {
	tok := p.curToken
	return &ast.Literal{Value: types.Chr(tok.Literal[0], tok.Pos), Token: tok}, nil
}

// parseParenExpr handles `( Expr )`, `( - Expr )`, and `( + Expr )`. Unary
// sign is only available directly inside parentheses (spec.md §4.2); `(+e)`
// parses to `e` itself, a parser-level no-op.
func (p *Parser) parseParenExpr() (ast.Expr, error) {
	if err := p.nextToken(); err != nil {
		return nil, err
	}

	switch p.curToken.Type {
	case token.MINUS:
		minusTok := p.curToken
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.RPAREN); err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Operand: inner, Token: minusTok}, nil
	case token.PLUS:
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		inner, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		inner, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.RPAREN); err != nil {
			return nil, err
		}
		return inner, nil
	}
}

func (p *Parser) parseBinaryOp(left ast.Expr) (ast.Expr, error) {
	tok := p.curToken
	var op ast.BinOp
	switch tok.Type {
	case token.PLUS:
		op = ast.Add
	case token.MINUS:
		op = ast.Sub
	case token.ASTERISK:
		op = ast.Mul
	case token.SLASH:
		op = ast.Div
	}
	precedence := precedences[tok.Type]
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	right, err := p.parseExpression(precedence)
	if err != nil {
		return nil, err
	}
	return &ast.BinaryOp{Left: left, Right: right, Op: op, Token: tok}, nil
}
