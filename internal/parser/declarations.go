package parser

import (
	"github.com/mining-lang/mining/internal/ast"
	"github.com/mining-lang/mining/internal/types"
	"github.com/mining-lang/mining/pkg/token"
)

// parseDecl dispatches on curToken to one of the three Decl productions of
// spec.md §4.2, leaving curToken on the terminating ";".
func (p *Parser) parseDecl() (ast.Declaration, error) {
	switch p.curToken.Type {
	case token.CONST:
		return p.parseConstantDecl()
	case token.INTEGER, token.FLOATTYPE, token.CHARTYPE:
		return p.parseVariableOrArrayDecl()
	default:
		return nil, p.curError("unexpected token %s (%q), expected a type or CONST", p.curToken.Type, p.curToken.Literal)
	}
}

func kindOf(t token.TokenType) (types.Kind, bool) {
	switch t {
	case token.INTEGER:
		return types.Integer, true
	case token.FLOATTYPE:
		return types.Float, true
	case token.CHARTYPE:
		return types.Char, true
	default:
		return 0, false
	}
}

func (p *Parser) parseVariableOrArrayDecl() (ast.Declaration, error) {
	typTok := p.curToken
	kind, _ := kindOf(typTok.Type)
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	if p.peekTokenIs(token.LBRACK) {
		return p.parseArrayDeclGroup(typTok, kind)
	}
	return p.parseVariableDecl(typTok, kind)
}

// parseVariableDecl parses NameList: `Name ("=" Expr)? ("," Name ("=" Expr)?)*`.
func (p *Parser) parseVariableDecl(typTok token.Token, kind types.Kind) (ast.Declaration, error) {
	var vars []ast.VarItem
	for {
		nameTok := p.curToken
		name := p.curToken.Literal

		var init ast.Expr
		if p.peekTokenIs(token.ASSIGN) {
			if err := p.nextToken(); err != nil {
				return nil, err
			}
			if err := p.nextToken(); err != nil {
				return nil, err
			}
			v, err := p.parseExpression(LOWEST)
			if err != nil {
				return nil, err
			}
			init = v
		}
		vars = append(vars, ast.VarItem{Init: init, Name: name, Token: nameTok})

		if !p.peekTokenIs(token.COMMA) {
			break
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
	}
	if err := p.expectPeek(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.VariableDecl{Vars: vars, Type: kind, Token: typTok}, nil
}

// parseArrayDeclGroup parses ArrayList: `Name "[" Expr "]" ("=" ArrayInit)?`
// repeated, comma-separated.
func (p *Parser) parseArrayDeclGroup(typTok token.Token, kind types.Kind) (ast.Declaration, error) {
	var arrays []ast.ArrayItem
	for {
		nameTok := p.curToken
		name := p.curToken.Literal

		if err := p.expectPeek(token.LBRACK); err != nil {
			return nil, err
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		size, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.RBRACK); err != nil {
			return nil, err
		}

		var init []ast.Expr
		var initString *string
		if p.peekTokenIs(token.ASSIGN) {
			if err := p.nextToken(); err != nil {
				return nil, err
			}
			if err := p.nextToken(); err != nil {
				return nil, err
			}
			init, initString, err = p.parseArrayInit()
			if err != nil {
				return nil, err
			}
		}

		arrays = append(arrays, ast.ArrayItem{Size: size, Init: init, InitString: initString, Name: name, Token: nameTok})

		if !p.peekTokenIs(token.COMMA) {
			break
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
	}
	if err := p.expectPeek(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.ArrayDeclGroup{Arrays: arrays, Type: kind, Token: typTok}, nil
}

// parseArrayInit parses `"[" Expr ("," Expr)* "]"` or a bare StringLit,
// leaving curToken on the closing `]` or the string token respectively.
func (p *Parser) parseArrayInit() ([]ast.Expr, *string, error) {
	if p.curTokenIs(token.STRING) {
		s := p.curToken.Literal
		return nil, &s, nil
	}
	if err := p.expectCur(token.LBRACK); err != nil {
		return nil, nil, err
	}
	if err := p.nextToken(); err != nil {
		return nil, nil, err
	}

	var elems []ast.Expr
	for {
		e, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, nil, err
		}
		elems = append(elems, e)
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		if err := p.nextToken(); err != nil {
			return nil, nil, err
		}
		if err := p.nextToken(); err != nil {
			return nil, nil, err
		}
	}
	if err := p.expectPeek(token.RBRACK); err != nil {
		return nil, nil, err
	}
	return elems, nil, nil
}

// parseConstantDecl parses `CONST Type AssignList ";"`.
func (p *Parser) parseConstantDecl() (ast.Declaration, error) {
	tok := p.curToken
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	kind, ok := kindOf(p.curToken.Type)
	if !ok {
		return nil, p.curError("expected a type after CONST, got %s (%q)", p.curToken.Type, p.curToken.Literal)
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}

	var assigns []ast.Assignment
	for {
		asn, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		assigns = append(assigns, *asn)
		if !p.peekTokenIs(token.COMMA) {
			break
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
	}
	if err := p.expectPeek(token.SEMICOLON); err != nil {
		return nil, err
	}
	return &ast.ConstantDecl{Assigns: assigns, Type: kind, Token: tok}, nil
}
