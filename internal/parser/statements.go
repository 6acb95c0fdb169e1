package parser

import (
	"github.com/mining-lang/mining/internal/ast"
	"github.com/mining-lang/mining/pkg/token"
)

// parseInstruction dispatches on curToken's leading keyword/identifier to
// one of the five Inst productions of spec.md §4.2, leaving curToken on the
// instruction's last consumed token.
func (p *Parser) parseInstruction() (ast.Instruction, error) {
	switch p.curToken.Type {
	case token.IDENT:
		asn, err := p.parseAssignment()
		if err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.SEMICOLON); err != nil {
			return nil, err
		}
		return &ast.Assign{Assignment: *asn}, nil
	case token.IF:
		return p.parseIf()
	case token.FOR:
		return p.parseFor()
	case token.READ:
		r, err := p.parseRead()
		if err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.SEMICOLON); err != nil {
			return nil, err
		}
		return r, nil
	case token.WRITE:
		w, err := p.parseWrite()
		if err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.SEMICOLON); err != nil {
			return nil, err
		}
		return w, nil
	default:
		return nil, p.curError("unexpected token %s (%q), expected an instruction", p.curToken.Type, p.curToken.Literal)
	}
}

// parseAssignment parses `Name = Expr` or `Name[Expr] = Expr`, leaving
// curToken on the RHS expression's last token. Shared by the Assign
// instruction, CONST declarations, and FOR's init clause.
func (p *Parser) parseAssignment() (*ast.Assignment, error) {
	tok := p.curToken
	name := p.curToken.Literal

	var index ast.Expr
	if p.peekTokenIs(token.LBRACK) {
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		idx, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.RBRACK); err != nil {
			return nil, err
		}
		index = idx
	}

	if err := p.expectPeek(token.ASSIGN); err != nil {
		return nil, err
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	return &ast.Assignment{Index: index, Value: value, Target: name, Token: tok}, nil
}

func (p *Parser) parseIf() (ast.Instruction, error) {
	tok := p.curToken
	if err := p.expectPeek(token.LPAREN); err != nil {
		return nil, err
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	cond, err := p.parseCondition(condLowest)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.LBRACE); err != nil {
		return nil, err
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	thenInsts, err := p.parseInstructions()
	if err != nil {
		return nil, err
	}

	var elseInsts []ast.Instruction
	if p.peekTokenIs(token.ELSE) {
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.LBRACE); err != nil {
			return nil, err
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		elseInsts, err = p.parseInstructions()
		if err != nil {
			return nil, err
		}
	}

	return &ast.IfStmt{Cond: cond, Then: thenInsts, Else: elseInsts, Token: tok}, nil
}

func (p *Parser) parseFor() (ast.Instruction, error) {
	tok := p.curToken
	if err := p.expectPeek(token.LPAREN); err != nil {
		return nil, err
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	init, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.COLON); err != nil {
		return nil, err
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	step, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.COLON); err != nil {
		return nil, err
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	bound, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.LBRACE); err != nil {
		return nil, err
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	body, err := p.parseInstructions()
	if err != nil {
		return nil, err
	}
	return &ast.ForStmt{Init: *init, Step: step, Bound: bound, Body: body, Token: tok}, nil
}

func (p *Parser) parseRead() (ast.Instruction, error) {
	tok := p.curToken
	if err := p.expectPeek(token.LPAREN); err != nil {
		return nil, err
	}
	if err := p.expectPeek(token.IDENT); err != nil {
		return nil, err
	}
	name := p.curToken.Literal

	var index ast.Expr
	if p.peekTokenIs(token.LBRACK) {
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		idx, err := p.parseExpression(LOWEST)
		if err != nil {
			return nil, err
		}
		if err := p.expectPeek(token.RBRACK); err != nil {
			return nil, err
		}
		index = idx
	}
	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.ReadStmt{Index: index, Target: name, Token: tok}, nil
}

func (p *Parser) parseWrite() (ast.Instruction, error) {
	tok := p.curToken
	if err := p.expectPeek(token.LPAREN); err != nil {
		return nil, err
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}

	var elems []ast.WriteElem
	for {
		elem, err := p.parseWriteElem()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
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
	if err := p.expectPeek(token.RPAREN); err != nil {
		return nil, err
	}
	return &ast.WriteStmt{Elements: elems, Token: tok}, nil
}

func (p *Parser) parseWriteElem() (ast.WriteElem, error) {
	if p.curTokenIs(token.STRING) {
		return &ast.StringElem{Value: p.curToken.Literal, Token: p.curToken}, nil
	}
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	return &ast.ExprElem{Value: expr}, nil
}
