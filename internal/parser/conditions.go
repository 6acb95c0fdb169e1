package parser

import (
	"github.com/mining-lang/mining/internal/ast"
	"github.com/mining-lang/mining/pkg/token"
)

// Condition precedence: `!` binds tightest, then `&&`, then `||`
// (spec.md §4.2).
const (
	condLowest int = iota
	condOr
	condAnd
	condNot
)

var condPrecedences = map[token.TokenType]int{
	token.OR_OR:   condOr,
	token.AND_AND: condAnd,
}

var relOps = map[token.TokenType]ast.RelOp{
	token.GT:     ast.Gt,
	token.LT:     ast.Lt,
	token.GE:     ast.Ge,
	token.LE:     ast.Le,
	token.EQ_EQ:  ast.Eq,
	token.NOT_EQ: ast.Ne,
}

func (p *Parser) peekCondPrecedence() int {
	if pr, ok := condPrecedences[p.peekToken.Type]; ok {
		return pr
	}
	return condLowest
}

// parseCondition implements precedence-climbing over `&&`/`||`, with `!` as
// a unary prefix parsed inside parseCondPrimary.
func (p *Parser) parseCondition(precedence int) (ast.Condition, error) {
	left, err := p.parseCondPrimary()
	if err != nil {
		return nil, err
	}

	for precedence < p.peekCondPrecedence() {
		tok := p.peekToken
		var op ast.LogOp
		switch tok.Type {
		case token.AND_AND:
			op = ast.LogAnd
		case token.OR_OR:
			op = ast.LogOr
		default:
			return left, nil
		}
		opPrecedence := condPrecedences[tok.Type]
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		right, err := p.parseCondition(opPrecedence)
		if err != nil {
			return nil, err
		}
		left = &ast.LogicCond{Left: left, Right: right, Op: op, Token: tok}
	}
	return left, nil
}

func (p *Parser) parseCondPrimary() (ast.Condition, error) {
	if p.curTokenIs(token.NOT) {
		tok := p.curToken
		if err := p.nextToken(); err != nil {
			return nil, err
		}
		inner, err := p.parseCondition(condNot)
		if err != nil {
			return nil, err
		}
		return &ast.NotCond{Inner: inner, Token: tok}, nil
	}
	return p.parseBasicCond()
}

func (p *Parser) parseBasicCond() (ast.Condition, error) {
	left, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}

	op, ok := relOps[p.peekToken.Type]
	if !ok {
		return nil, p.peekError(token.EQ_EQ)
	}
	tok := p.peekToken
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	if err := p.nextToken(); err != nil {
		return nil, err
	}
	right, err := p.parseExpression(LOWEST)
	if err != nil {
		return nil, err
	}
	return &ast.BasicCond{Left: left, Right: right, Op: op, Token: tok}, nil
}
