package parser

import (
	"github.com/LaputanMachines/simple-script/internal/ast"
	"github.com/LaputanMachines/simple-script/pkg/token"
)

// funcDef parses `'FUNC' IDENT? '(' (IDENT (',' IDENT)*)? ')' ('->' expr | NEWLINE statements 'END')`.
//
// An inline `-> expr` body auto-returns the expression's value; a multiline
// body only returns via an explicit RETURN statement.
func (p *Parser) funcDef() (ast.Node, error) {
	start := p.cur.current().Start
	if _, err := p.expectKeyword("FUNC"); err != nil {
		return nil, err
	}

	var name *token.Token
	if p.cur.is(token.IDENTIFIER) {
		n := p.cur.current()
		name = &n
		p.cur.advance()
	}

	if _, err := p.expect(token.LPAREN, "'('"); err != nil {
		return nil, err
	}
	var args []token.Token
	if p.cur.is(token.IDENTIFIER) {
		arg, err := p.expect(token.IDENTIFIER, "an identifier")
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		for p.cur.is(token.COMMA) {
			p.cur.advance()
			arg, err := p.expect(token.IDENTIFIER, "an identifier")
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}
	if _, err := p.expect(token.RPAREN, "')'"); err != nil {
		return nil, err
	}

	if p.cur.is(token.ARROW) {
		p.cur.advance()
		body, err := p.expr()
		if err != nil {
			return nil, err
		}
		return &ast.FuncDef{
			Name: name, ArgNames: args, Body: body, ShouldAutoReturn: true,
			StartPos: start, EndPos: body.End(),
		}, nil
	}

	if _, err := p.expect(token.NEWLINE, "'->' or a newline"); err != nil {
		return nil, err
	}
	body, err := p.statements()
	if err != nil {
		return nil, err
	}
	end, err := p.expectKeyword("END")
	if err != nil {
		return nil, err
	}
	return &ast.FuncDef{
		Name: name, ArgNames: args, Body: body, ShouldAutoReturn: false,
		StartPos: start, EndPos: end.End,
	}, nil
}
