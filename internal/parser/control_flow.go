package parser

import (
	"github.com/LaputanMachines/simple-script/internal/ast"
	"github.com/LaputanMachines/simple-script/pkg/token"
)

// ifExpr parses an IF/ELIF*/ELSE? chain, each arm independently choosing
// the inline-statement or multiline-block body form.
func (p *Parser) ifExpr() (ast.Node, error) {
	start := p.cur.current().Start
	if _, err := p.expectKeyword("IF"); err != nil {
		return nil, err
	}

	var cases []ast.IfCase
	cond, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("THEN"); err != nil {
		return nil, err
	}
	body, multiline, err := p.block()
	if err != nil {
		return nil, err
	}
	cases = append(cases, ast.IfCase{Condition: cond, Body: body, IsMultiline: multiline})
	end := body.End()

	for p.tryContinuation("ELIF") {
		p.cur.advance()
		cond, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKeyword("THEN"); err != nil {
			return nil, err
		}
		body, multiline, err := p.block()
		if err != nil {
			return nil, err
		}
		cases = append(cases, ast.IfCase{Condition: cond, Body: body, IsMultiline: multiline})
		end = body.End()
	}

	var elseCase *ast.ElseCase
	if p.tryContinuation("ELSE") {
		p.cur.advance()
		body, multiline, err := p.block()
		if err != nil {
			return nil, err
		}
		elseCase = &ast.ElseCase{Body: body, IsMultiline: multiline}
		end = body.End()
	}

	return &ast.If{Cases: cases, Else: elseCase, StartPos: start, EndPos: end}, nil
}

// forExpr parses `'FOR' IDENT '=' expr 'TO' expr ('STEP' expr)? 'THEN' block`.
func (p *Parser) forExpr() (ast.Node, error) {
	start := p.cur.current().Start
	if _, err := p.expectKeyword("FOR"); err != nil {
		return nil, err
	}
	varName, err := p.expect(token.IDENTIFIER, "an identifier")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EQ, "'='"); err != nil {
		return nil, err
	}
	startExpr, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("TO"); err != nil {
		return nil, err
	}
	endExpr, err := p.expr()
	if err != nil {
		return nil, err
	}

	var step ast.Node
	if p.cur.isKeyword("STEP") {
		p.cur.advance()
		step, err = p.expr()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.expectKeyword("THEN"); err != nil {
		return nil, err
	}
	body, multiline, err := p.block()
	if err != nil {
		return nil, err
	}

	return &ast.For{
		VarName: varName, StartExpr: startExpr, EndExpr: endExpr, Step: step,
		Body: body, IsMultiline: multiline,
		StartPos: start, EndPos: body.End(),
	}, nil
}

// whileExpr parses `'WHILE' expr 'THEN' block`.
func (p *Parser) whileExpr() (ast.Node, error) {
	start := p.cur.current().Start
	if _, err := p.expectKeyword("WHILE"); err != nil {
		return nil, err
	}
	cond, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("THEN"); err != nil {
		return nil, err
	}
	body, multiline, err := p.block()
	if err != nil {
		return nil, err
	}
	return &ast.While{Condition: cond, Body: body, IsMultiline: multiline, StartPos: start, EndPos: body.End()}, nil
}
