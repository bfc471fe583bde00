package parser

import (
	"github.com/LaputanMachines/simple-script/internal/ast"
	serrors "github.com/LaputanMachines/simple-script/internal/errors"
	"github.com/LaputanMachines/simple-script/pkg/token"
)

// expr parses `'VAR' IDENT '=' expr | comparison (('AND'|'OR') comparison)*`.
func (p *Parser) expr() (ast.Node, error) {
	if p.cur.isKeyword("VAR") {
		start := p.cur.current().Start
		p.cur.advance()
		name, err := p.expect(token.IDENTIFIER, "an identifier")
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.EQ, "'='"); err != nil {
			return nil, err
		}
		value, err := p.expr()
		if err != nil {
			return nil, err
		}
		return &ast.VarAssign{Name: name, Value: value, StartPos: start, EndPos: value.End()}, nil
	}

	return p.binOpLadder(p.comparison, func(t token.Token) bool {
		return t.Matches(token.KEYWORD, "AND") || t.Matches(token.KEYWORD, "OR")
	})
}

// comparison parses `'NOT' comparison | arithmetic (comparisonOp arithmetic)*`.
func (p *Parser) comparison() (ast.Node, error) {
	if p.cur.isKeyword("NOT") {
		op := p.cur.current()
		p.cur.advance()
		operand, err := p.comparison()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: op, Operand: operand, StartPos: op.Start, EndPos: operand.End()}, nil
	}
	return p.binOpLadder(p.arithmetic, func(t token.Token) bool {
		switch t.Kind {
		case token.EE, token.NE, token.LT, token.GT, token.LTE, token.GTE:
			return true
		}
		return false
	})
}

// arithmetic parses `term ((PLUS|MINUS) term)*`.
func (p *Parser) arithmetic() (ast.Node, error) {
	return p.binOpLadder(p.term, func(t token.Token) bool {
		return t.Kind == token.PLUS || t.Kind == token.MINUS
	})
}

// term parses `factor ((MUL|DIV|CLEAN_DIV|MODULO) factor)*`. POWER is
// handled only in power, below term in precedence, so it is deliberately
// excluded from this ladder's operator set.
func (p *Parser) term() (ast.Node, error) {
	return p.binOpLadder(p.factor, func(t token.Token) bool {
		switch t.Kind {
		case token.MUL, token.DIV, token.CLEAN_DIV, token.MODULO:
			return true
		}
		return false
	})
}

// factor parses `(PLUS|MINUS) factor | power`.
func (p *Parser) factor() (ast.Node, error) {
	tok := p.cur.current()
	if tok.Kind == token.PLUS || tok.Kind == token.MINUS {
		p.cur.advance()
		operand, err := p.factor()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: tok, Operand: operand, StartPos: tok.Start, EndPos: operand.End()}, nil
	}
	return p.power()
}

// power parses `call (POWER factor)*`. The right operand is factor, which
// falls through to power again when unprefixed, so a chain like `2^3^2`
// recurses all the way down the right-hand side before any BinOp is built —
// giving POWER right-associativity, unlike the left-folding binOpLadder
// the other levels in this file use.
func (p *Parser) power() (ast.Node, error) {
	left, err := p.call()
	if err != nil {
		return nil, err
	}
	for p.cur.is(token.POWER) {
		op := p.cur.current()
		p.cur.advance()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Left: left, Op: op, Right: right, StartPos: left.Start(), EndPos: right.End()}
	}
	return left, nil
}

// call parses `atom ('(' (expr (',' expr)*)? ')')?`.
func (p *Parser) call() (ast.Node, error) {
	callee, err := p.atom()
	if err != nil {
		return nil, err
	}
	if !p.cur.is(token.LPAREN) {
		return callee, nil
	}
	p.cur.advance()

	var args []ast.Node
	if !p.cur.is(token.RPAREN) {
		first, err := p.expr()
		if err != nil {
			return nil, err
		}
		args = append(args, first)
		for p.cur.is(token.COMMA) {
			p.cur.advance()
			arg, err := p.expr()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
	}
	closeTok, err := p.expect(token.RPAREN, "')'")
	if err != nil {
		return nil, err
	}
	return &ast.Call{Callee: callee, Args: args, StartPos: callee.Start(), EndPos: closeTok.End}, nil
}

// atom parses the terminal productions: literals, parenthesized
// sub-expressions, and the keyword-led compound expressions.
func (p *Parser) atom() (ast.Node, error) {
	tok := p.cur.current()
	switch tok.Kind {
	case token.INT, token.FLOAT:
		p.cur.advance()
		return &ast.NumberLit{Token: tok, StartPos: tok.Start, EndPos: tok.End}, nil

	case token.STRING:
		p.cur.advance()
		return &ast.StringLit{Token: tok, StartPos: tok.Start, EndPos: tok.End}, nil

	case token.IDENTIFIER:
		p.cur.advance()
		return &ast.VarAccess{Name: tok, StartPos: tok.Start, EndPos: tok.End}, nil

	case token.LPAREN:
		p.cur.advance()
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return inner, nil

	case token.LSQUARE:
		return p.listExpr()

	case token.KEYWORD:
		switch tok.Text() {
		case "IF":
			return p.ifExpr()
		case "FOR":
			return p.forExpr()
		case "WHILE":
			return p.whileExpr()
		case "FUNC":
			return p.funcDef()
		}
	}
	return nil, serrors.NewSyntaxError(
		"expected int, float, identifier, '+', '-', '(', '[', IF, FOR, WHILE or FUNC",
		tok.Start, tok.End,
	)
}

// listExpr parses `'[' (expr (',' expr)*)? ']'`.
func (p *Parser) listExpr() (ast.Node, error) {
	open, err := p.expect(token.LSQUARE, "'['")
	if err != nil {
		return nil, err
	}
	var elems []ast.Node
	if !p.cur.is(token.RSQUARE) {
		first, err := p.expr()
		if err != nil {
			return nil, err
		}
		elems = append(elems, first)
		for p.cur.is(token.COMMA) {
			p.cur.advance()
			el, err := p.expr()
			if err != nil {
				return nil, err
			}
			elems = append(elems, el)
		}
	}
	closeTok, err := p.expect(token.RSQUARE, "']'")
	if err != nil {
		return nil, err
	}
	return &ast.ListLit{Elements: elems, StartPos: open.Start, EndPos: closeTok.End}, nil
}
