package parser

import (
	"github.com/LaputanMachines/simple-script/internal/ast"
	"github.com/LaputanMachines/simple-script/pkg/token"
)

// statements parses `NEWLINE* statement (NEWLINE+ statement)* NEWLINE*`.
func (p *Parser) statements() (ast.Node, error) {
	start := p.cur.current().Start
	p.skipNewlines()

	var list []ast.Node
	first, err := p.statement()
	if err != nil {
		return nil, err
	}
	list = append(list, first)

	for {
		sawNewline := false
		for p.cur.is(token.NEWLINE) {
			p.cur.advance()
			sawNewline = true
		}
		if !sawNewline || !p.statementStarts() {
			break
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		list = append(list, stmt)
	}
	end := p.cur.current().Start
	if len(list) > 0 {
		end = list[len(list)-1].End()
	}
	return &ast.Statements{List: list, StartPos: start, EndPos: end}, nil
}

// statementStarts reports whether the current token can begin a statement —
// used to decide, after consuming separating newlines, whether another
// statement follows or the block has ended (at END/ELIF/ELSE/EOF).
func (p *Parser) statementStarts() bool {
	return !p.atStatementEnd()
}

// atStatementEnd reports whether the current token cannot begin an
// expression: a bare `RETURN` stops here, and a block body ends here.
func (p *Parser) atStatementEnd() bool {
	tok := p.cur.current()
	switch tok.Kind {
	case token.EOF, token.NEWLINE, token.RPAREN, token.RSQUARE:
		return true
	case token.KEYWORD:
		switch tok.Text() {
		case "END", "ELIF", "ELSE":
			return true
		}
	}
	return false
}

// statement parses `'RETURN' expr? | 'CONTINUE' | 'BREAK' | expr`.
func (p *Parser) statement() (ast.Node, error) {
	tok := p.cur.current()
	switch {
	case tok.Matches(token.KEYWORD, "RETURN"):
		p.cur.advance()
		start := tok.Start
		end := tok.End
		var value ast.Node
		if !p.atStatementEnd() {
			v, err := p.expr()
			if err != nil {
				return nil, err
			}
			value = v
			end = v.End()
		}
		return &ast.Return{Value: value, StartPos: start, EndPos: end}, nil

	case tok.Matches(token.KEYWORD, "CONTINUE"):
		p.cur.advance()
		return &ast.Continue{StartPos: tok.Start, EndPos: tok.End}, nil

	case tok.Matches(token.KEYWORD, "BREAK"):
		p.cur.advance()
		return &ast.Break{StartPos: tok.Start, EndPos: tok.End}, nil

	default:
		return p.expr()
	}
}

// block parses the shared `(NEWLINE statements 'END') | statement` body
// used after THEN in if/for/while: a multiline block terminated by END, or
// a single inline statement. Reports whether the multiline form was taken.
func (p *Parser) block() (ast.Node, bool, error) {
	if p.cur.is(token.NEWLINE) {
		p.cur.advance()
		stmts, err := p.statements()
		if err != nil {
			return nil, false, err
		}
		if _, err := p.expectKeyword("END"); err != nil {
			return nil, false, err
		}
		return stmts, true, nil
	}
	stmt, err := p.statement()
	if err != nil {
		return nil, false, err
	}
	return stmt, false, nil
}
