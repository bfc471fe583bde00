// Package parser turns a token stream into an AST by recursive descent,
// one production per grammar rule, each disambiguated by a single token of
// lookahead. Left-associative binary-operator ladders (expr/comparison/
// arithmetic/term) are built from one shared helper so precedence lives in
// the call graph, not in a table; power folds its right operand through
// factor instead, for right-associativity.
package parser

import (
	"github.com/LaputanMachines/simple-script/internal/ast"
	serrors "github.com/LaputanMachines/simple-script/internal/errors"
	"github.com/LaputanMachines/simple-script/pkg/token"
)

// Parser consumes a fixed token slice (produced up front by the lexer) and
// builds an ast.Node tree.
type Parser struct {
	cur *cursor
}

// New builds a Parser over tokens, which must end with an EOF token.
func New(tokens []token.Token) *Parser {
	return &Parser{cur: newCursor(tokens)}
}

// Parse parses a full program: `statements EOF`.
func (p *Parser) Parse() (ast.Node, error) {
	stmts, err := p.statements()
	if err != nil {
		return nil, err
	}
	if !p.cur.is(token.EOF) {
		tok := p.cur.current()
		return nil, serrors.NewSyntaxError(
			"expected an operator, but found "+tok.Kind.String(),
			tok.Start, tok.End,
		)
	}
	return stmts, nil
}

// expect consumes the current token if it has the given kind, else returns
// a SyntaxError naming what was expected.
func (p *Parser) expect(kind token.Kind, what string) (token.Token, error) {
	tok := p.cur.current()
	if tok.Kind != kind {
		return token.Token{}, serrors.NewSyntaxError(
			"expected "+what, tok.Start, tok.End,
		)
	}
	p.cur.advance()
	return tok, nil
}

// expectKeyword consumes the current token if it is the named keyword.
func (p *Parser) expectKeyword(name string) (token.Token, error) {
	tok := p.cur.current()
	if !tok.Matches(token.KEYWORD, name) {
		return token.Token{}, serrors.NewSyntaxError(
			"expected '"+name+"'", tok.Start, tok.End,
		)
	}
	p.cur.advance()
	return tok, nil
}

// skipNewlines consumes zero or more NEWLINE tokens.
func (p *Parser) skipNewlines() {
	for p.cur.is(token.NEWLINE) {
		p.cur.advance()
	}
}

// tryContinuation looks past any newlines for the named keyword — the
// optional separator a multiline IF/ELIF arm leaves between its closing END
// and a following ELIF/ELSE. If found, the newlines are consumed and true
// is returned with the keyword still current. Otherwise the cursor is left
// exactly where it was: those newlines belong to the enclosing statement
// separator, not to this chain.
func (p *Parser) tryContinuation(keyword string) bool {
	mark := p.cur.mark()
	p.skipNewlines()
	if p.cur.isKeyword(keyword) {
		return true
	}
	p.cur.reset(mark)
	return false
}

// binOpLadder parses `operand (opMatches operand)*`, left-folding into
// nested BinOp nodes — the shared shape of expr/comparison/arithmetic/term.
func (p *Parser) binOpLadder(operand func() (ast.Node, error), opMatches func(token.Token) bool) (ast.Node, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for opMatches(p.cur.current()) {
		op := p.cur.current()
		p.cur.advance()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{
			Left: left, Op: op, Right: right,
			StartPos: left.Start(), EndPos: right.End(),
		}
	}
	return left, nil
}
