package parser

import "github.com/LaputanMachines/simple-script/pkg/token"

// cursor is an index into a fully materialized token slice, with
// checkpoint/rollback support for speculative parsing: mark captures the
// current index, reset rewinds to it. A failed speculative parse that
// rewinds afterward is indistinguishable from one that never ran —
// the invariant tryContinuation relies on when it looks past newlines for
// a following ELIF/ELSE.
type cursor struct {
	tokens []token.Token
	idx    int
}

func newCursor(tokens []token.Token) *cursor {
	return &cursor{tokens: tokens}
}

// current returns the token at the cursor without advancing.
func (c *cursor) current() token.Token {
	return c.tokens[c.idx]
}

// advance moves one token forward and returns the new current token.
func (c *cursor) advance() token.Token {
	if c.idx < len(c.tokens)-1 {
		c.idx++
	}
	return c.current()
}

// mark captures the current position for a later Reset.
func (c *cursor) mark() int { return c.idx }

// reset rewinds the cursor to a previously captured mark.
func (c *cursor) reset(mark int) { c.idx = mark }

// is reports whether the current token has the given kind.
func (c *cursor) is(kind token.Kind) bool { return c.current().Kind == kind }

// isKeyword reports whether the current token is the named keyword.
func (c *cursor) isKeyword(name string) bool {
	return c.current().Matches(token.KEYWORD, name)
}
