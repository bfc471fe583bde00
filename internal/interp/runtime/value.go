// Package runtime provides the activation-record machinery shared by every
// SimpleScript value: the chained symbol table and the per-call Context
// used to render tracebacks. It depends on nothing above it — the concrete
// value types (Number, String, ...) live in the parent interp package and
// implement the Value interface declared here.
package runtime

import "github.com/LaputanMachines/simple-script/pkg/token"

// Value is the minimal shape every runtime value implements: type tag,
// display rendering, truthiness, a deep-enough copy for mutation isolation,
// and the span/Context bookkeeping every diagnostic needs.
type Value interface {
	Type() string
	String() string
	IsTrue() bool
	Copy() Value

	Start() token.Position
	End() token.Position
	SetPos(start, end token.Position)

	Ctx() *Context
	SetCtx(ctx *Context)
}

// Base is embedded by every concrete value to supply the position/Context
// bookkeeping uniformly, mirroring the shared Value superclass of the
// language this interpreter is modeled on.
type Base struct {
	StartPos, EndPos token.Position
	Context          *Context
}

func (b *Base) Start() token.Position { return b.StartPos }
func (b *Base) End() token.Position   { return b.EndPos }
func (b *Base) SetPos(start, end token.Position) {
	b.StartPos, b.EndPos = start, end
}
func (b *Base) Ctx() *Context       { return b.Context }
func (b *Base) SetCtx(ctx *Context) { b.Context = ctx }
