package runtime

import "github.com/LaputanMachines/simple-script/pkg/token"

// Context is one activation record: a display name for tracebacks, a link
// to the context that entered it, the position in the parent at which it
// was entered, the source file this activation is executing in (usually
// inherited from the parent, but distinct after a RUN into another file),
// and the symbol table live during this activation. The global context
// has no parent.
type Context struct {
	DisplayName    string
	Parent         *Context
	ParentEntryPos *token.Position
	File           string
	Symbols        *SymbolTable
}

// NewContext builds a Context. parentEntryPos may be nil for the root.
func NewContext(displayName, file string, parent *Context, parentEntryPos *token.Position) *Context {
	return &Context{DisplayName: displayName, File: file, Parent: parent, ParentEntryPos: parentEntryPos}
}
