package interp

import (
	"fmt"

	"github.com/LaputanMachines/simple-script/internal/ast"
	"github.com/LaputanMachines/simple-script/internal/interp/runtime"
)

// Function is a user-defined closure: its declared parameter names, its
// body, whether that body auto-returns (inline `->` form), and the Context
// it was defined in — captured so a call resolves free variables against
// the definition site's scope, not the call site's.
//
// Execution lives in the evaluator package rather than here: the original
// interpreter this is modeled on ran into the same problem (a Function's
// call logic needs the tree-walking visitor, and the visitor needs the
// Function type) and broke the cycle by defining the call in the same
// package as the visitor. This is the Go equivalent of that split.
type Function struct {
	runtime.Base
	Name             string
	ArgNames         []string
	Body             ast.Node
	ShouldAutoReturn bool
	Closure          *runtime.Context
}

func NewFunction(name string, argNames []string, body ast.Node, autoReturn bool, closure *runtime.Context) *Function {
	if name == "" {
		name = "<anonymous>"
	}
	return &Function{Name: name, ArgNames: argNames, Body: body, ShouldAutoReturn: autoReturn, Closure: closure}
}

func (f *Function) Type() string { return "FUNCTION" }
func (f *Function) String() string {
	return fmt.Sprintf("<function %s>", f.Name)
}
func (f *Function) IsTrue() bool { return true }

func (f *Function) Copy() runtime.Value {
	cp := &Function{
		Name: f.Name, ArgNames: f.ArgNames, Body: f.Body,
		ShouldAutoReturn: f.ShouldAutoReturn, Closure: f.Closure,
	}
	cp.SetPos(f.Start(), f.End())
	cp.SetCtx(f.Ctx())
	return cp
}
