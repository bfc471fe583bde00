package interp

import (
	"fmt"

	"github.com/LaputanMachines/simple-script/internal/interp/runtime"
)

// BuiltInFunction is a host-provided callable: its name carries its
// registered parameter list and handler, looked up by the evaluator
// through the registry the builtins package populates at startup (the
// "registration protocol"). The value itself only needs to exist, compare,
// and copy — it carries no executable body.
type BuiltInFunction struct {
	runtime.Base
	Name string
}

func NewBuiltInFunction(name string) *BuiltInFunction {
	return &BuiltInFunction{Name: name}
}

func (b *BuiltInFunction) Type() string { return "BUILTIN_FUNCTION" }
func (b *BuiltInFunction) String() string {
	return fmt.Sprintf("<built-in function %s>", b.Name)
}
func (b *BuiltInFunction) IsTrue() bool { return true }

func (b *BuiltInFunction) Copy() runtime.Value {
	cp := &BuiltInFunction{Name: b.Name}
	cp.SetPos(b.Start(), b.End())
	cp.SetCtx(b.Ctx())
	return cp
}
