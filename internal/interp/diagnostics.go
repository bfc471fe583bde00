package interp

import (
	serrors "github.com/LaputanMachines/simple-script/internal/errors"
	"github.com/LaputanMachines/simple-script/internal/interp/runtime"
)

// traceback walks a Context's parent chain and renders it into the
// outermost-first StackTrace shape errors.RuntimeError expects. The chain
// itself runs from the innermost active call back to the global context;
// reversing it here means frame[0] is the program entry point.
func traceback(ctx *runtime.Context) serrors.StackTrace {
	var frames serrors.StackTrace
	for c := ctx; c != nil; c = c.Parent {
		frames = append(frames, serrors.NewStackFrame(c.DisplayName, c.File, c.ParentEntryPos))
	}
	return frames.Reverse()
}

// illegalOperation builds the default RuntimeError every value falls back
// to when an operator method doesn't recognize its operand's type —
// the Go analogue of the original Value.illegal_operation default.
func illegalOperation(self, other runtime.Value) error {
	end := self.End()
	if other != nil {
		end = other.End()
	}
	return serrors.NewRuntimeError("illegal operation performed", self.Start(), end, traceback(self.Ctx()))
}
