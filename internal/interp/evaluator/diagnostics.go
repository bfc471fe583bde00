package evaluator

import (
	serrors "github.com/LaputanMachines/simple-script/internal/errors"
	"github.com/LaputanMachines/simple-script/internal/interp/runtime"
	"github.com/LaputanMachines/simple-script/pkg/token"
)

// runtimeErrorf builds a RuntimeError with the traceback active at ctx —
// the shared shape every evaluator-raised error (undefined name, arity
// mismatch, non-callable callee, non-numeric FOR bounds) goes through.
func runtimeErrorf(detail string, start, end token.Position, ctx *runtime.Context) error {
	return serrors.NewRuntimeError(detail, start, end, tracebackFor(ctx))
}
