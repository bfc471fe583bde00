package evaluator

import (
	serrors "github.com/LaputanMachines/simple-script/internal/errors"
	"github.com/LaputanMachines/simple-script/internal/interp/runtime"
	"github.com/LaputanMachines/simple-script/pkg/token"
)

// DefaultMaxCallDepth bounds recursion when a driver doesn't configure one.
const DefaultMaxCallDepth = 1024

// CallStack tracks how many calls are currently nested so a runaway
// recursive SimpleScript function raises a RuntimeError instead of
// crashing the host process with a Go stack overflow. The traceback itself
// is read off the runtime.Context chain (see traceback in the interp
// package) — this type only counts depth and guards the limit.
type CallStack struct {
	depth    int
	maxDepth int
}

// NewCallStack builds a CallStack with the given maximum nesting depth. A
// non-positive maxDepth falls back to DefaultMaxCallDepth.
func NewCallStack(maxDepth int) *CallStack {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxCallDepth
	}
	return &CallStack{maxDepth: maxDepth}
}

// Push records one more nested call, returning a RuntimeError if doing so
// would exceed the configured maximum depth.
func (cs *CallStack) Push(ctx *runtime.Context, entryPos token.Position) error {
	if cs.depth >= cs.maxDepth {
		return serrors.NewRuntimeError("maximum recursion depth exceeded", entryPos, entryPos, tracebackFor(ctx))
	}
	cs.depth++
	return nil
}

// Pop undoes the most recent Push.
func (cs *CallStack) Pop() {
	if cs.depth > 0 {
		cs.depth--
	}
}

// Depth reports the current nesting depth.
func (cs *CallStack) Depth() int { return cs.depth }

// MaxDepth reports the configured limit.
func (cs *CallStack) MaxDepth() int { return cs.maxDepth }

func tracebackFor(ctx *runtime.Context) serrors.StackTrace {
	var frames serrors.StackTrace
	for c := ctx; c != nil; c = c.Parent {
		frames = append(frames, serrors.NewStackFrame(c.DisplayName, c.File, c.ParentEntryPos))
	}
	for i, j := 0, len(frames)-1; i < j; i, j = i+1, j-1 {
		frames[i], frames[j] = frames[j], frames[i]
	}
	return frames
}
