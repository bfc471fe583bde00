// Package evaluator walks the AST against a runtime.Context, dispatching
// each node to the operator contracts exposed by the interp value types.
package evaluator

import "github.com/LaputanMachines/simple-script/internal/interp/runtime"

// RuntimeResult threads a value-or-error result through evaluation along
// with the three control-flow signals a visit can raise: a function
// return, a loop continue, and a loop break. Every visit method returns
// one of these; a caller that doesn't consume a given signal forwards it
// untouched by checking ShouldReturn before proceeding.
type RuntimeResult struct {
	Value     runtime.Value
	Err       error
	ReturnVal runtime.Value
	Continue  bool
	Break     bool
}

// Register folds another RuntimeResult's control-flow state into this one
// and hands back its value — the same short-circuiting shape the original
// evaluator's RuntimeResult.register used to thread results node to node.
func (r *RuntimeResult) Register(other *RuntimeResult) runtime.Value {
	r.Err = other.Err
	r.ReturnVal = other.ReturnVal
	r.Continue = other.Continue
	r.Break = other.Break
	return other.Value
}

// Success resets control-flow state and records a plain value.
func Success(v runtime.Value) *RuntimeResult {
	return &RuntimeResult{Value: v}
}

// Failure resets control-flow state and records an error.
func Failure(err error) *RuntimeResult {
	return &RuntimeResult{Err: err}
}

// SuccessReturn signals a RETURN with the given value (nil for a bare
// `RETURN`).
func SuccessReturn(v runtime.Value) *RuntimeResult {
	return &RuntimeResult{ReturnVal: v}
}

// SuccessContinue signals a CONTINUE.
func SuccessContinue() *RuntimeResult {
	return &RuntimeResult{Continue: true}
}

// SuccessBreak signals a BREAK.
func SuccessBreak() *RuntimeResult {
	return &RuntimeResult{Break: true}
}

// ShouldReturn reports whether any control-flow signal is active and the
// caller must stop evaluating siblings and propagate immediately.
func (r *RuntimeResult) ShouldReturn() bool {
	return r.Err != nil || r.ReturnVal != nil || r.Continue || r.Break
}
