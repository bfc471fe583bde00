package errors

import (
	"fmt"
	"strings"

	"github.com/LaputanMachines/simple-script/pkg/token"
)

// StackFrame is one activation on a runtime call stack: the display name
// of the function (or "<program>" for the top level) and the position in
// the *caller* from which it was entered.
type StackFrame struct {
	DisplayName string
	File        string
	EntryPos    *token.Position
}

// NewStackFrame builds a StackFrame. entryPos may be nil for the root frame.
func NewStackFrame(displayName, file string, entryPos *token.Position) StackFrame {
	return StackFrame{DisplayName: displayName, File: file, EntryPos: entryPos}
}

func (f StackFrame) String() string {
	if f.EntryPos == nil {
		return fmt.Sprintf("File %s, in %s", f.File, f.DisplayName)
	}
	return fmt.Sprintf("File %s, line %d, in %s", f.File, f.EntryPos.Line+1, f.DisplayName)
}

// StackTrace is an ordered sequence of frames, oldest (outermost call)
// first — the order frames are pushed during evaluation.
type StackTrace []StackFrame

// String renders the trace the way the original interpreter's
// generate_traceback does: a "Traceback (most recent call last):" header
// followed by one "File ..., line N, in name" per frame, oldest first so
// the innermost (most recent) call prints last.
func (st StackTrace) String() string {
	if len(st) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("Traceback (most recent call last):\n")
	for _, f := range st {
		sb.WriteString(f.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Reverse returns a copy of the trace with frames in the opposite order.
func (st StackTrace) Reverse() StackTrace {
	out := make(StackTrace, len(st))
	for i, f := range st {
		out[len(st)-1-i] = f
	}
	return out
}

// Depth returns the number of frames currently on the trace.
func (st StackTrace) Depth() int { return len(st) }
