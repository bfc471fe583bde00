package errors

import (
	"strings"
	"testing"

	"github.com/LaputanMachines/simple-script/pkg/token"
)

func TestStackTraceOrdering(t *testing.T) {
	p := token.Position{Line: 4}
	st := StackTrace{
		NewStackFrame("<program>", "main.ss", nil),
		NewStackFrame("sq", "main.ss", &p),
	}
	rendered := st.String()
	programIdx := strings.Index(rendered, "<program>")
	sqIdx := strings.Index(rendered, "in sq")
	if programIdx == -1 || sqIdx == -1 || programIdx > sqIdx {
		t.Fatalf("expected <program> before sq (outermost first): %q", rendered)
	}
}

func TestStackTraceReverse(t *testing.T) {
	st := StackTrace{NewStackFrame("a", "f", nil), NewStackFrame("b", "f", nil)}
	rev := st.Reverse()
	if rev[0].DisplayName != "b" || rev[1].DisplayName != "a" {
		t.Fatalf("got %+v", rev)
	}
}

func TestEmptyStackTraceStringIsEmpty(t *testing.T) {
	var st StackTrace
	if st.String() != "" {
		t.Fatalf("expected empty string, got %q", st.String())
	}
}
