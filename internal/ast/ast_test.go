package ast

import (
	"testing"

	"github.com/LaputanMachines/simple-script/pkg/token"
)

func pos(idx int) token.Position { return token.Position{Index: idx} }

func TestNumberLitSpan(t *testing.T) {
	n := &NumberLit{
		Token:    token.New(token.INT, int64(5), pos(0), pos(1)),
		StartPos: pos(0),
		EndPos:   pos(1),
	}
	if n.Start().Index != 0 || n.End().Index != 1 {
		t.Fatalf("got span [%d,%d)", n.Start().Index, n.End().Index)
	}
	if n.String() != "INT:5" {
		t.Fatalf("got %q", n.String())
	}
}

func TestBinOpString(t *testing.T) {
	left := &NumberLit{Token: token.New(token.INT, int64(1), pos(0), pos(1))}
	right := &NumberLit{Token: token.New(token.INT, int64(2), pos(2), pos(3))}
	op := &BinOp{Left: left, Op: token.New(token.PLUS, nil, pos(1), pos(2)), Right: right}
	if op.String() != "(INT:1 PLUS INT:2)" {
		t.Fatalf("got %q", op.String())
	}
}

func TestListLitString(t *testing.T) {
	l := &ListLit{Elements: []Node{
		&NumberLit{Token: token.New(token.INT, int64(1), pos(0), pos(1))},
		&NumberLit{Token: token.New(token.INT, int64(2), pos(2), pos(3))},
	}}
	if l.String() != "[INT:1, INT:2]" {
		t.Fatalf("got %q", l.String())
	}
}

func TestIfStringSingleInlineCase(t *testing.T) {
	cond := &NumberLit{Token: token.New(token.INT, int64(1), pos(0), pos(1))}
	body := &StringLit{Token: token.New(token.STRING, "yes", pos(2), pos(7))}
	ifNode := &If{Cases: []IfCase{{Condition: cond, Body: body, IsMultiline: false}}}
	if ifNode.String() != `IF INT:1 THEN "yes"` {
		t.Fatalf("got %q", ifNode.String())
	}
}
