package parser

import (
	"testing"

	"github.com/LaputanMachines/simple-script/internal/ast"
	"github.com/LaputanMachines/simple-script/internal/lexer"
)

func mustParse(t *testing.T, src string) ast.Node {
	t.Helper()
	toks, err := lexer.New("<test>", src).Tokenize()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	node, err := New(toks).Parse()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return node
}

func TestArithmeticPrecedence(t *testing.T) {
	node := mustParse(t, "1 + 2 * 3")
	stmts := node.(*ast.Statements)
	op := stmts.List[0].(*ast.BinOp)
	if op.Op.Kind.String() != "PLUS" {
		t.Fatalf("expected top-level PLUS, got %s", op.Op.Kind)
	}
	if _, ok := op.Right.(*ast.BinOp); !ok {
		t.Fatalf("expected right operand to be the MUL subexpression")
	}
}

func TestPowerIsRightAssociative(t *testing.T) {
	node := mustParse(t, "2 ^ 3 ^ 2")
	stmts := node.(*ast.Statements)
	top := stmts.List[0].(*ast.BinOp)
	left, ok := top.Left.(*ast.NumberLit)
	if !ok || left.Token.IntValue() != 2 {
		t.Fatalf("expected left operand to be the literal 2, got %#v", top.Left)
	}
	right, ok := top.Right.(*ast.BinOp)
	if !ok {
		t.Fatalf("expected right operand to itself be a BinOp (3^2), got %#v", top.Right)
	}
	if right.Op.Kind.String() != "POWER" {
		t.Fatalf("expected nested POWER, got %s", right.Op.Kind)
	}
}

func TestPowerBindsTighterThanUnaryMinus(t *testing.T) {
	node := mustParse(t, "-2 ^ 2")
	stmts := node.(*ast.Statements)
	unary, ok := stmts.List[0].(*ast.UnaryOp)
	if !ok {
		t.Fatalf("expected top-level UnaryOp, got %#v", stmts.List[0])
	}
	if _, ok := unary.Operand.(*ast.BinOp); !ok {
		t.Fatalf("expected unary operand to be the POWER subexpression")
	}
}

func TestVarAssignAndAccess(t *testing.T) {
	node := mustParse(t, "VAR x = 5\nx + 1")
	stmts := node.(*ast.Statements)
	if len(stmts.List) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(stmts.List))
	}
	assign, ok := stmts.List[0].(*ast.VarAssign)
	if !ok || assign.Name.Text() != "x" {
		t.Fatalf("expected VarAssign to x, got %#v", stmts.List[0])
	}
}

func TestInlineIfThenElse(t *testing.T) {
	node := mustParse(t, "IF 1 THEN 2 ELSE 3")
	stmts := node.(*ast.Statements)
	ifNode := stmts.List[0].(*ast.If)
	if len(ifNode.Cases) != 1 || ifNode.Cases[0].IsMultiline {
		t.Fatalf("expected a single inline case, got %+v", ifNode.Cases)
	}
	if ifNode.Else == nil || ifNode.Else.IsMultiline {
		t.Fatalf("expected an inline else case")
	}
}

func TestMultilineIfElif(t *testing.T) {
	src := "IF 1 THEN\nVAR a = 1\nEND\nELIF 2 THEN\nVAR b = 2\nEND"
	node := mustParse(t, src)
	stmts := node.(*ast.Statements)
	ifNode := stmts.List[0].(*ast.If)
	if len(ifNode.Cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(ifNode.Cases))
	}
	for _, c := range ifNode.Cases {
		if !c.IsMultiline {
			t.Fatalf("expected multiline case, got inline: %+v", c)
		}
	}
}

func TestForWithStep(t *testing.T) {
	node := mustParse(t, "FOR i = 0 TO 10 STEP 2 THEN i")
	stmts := node.(*ast.Statements)
	f := stmts.List[0].(*ast.For)
	if f.VarName.Text() != "i" || f.Step == nil {
		t.Fatalf("expected step clause, got %#v", f)
	}
}

func TestForWithoutStep(t *testing.T) {
	node := mustParse(t, "FOR i = 0 TO 10 THEN i")
	stmts := node.(*ast.Statements)
	f := stmts.List[0].(*ast.For)
	if f.Step != nil {
		t.Fatalf("expected no step clause, got %#v", f.Step)
	}
}

func TestWhileLoop(t *testing.T) {
	node := mustParse(t, "WHILE 1 THEN BREAK")
	stmts := node.(*ast.Statements)
	w := stmts.List[0].(*ast.While)
	if _, ok := w.Body.(*ast.Break); !ok {
		t.Fatalf("expected Break body, got %#v", w.Body)
	}
}

func TestInlineFuncDefAutoReturns(t *testing.T) {
	node := mustParse(t, "FUNC sq(x) -> x * x")
	stmts := node.(*ast.Statements)
	fn := stmts.List[0].(*ast.FuncDef)
	if fn.Name == nil || fn.Name.Text() != "sq" || !fn.ShouldAutoReturn {
		t.Fatalf("got %#v", fn)
	}
	if len(fn.ArgNames) != 1 || fn.ArgNames[0].Text() != "x" {
		t.Fatalf("expected single arg x, got %#v", fn.ArgNames)
	}
}

func TestMultilineFuncDefRequiresExplicitReturn(t *testing.T) {
	node := mustParse(t, "FUNC add(a, b)\nRETURN a + b\nEND")
	stmts := node.(*ast.Statements)
	fn := stmts.List[0].(*ast.FuncDef)
	if fn.ShouldAutoReturn {
		t.Fatalf("multiline body must not auto-return")
	}
	body := fn.Body.(*ast.Statements)
	if _, ok := body.List[0].(*ast.Return); !ok {
		t.Fatalf("expected explicit RETURN in body, got %#v", body.List[0])
	}
}

func TestAnonymousFuncDef(t *testing.T) {
	node := mustParse(t, "FUNC(x) -> x")
	stmts := node.(*ast.Statements)
	fn := stmts.List[0].(*ast.FuncDef)
	if fn.Name != nil {
		t.Fatalf("expected anonymous function, got name %q", fn.Name.Text())
	}
}

func TestClosureOverLexicalVariable(t *testing.T) {
	node := mustParse(t, "FUNC make(x)\nRETURN FUNC() -> x\nEND\nVAR f = make(7)\nf()")
	stmts := node.(*ast.Statements)
	if len(stmts.List) != 3 {
		t.Fatalf("expected 3 top-level statements, got %d", len(stmts.List))
	}
	call := stmts.List[2].(*ast.Call)
	if _, ok := call.Callee.(*ast.VarAccess); !ok {
		t.Fatalf("expected call on a VarAccess, got %#v", call.Callee)
	}
}

func TestCallWithMultipleArgs(t *testing.T) {
	node := mustParse(t, "add(1, 2, 3)")
	stmts := node.(*ast.Statements)
	call := stmts.List[0].(*ast.Call)
	if len(call.Args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(call.Args))
	}
}

func TestListLiteral(t *testing.T) {
	node := mustParse(t, `[1, "two", x]`)
	stmts := node.(*ast.Statements)
	list := stmts.List[0].(*ast.ListLit)
	if len(list.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(list.Elements))
	}
}

func TestEmptyListLiteral(t *testing.T) {
	node := mustParse(t, "[]")
	stmts := node.(*ast.Statements)
	list := stmts.List[0].(*ast.ListLit)
	if len(list.Elements) != 0 {
		t.Fatalf("expected 0 elements, got %d", len(list.Elements))
	}
}

func TestBareReturnAtStatementEnd(t *testing.T) {
	node := mustParse(t, "FUNC f()\nRETURN\nEND")
	stmts := node.(*ast.Statements)
	fn := stmts.List[0].(*ast.FuncDef)
	body := fn.Body.(*ast.Statements)
	ret := body.List[0].(*ast.Return)
	if ret.Value != nil {
		t.Fatalf("expected bare RETURN with nil value, got %#v", ret.Value)
	}
}

func TestAndOrLowerPrecedenceThanComparison(t *testing.T) {
	node := mustParse(t, "1 < 2 AND 3 > 2")
	stmts := node.(*ast.Statements)
	top := stmts.List[0].(*ast.BinOp)
	if top.Op.Kind.String() != "KEYWORD" || top.Op.Text() != "AND" {
		t.Fatalf("expected top-level AND, got %s", top.Op)
	}
	if _, ok := top.Left.(*ast.BinOp); !ok {
		t.Fatalf("expected left operand to be the comparison subexpression")
	}
}

func TestNotBindsComparison(t *testing.T) {
	node := mustParse(t, "NOT 1 == 2")
	stmts := node.(*ast.Statements)
	unary := stmts.List[0].(*ast.UnaryOp)
	if _, ok := unary.Operand.(*ast.BinOp); !ok {
		t.Fatalf("expected NOT to wrap the equality comparison, got %#v", unary.Operand)
	}
}

func TestParenthesizedExpression(t *testing.T) {
	node := mustParse(t, "(1 + 2) * 3")
	stmts := node.(*ast.Statements)
	top := stmts.List[0].(*ast.BinOp)
	if top.Op.Kind.String() != "MUL" {
		t.Fatalf("expected top-level MUL, got %s", top.Op.Kind)
	}
	if _, ok := top.Left.(*ast.BinOp); !ok {
		t.Fatalf("expected parenthesized left operand to be a BinOp")
	}
}

func TestMissingClosingParenIsSyntaxError(t *testing.T) {
	toks, err := lexer.New("<test>", "(1 + 2").Tokenize()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	if _, err := New(toks).Parse(); err == nil {
		t.Fatalf("expected a syntax error for unclosed paren")
	}
}

func TestTrailingTokensAfterProgramIsSyntaxError(t *testing.T) {
	toks, err := lexer.New("<test>", "1 2").Tokenize()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	if _, err := New(toks).Parse(); err == nil {
		t.Fatalf("expected a syntax error for a second atom with no operator")
	}
}
