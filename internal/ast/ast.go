// Package ast defines the SimpleScript abstract syntax tree: a closed
// family of node variants, each carrying the source span it was parsed
// from.
package ast

import (
	"fmt"
	"strings"

	"github.com/LaputanMachines/simple-script/pkg/token"
)

// Node is the base interface every AST node implements.
type Node interface {
	// Start returns the position of the first token of this node.
	Start() token.Position
	// End returns the position just past the last token of this node.
	End() token.Position
	// String renders the node for debugging and AST dumps.
	String() string
}

// Statements is a top-level ordered sequence of statement nodes. It is
// itself a Node so it can be used as a function/loop body.
type Statements struct {
	List     []Node
	StartPos token.Position
	EndPos   token.Position
}

func (s *Statements) Start() token.Position { return s.StartPos }
func (s *Statements) End() token.Position   { return s.EndPos }
func (s *Statements) String() string {
	parts := make([]string, len(s.List))
	for i, n := range s.List {
		parts[i] = n.String()
	}
	return strings.Join(parts, "\n")
}

// NumberLit is an integer or float literal.
type NumberLit struct {
	Token    token.Token
	StartPos token.Position
	EndPos   token.Position
}

func (n *NumberLit) Start() token.Position { return n.StartPos }
func (n *NumberLit) End() token.Position   { return n.EndPos }
func (n *NumberLit) String() string        { return n.Token.String() }

// StringLit is a string literal.
type StringLit struct {
	Token    token.Token
	StartPos token.Position
	EndPos   token.Position
}

func (n *StringLit) Start() token.Position { return n.StartPos }
func (n *StringLit) End() token.Position   { return n.EndPos }
func (n *StringLit) String() string        { return fmt.Sprintf("%q", n.Token.Text()) }

// ListLit is a `[a, b, c]` literal.
type ListLit struct {
	Elements []Node
	StartPos token.Position
	EndPos   token.Position
}

func (n *ListLit) Start() token.Position { return n.StartPos }
func (n *ListLit) End() token.Position   { return n.EndPos }
func (n *ListLit) String() string {
	parts := make([]string, len(n.Elements))
	for i, e := range n.Elements {
		parts[i] = e.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// VarAccess reads a variable by name.
type VarAccess struct {
	Name     token.Token
	StartPos token.Position
	EndPos   token.Position
}

func (n *VarAccess) Start() token.Position { return n.StartPos }
func (n *VarAccess) End() token.Position   { return n.EndPos }
func (n *VarAccess) String() string        { return n.Name.Text() }

// VarAssign binds Name to the value of Value in the current scope.
type VarAssign struct {
	Name     token.Token
	Value    Node
	StartPos token.Position
	EndPos   token.Position
}

func (n *VarAssign) Start() token.Position { return n.StartPos }
func (n *VarAssign) End() token.Position   { return n.EndPos }
func (n *VarAssign) String() string {
	return fmt.Sprintf("VAR %s = %s", n.Name.Text(), n.Value.String())
}

// BinOp is a left-op-right binary expression.
type BinOp struct {
	Left     Node
	Op       token.Token
	Right    Node
	StartPos token.Position
	EndPos   token.Position
}

func (n *BinOp) Start() token.Position { return n.StartPos }
func (n *BinOp) End() token.Position   { return n.EndPos }
func (n *BinOp) String() string {
	return fmt.Sprintf("(%s %s %s)", n.Left.String(), n.Op.String(), n.Right.String())
}

// UnaryOp is a prefix operator applied to Operand.
type UnaryOp struct {
	Op       token.Token
	Operand  Node
	StartPos token.Position
	EndPos   token.Position
}

func (n *UnaryOp) Start() token.Position { return n.StartPos }
func (n *UnaryOp) End() token.Position   { return n.EndPos }
func (n *UnaryOp) String() string {
	return fmt.Sprintf("(%s %s)", n.Op.String(), n.Operand.String())
}

// IfCase is one `cond THEN body` arm of an If.
type IfCase struct {
	Condition   Node
	Body        Node
	IsMultiline bool
}

// ElseCase is the optional trailing `ELSE body` arm.
type ElseCase struct {
	Body        Node
	IsMultiline bool
}

// If evaluates Cases in order, taking the first truthy condition's body,
// falling back to Else if present, else producing null.
type If struct {
	Cases    []IfCase
	Else     *ElseCase
	StartPos token.Position
	EndPos   token.Position
}

func (n *If) Start() token.Position { return n.StartPos }
func (n *If) End() token.Position   { return n.EndPos }
func (n *If) String() string {
	var sb strings.Builder
	for i, c := range n.Cases {
		if i == 0 {
			sb.WriteString("IF ")
		} else {
			sb.WriteString("ELIF ")
		}
		sb.WriteString(c.Condition.String())
		sb.WriteString(" THEN ")
		sb.WriteString(c.Body.String())
		sb.WriteString(" ")
	}
	if n.Else != nil {
		sb.WriteString("ELSE ")
		sb.WriteString(n.Else.Body.String())
	}
	return strings.TrimSpace(sb.String())
}

// For binds VarName to each Number from Start to End (exclusive), stepping
// by Step (default 1), evaluating Body each iteration.
type For struct {
	VarName     token.Token
	StartExpr   Node
	EndExpr     Node
	Step        Node // nil if absent
	Body        Node
	IsMultiline bool
	StartPos    token.Position
	EndPos      token.Position
}

func (n *For) Start() token.Position { return n.StartPos }
func (n *For) End() token.Position   { return n.EndPos }
func (n *For) String() string {
	return fmt.Sprintf("FOR %s = %s TO %s THEN %s", n.VarName.Text(), n.StartExpr, n.EndExpr, n.Body)
}

// While re-evaluates Condition before each iteration of Body.
type While struct {
	Condition   Node
	Body        Node
	IsMultiline bool
	StartPos    token.Position
	EndPos      token.Position
}

func (n *While) Start() token.Position { return n.StartPos }
func (n *While) End() token.Position   { return n.EndPos }
func (n *While) String() string {
	return fmt.Sprintf("WHILE %s THEN %s", n.Condition, n.Body)
}

// FuncDef declares a function value: an optional name (nil for anonymous
// function literals), its parameter names, body, and whether the body is
// an inline (auto-returning) expression.
type FuncDef struct {
	Name             *token.Token
	ArgNames         []token.Token
	Body             Node
	ShouldAutoReturn bool
	StartPos         token.Position
	EndPos           token.Position
}

func (n *FuncDef) Start() token.Position { return n.StartPos }
func (n *FuncDef) End() token.Position   { return n.EndPos }
func (n *FuncDef) String() string {
	name := "<anonymous>"
	if n.Name != nil {
		name = n.Name.Text()
	}
	args := make([]string, len(n.ArgNames))
	for i, a := range n.ArgNames {
		args[i] = a.Text()
	}
	return fmt.Sprintf("FUNC %s(%s) -> %s", name, strings.Join(args, ", "), n.Body)
}

// Call applies Callee to Args.
type Call struct {
	Callee   Node
	Args     []Node
	StartPos token.Position
	EndPos   token.Position
}

func (n *Call) Start() token.Position { return n.StartPos }
func (n *Call) End() token.Position   { return n.EndPos }
func (n *Call) String() string {
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", n.Callee.String(), strings.Join(parts, ", "))
}

// Return signals func_return_value, optionally carrying a value expression.
type Return struct {
	Value    Node // nil if bare `RETURN`
	StartPos token.Position
	EndPos   token.Position
}

func (n *Return) Start() token.Position { return n.StartPos }
func (n *Return) End() token.Position   { return n.EndPos }
func (n *Return) String() string {
	if n.Value == nil {
		return "RETURN"
	}
	return "RETURN " + n.Value.String()
}

// Continue signals loop_continue.
type Continue struct {
	StartPos token.Position
	EndPos   token.Position
}

func (n *Continue) Start() token.Position { return n.StartPos }
func (n *Continue) End() token.Position   { return n.EndPos }
func (n *Continue) String() string        { return "CONTINUE" }

// Break signals loop_break.
type Break struct {
	StartPos token.Position
	EndPos   token.Position
}

func (n *Break) Start() token.Position { return n.StartPos }
func (n *Break) End() token.Position   { return n.EndPos }
func (n *Break) String() string        { return "BREAK" }
