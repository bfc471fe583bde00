// Package errors formats SimpleScript diagnostics with source context and a
// caret underline, and renders runtime call-stack tracebacks.
//
// Error taxonomy is closed: IllegalCharError and UnterminatedStringError
// (lex), ExpectedCharError (lex), SyntaxError (parse), and RuntimeError
// (evaluation). Every kind implements the standard error interface.
package errors

import (
	"fmt"
	"strings"

	"github.com/LaputanMachines/simple-script/pkg/token"
	"golang.org/x/text/width"
)

// Diagnostic is the shared shape of every SimpleScript error: a name, a
// human-readable detail string, and the span it applies to.
type Diagnostic struct {
	Name   string
	Detail string
	Start  token.Position
	End    token.Position
}

func (d *Diagnostic) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "File %s, line %d\n", fileOrStdin(d.Start.File), d.Start.Line+1)
	fmt.Fprintf(&sb, "%s: %s\n", d.Name, d.Detail)
	sb.WriteString(FormatSnippet(d.Start.Text, d.Start, d.End))
	return sb.String()
}

func fileOrStdin(f string) string {
	if f == "" {
		return "<stdin>"
	}
	return f
}

// FormatSnippet renders the source line(s) spanned by [start, end) with a
// caret underline beneath the offending text, the same shape as the
// original tokenizer's string_with_arrows helper.
//
// Column offsets account for East-Asian wide runes (counted as two caret
// columns) so the underline still lines up beneath double-width characters
// in a terminal — the one place in this repo that needs display width
// rather than a plain rune count.
func FormatSnippet(text string, start, end token.Position) string {
	lines := strings.Split(text, "\n")
	if start.Line < 0 || start.Line >= len(lines) {
		return ""
	}
	var sb strings.Builder
	lineCount := end.Line - start.Line + 1
	if lineCount < 1 {
		lineCount = 1
	}
	for i := 0; i < lineCount; i++ {
		lineIdx := start.Line + i
		if lineIdx >= len(lines) {
			break
		}
		line := strings.ReplaceAll(lines[lineIdx], "\t", " ")
		colStart := 0
		if i == 0 {
			colStart = start.Column
		}
		colEnd := displayWidth(line)
		if i == lineCount-1 {
			colEnd = end.Column
		}
		if colEnd < colStart {
			colEnd = colStart
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
		sb.WriteString(strings.Repeat(" ", displayWidth(runePrefix(line, colStart))))
		sb.WriteString(strings.Repeat("^", maxInt(1, colEnd-colStart)))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func runePrefix(s string, runes int) string {
	r := []rune(s)
	if runes > len(r) {
		runes = len(r)
	}
	return string(r[:runes])
}

func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// IllegalCharError reports an unrecognized byte in the source stream.
type IllegalCharError struct{ *Diagnostic }

// NewIllegalCharError builds an IllegalCharError for ch.
func NewIllegalCharError(ch rune, start, end token.Position) *IllegalCharError {
	return &IllegalCharError{&Diagnostic{
		Name:   "IllegalCharError",
		Detail: fmt.Sprintf("illegal character in the stream (%q)", ch),
		Start:  start, End: end,
	}}
}

// NewMalformedNumberError reports a numeric literal that failed to parse
// (e.g. more digits than fit in an int64, or a malformed float).
func NewMalformedNumberError(text string, start, end token.Position) *IllegalCharError {
	return &IllegalCharError{&Diagnostic{
		Name:   "IllegalCharError",
		Detail: fmt.Sprintf("malformed numeric literal %q", text),
		Start:  start, End: end,
	}}
}

// UnterminatedStringError reports EOF reached inside a string literal.
type UnterminatedStringError struct{ *Diagnostic }

// NewUnterminatedStringError builds one for a string opened at start.
func NewUnterminatedStringError(start, end token.Position) *UnterminatedStringError {
	return &UnterminatedStringError{&Diagnostic{
		Name:   "UnterminatedStringError",
		Detail: "string literal is not closed before end of file",
		Start:  start, End: end,
	}}
}

// ExpectedCharError reports a mandatory character missing after another.
type ExpectedCharError struct{ *Diagnostic }

// NewExpectedCharError builds one for "expected `after` after `before`".
func NewExpectedCharError(expected, after rune, start, end token.Position) *ExpectedCharError {
	return &ExpectedCharError{&Diagnostic{
		Name:   "ExpectedCharError",
		Detail: fmt.Sprintf("expected %q after %q", expected, after),
		Start:  start, End: end,
	}}
}

// SyntaxError reports a grammar violation found by the parser.
type SyntaxError struct{ *Diagnostic }

// NewSyntaxError builds a SyntaxError with a human-readable cue.
func NewSyntaxError(detail string, start, end token.Position) *SyntaxError {
	return &SyntaxError{&Diagnostic{
		Name: "InvalidSyntaxError", Detail: detail, Start: start, End: end,
	}}
}

// RuntimeError reports a failure during evaluation: type mismatch,
// divide-by-zero, out-of-range index, arity mismatch, undefined name, or a
// failed built-in. It carries a traceback through the Context chain active
// when it was raised.
type RuntimeError struct {
	*Diagnostic
	Trace StackTrace
}

// NewRuntimeError builds a RuntimeError with detail, the offending span,
// and the StackTrace captured from the active Context at the error site.
func NewRuntimeError(detail string, start, end token.Position, trace StackTrace) *RuntimeError {
	return &RuntimeError{
		Diagnostic: &Diagnostic{Name: "RuntimeError", Detail: detail, Start: start, End: end},
		Trace:      trace,
	}
}

func (e *RuntimeError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Trace.String())
	fmt.Fprintf(&sb, "File %s, line %d\n", fileOrStdin(e.Start.File), e.Start.Line+1)
	sb.WriteString(FormatSnippet(e.Start.Text, e.Start, e.End))
	fmt.Fprintf(&sb, "%s: %s\n", e.Name, e.Detail)
	return sb.String()
}
