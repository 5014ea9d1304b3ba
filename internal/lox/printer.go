package lox

import (
	"strconv"
	"strings"
)

// PrintToken renders a single token the way the `tokenize` sub-command does
// (spec §4.4): "KIND LEXEME LITERAL".
func PrintToken(tok Token) string {
	return tok.Kind.String() + " " + tok.Lexeme + " " + literalText(tok)
}

// literalText renders a token's literal payload for the tokenizer: the
// decoded string for STRING, the canonical "<int>.0"-or-shortest-decimal
// form for NUMBER, and the fixed text "null" for everything else.
func literalText(tok Token) string {
	switch tok.Kind {
	case String:
		return tok.Literal.(string)
	case Number:
		return FormatNumberLiteral(tok.Literal.(float64))
	default:
		return "null"
	}
}

// FormatNumberLiteral renders a NUMBER token's payload the way `tokenize`
// and `parse` do: integral values always carry a trailing ".0", matching
// the canonical rendering in spec §4.4 (deliberately asymmetric with
// Value.String, see spec §9).
func FormatNumberLiteral(n float64) string {
	s := strconv.FormatFloat(n, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		return s + ".0"
	}
	return s
}

// PrintExpr renders an expression tree as the parenthesized S-expression
// the `parse` sub-command prints (spec §6).
func PrintExpr(expr Expr) string {
	switch e := expr.(type) {
	case Literal:
		return printLiteral(e)
	case Grouping:
		return parenthesize("group", e.Inner)
	case Unary:
		return parenthesize(e.Operator.Lexeme, e.Operand)
	case Binary:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	default:
		panic("lox: unhandled Expr variant in PrintExpr")
	}
}

func printLiteral(lit Literal) string {
	switch lit.Value.Kind {
	case Number:
		return FormatNumberLiteral(lit.Value.Literal.(float64))
	case String:
		return lit.Value.Literal.(string)
	case True:
		return "true"
	case False:
		return "false"
	case Nil:
		return "nil"
	default:
		panic("lox: unhandled literal token kind in PrintExpr")
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteByte(' ')
		b.WriteString(PrintExpr(e))
	}
	b.WriteByte(')')
	return b.String()
}
