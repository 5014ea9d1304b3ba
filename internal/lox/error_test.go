package lox

import (
	"errors"
	"testing"
)

func TestErrorUnwrap(t *testing.T) {
	origErr := errors.New("original error")
	e := &Error{
		Sender:    SenderEvaluator,
		OrigError: origErr,
	}

	if unwrapped := e.Unwrap(); unwrapped != origErr {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, origErr)
	}

	if !errors.Is(e, origErr) {
		t.Error("errors.Is should return true for the original error")
	}
}

func TestErrorReport(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "scanner error",
			err:  newScannerError(3, "Unexpected character: %s", "@"),
			want: "[line 3] Error: Unexpected character: @",
		},
		{
			name: "parser error at token",
			err:  newParserError(Token{Kind: Plus, Lexeme: "+", Line: 2}, "Expect ')' after expression"),
			want: "2 at '+' Expect ')' after expression",
		},
		{
			name: "parser error at end",
			err:  newParserError(Token{Kind: EOF, Lexeme: "", Line: 5}, "Unknown Error"),
			want: "5 at end. Unknown Error",
		},
		{
			name: "evaluator error",
			err:  newEvaluatorError(Token{Kind: Minus, Lexeme: "-", Line: 1}, "'%s': Operand must be a number", "-"),
			want: "1 at '-' '-': Operand must be a number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Report(); got != tt.want {
				t.Errorf("Report() = %q, want %q", got, tt.want)
			}
		})
	}
}
