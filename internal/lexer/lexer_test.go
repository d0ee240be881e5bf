package lexer

import (
	"testing"

	"github.com/cwbudde/eliza/pkg/token"
)

func TestNext(t *testing.T) {
	input := `(MY = YOUR 5)
; a comment
(NONE)`

	tests := []struct {
		wantType    token.Type
		wantLiteral string
		wantLine    int
	}{
		{token.OPEN, "(", 1},
		{token.SYMBOL, "MY", 1},
		{token.EQUALS, "=", 1},
		{token.SYMBOL, "YOUR", 1},
		{token.NUMBER, "5", 1},
		{token.CLOSE, ")", 1},
		{token.OPEN, "(", 3},
		{token.SYMBOL, "NONE", 3},
		{token.CLOSE, ")", 3},
		{token.EOF, "", 3},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.Next()
		if tok.Type != tt.wantType {
			t.Fatalf("tests[%d]: type = %s, want %s (literal=%q)", i, tok.Type, tt.wantType, tok.Literal)
		}
		if tok.Literal != tt.wantLiteral {
			t.Fatalf("tests[%d]: literal = %q, want %q", i, tok.Literal, tt.wantLiteral)
		}
		if tok.Pos.Line != tt.wantLine {
			t.Fatalf("tests[%d]: line = %d, want %d", i, tok.Pos.Line, tt.wantLine)
		}
	}
}

func TestPeekDoesNotAdvanceTwice(t *testing.T) {
	l := New("(HI)")

	first := l.Peek()
	second := l.Peek()
	if first != second {
		t.Fatalf("Peek() not idempotent: %v != %v", first, second)
	}

	consumed := l.Next()
	if consumed != first {
		t.Fatalf("Next() after Peek() = %v, want %v", consumed, first)
	}

	next := l.Next()
	if next.Type != token.SYMBOL || next.Literal != "HI" {
		t.Fatalf("Next() after peeked OPEN = %v, want SYMBOL(HI)", next)
	}
}

func TestSymbolRunsAdjacentToDelimiters(t *testing.T) {
	l := New("(*BELIEF FEEL)")

	tests := []string{"(", "*BELIEF", "FEEL", ")"}
	for i, want := range tests {
		tok := l.Next()
		if tok.Literal != want {
			t.Fatalf("tests[%d]: literal = %q, want %q", i, tok.Literal, want)
		}
	}
}

func TestCommentRunsToEndOfLine(t *testing.T) {
	l := New("(HI) ; trailing remark\n(BYE)")

	var got []string
	for {
		tok := l.Next()
		if tok.Type == token.EOF {
			break
		}
		got = append(got, tok.Literal)
	}

	want := []string{"(", "HI", ")", "(", "BYE", ")"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
