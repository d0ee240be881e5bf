// Package lexer tokenises an ELIZA script: the parenthesised S-expression
// notation described in spec §4.2. The scanning idiom (readChar/peekChar
// over a byte cursor, a buffered Peek, explicit line tracking) follows the
// teacher's internal/lexer, scaled down to this grammar's five token kinds.
package lexer

import (
	"github.com/cwbudde/eliza/pkg/token"
)

// delimiterBytes are the characters that always end a SYMBOL run and are
// never themselves part of one, besides whitespace.
const delimiterBytes = "();="

// Lexer scans a script's byte stream into a peekable token stream.
type Lexer struct {
	input   string
	pos     int
	readPos int
	ch      byte
	line    int
	peeked  *token.Token
}

// New creates a Lexer over the given script source.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isDelimiter(ch byte) bool {
	return ch == 0 || isSpace(ch) || ch == ';' || indexByte(delimiterBytes, ch) >= 0
}

func indexByte(s string, ch byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == ch {
			return i
		}
	}
	return -1
}

// skipIgnored advances past whitespace and `;`-to-end-of-line comments,
// tracking line numbers as it goes.
func (l *Lexer) skipIgnored() {
	for {
		switch {
		case l.ch == '\n':
			l.line++
			l.readChar()
		case isSpace(l.ch):
			l.readChar()
		case l.ch == ';':
			for l.ch != '\n' && l.ch != 0 {
				l.readChar()
			}
		default:
			return
		}
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Next consumes and returns the next token.
func (l *Lexer) Next() token.Token {
	if l.peeked != nil {
		t := *l.peeked
		l.peeked = nil
		return t
	}
	return l.scan()
}

// Peek returns the next token without consuming it. Calling Peek
// repeatedly, or calling Peek then Next, never advances the line counter
// twice for the same token.
func (l *Lexer) Peek() token.Token {
	if l.peeked == nil {
		t := l.scan()
		l.peeked = &t
	}
	return *l.peeked
}

func (l *Lexer) scan() token.Token {
	l.skipIgnored()

	pos := token.Position{Line: l.line}

	if l.ch == 0 {
		return token.Token{Type: token.EOF, Pos: pos}
	}

	switch l.ch {
	case '(':
		l.readChar()
		return token.Token{Type: token.OPEN, Literal: "(", Pos: pos}
	case ')':
		l.readChar()
		return token.Token{Type: token.CLOSE, Literal: ")", Pos: pos}
	case '=':
		l.readChar()
		return token.Token{Type: token.EQUALS, Literal: "=", Pos: pos}
	}

	start := l.pos
	for !isDelimiter(l.ch) {
		l.readChar()
	}
	lit := l.input[start:l.pos]

	if lit == "" {
		// A stray delimiter byte that isn't one of '(' ')' '=' and isn't
		// whitespace or a comment start cannot occur given isDelimiter's
		// definition, but guard against an infinite loop regardless.
		l.readChar()
		return token.Token{Type: token.ILLEGAL, Literal: string(rune(l.ch)), Pos: pos}
	}

	typ := token.SYMBOL
	if isAllDigits(lit) {
		typ = token.NUMBER
	}
	return token.Token{Type: typ, Literal: lit, Pos: pos}
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return len(s) > 0
}
