package engine

import "github.com/cwbudde/eliza/internal/tracer"

// defaultDelimiters is spec §4.7's initial delimiter set.
var defaultDelimiters = []string{",", ".", "BUT"}

// nomatchMessages is the fixed four-message cycle spec §4.7 names, indexed
// by limit-1.
var nomatchMessages = []string{
	"PLEASE CONTINUE",
	"HMMM",
	"GO ON , PLEASE",
	"I SEE",
}

// Option configures an Engine at construction time, following the
// teacher's LexerOption/ParserOption functional-options pattern
// (go-dws internal/lexer.LexerOption).
type Option func(*Engine)

// WithDelimiters overrides the default {",", ".", "BUT"} delimiter set.
func WithDelimiters(delimiters []string) Option {
	return func(e *Engine) {
		e.delimiters = append([]string(nil), delimiters...)
	}
}

// WithNomatchMessages toggles whether a turn whose rule is inapplicable
// falls back to the built-in four-message cycle (true, the default) or
// falls through to the NONE rule (false). A NEWKEY that runs out of stack
// is governed by WithNewkeyFailUsesNone instead.
func WithNomatchMessages(use bool) Option {
	return func(e *Engine) { e.useNomatchMsgs = use }
}

// WithNewkeyFailUsesNone controls what happens when a NEWKEY reassembly is
// reached with no further keyword on the stack: fall through to NONE
// (true, the default) or return a built-in nomatch message (false).
func WithNewkeyFailUsesNone(use bool) Option {
	return func(e *Engine) { e.newkeyFailUsesNone = use }
}

// WithTracer installs a trace observer. The default is tracer.Null{}.
func WithTracer(t tracer.Tracer) Option {
	return func(e *Engine) {
		if t != nil {
			e.tracer = t
		}
	}
}
