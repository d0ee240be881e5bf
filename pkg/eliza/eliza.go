// Package eliza is the public API surface: load a script, build an
// Engine over it, and run conversational turns. Everything under
// internal/ is implementation detail; this package is the engine API for
// callers outside the module (spec.md §6's external interface), next to
// the token vocabulary in pkg/token.
package eliza

import (
	"io"
	"os"

	"github.com/cwbudde/eliza/internal/ast"
	"github.com/cwbudde/eliza/internal/config"
	"github.com/cwbudde/eliza/internal/engine"
	"github.com/cwbudde/eliza/internal/parser"
	"github.com/cwbudde/eliza/internal/tracer"
)

// Script is a parsed, ready-to-run rule set.
type Script struct {
	ast *ast.Script
}

// LoadScript parses script source text into a Script.
func LoadScript(source string) (*Script, error) {
	s, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}
	return &Script{ast: s}, nil
}

// LoadScriptFile reads and parses a script file.
func LoadScriptFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadScript(string(data))
}

// Keywords returns the script's keyword list in declaration order,
// excluding the reserved NONE entry.
func (s *Script) Keywords() []string {
	var out []string
	for _, kw := range s.ast.KeywordOrder {
		if kw == ast.NoneKey {
			continue
		}
		out = append(out, kw)
	}
	return out
}

// Print renders the script back to canonical script text.
func (s *Script) Print() string {
	return parser.Print(s.ast)
}

// Source returns the original text the script was parsed from.
func (s *Script) Source() string {
	return s.ast.Source
}

// PrintRule renders a single keyword's transformations in canonical script
// form, for the CLI's "*key WORD" meta-command. It reports false if the
// script has no rule under that keyword.
func (s *Script) PrintRule(keyword string) (string, bool) {
	return parser.PrintKeyword(s.ast, keyword)
}

// Engine runs conversational turns over a Script (spec.md §6).
type Engine struct {
	e *engine.Engine
}

// Option configures an Engine at construction time.
type Option = engine.Option

// WithDelimiters overrides the default {",", ".", "BUT"} delimiter set.
func WithDelimiters(delimiters []string) Option { return engine.WithDelimiters(delimiters) }

// WithNomatchMessages toggles the built-in four-message nomatch cycle.
func WithNomatchMessages(use bool) Option { return engine.WithNomatchMessages(use) }

// WithNewkeyFailUsesNone controls the fallback when a NEWKEY reassembly
// runs out of stack.
func WithNewkeyFailUsesNone(use bool) Option { return engine.WithNewkeyFailUsesNone(use) }

// WithTracer installs a trace observer.
func WithTracer(t Tracer) Option { return engine.WithTracer(t) }

// WithConfig applies every option held in a decoded YAML EngineConfig.
func WithConfig(cfg *config.EngineConfig) []Option { return cfg.Options() }

// NewEngine constructs an Engine over script.
func NewEngine(script *Script, opts ...Option) *Engine {
	return &Engine{e: engine.New(script.ast, opts...)}
}

// Respond runs one conversational turn and returns ELIZA's response.
func (e *Engine) Respond(input string) string { return e.e.Respond(input) }

// Greeting returns the script's opening remarks.
func (e *Engine) Greeting() string { return e.e.Greeting() }

// SetTracer swaps the installed tracer mid-conversation.
func (e *Engine) SetTracer(t Tracer) { e.e.SetTracer(t) }

// LastTrace returns the events recorded by the installed tracer, if it is
// a recording tracer; nil otherwise.
func (e *Engine) LastTrace() []Event { return e.e.LastTrace() }

// Tracer observes engine internals during a turn (spec §4.8).
type Tracer = tracer.Tracer

// Event is one recorded trace callback.
type Event = tracer.Event

// NullTracer discards every event.
func NullTracer() Tracer { return tracer.Null{} }

// NewLoggingTracer writes one human-readable line per event to w.
func NewLoggingTracer(w io.Writer) Tracer { return tracer.NewLogging(w) }

// NewJSONTracer writes one NDJSON line per event to w.
func NewJSONTracer(w io.Writer) Tracer { return tracer.NewJSON(w) }

// NewRecordingTracer wraps inner, recording every event it forwards. A
// nil inner defaults to a tracer that discards events after recording
// them.
func NewRecordingTracer(inner Tracer) *tracer.Recording {
	return tracer.NewRecording(inner)
}
