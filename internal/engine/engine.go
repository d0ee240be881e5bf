// Package engine implements the response engine described in spec §4.7:
// the keyword-stack scheduler that drives one conversational turn, plus
// the per-keyword rule application from §4.6 (in rule.go).
package engine

import (
	"strings"

	"github.com/cwbudde/eliza/internal/ast"
	"github.com/cwbudde/eliza/internal/hollerith"
	"github.com/cwbudde/eliza/internal/matcher"
	"github.com/cwbudde/eliza/internal/tracer"
)

// hollerithPunctuation is the set of single characters §4.7 says a
// delimiter may be drawn from in order to also split tokens; it is the
// alphabet's non-alphanumeric, non-space members.
const hollerithPunctuation = `='+.)-$*/,(`

// Engine holds one conversation's mutable state: the LIMIT counter, the
// rule set's reassembly cursors and MEMORY queue (both inside script), and
// the installed tracer. Concurrent turns on one Engine are not supported
// (spec §5); callers wanting isolation construct separate Engines.
type Engine struct {
	script *ast.Script
	tracer tracer.Tracer

	delimiters         []string
	useNomatchMsgs     bool
	newkeyFailUsesNone bool

	limit int
}

// New constructs an Engine over script with defaults: delimiters
// {",", ".", "BUT"}, nomatch messages on, NEWKEY-fail-uses-NONE on, and a
// no-op tracer. limit starts at 1, matching spec §8's testable property
// that the first turn's advanced limit is 2.
func New(script *ast.Script, opts ...Option) *Engine {
	e := &Engine{
		script:             script,
		tracer:             tracer.Null{},
		delimiters:         append([]string(nil), defaultDelimiters...),
		useNomatchMsgs:     true,
		newkeyFailUsesNone: true,
		limit:              1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetTracer swaps the installed tracer mid-conversation.
func (e *Engine) SetTracer(t tracer.Tracer) {
	if t != nil {
		e.tracer = t
	}
}

// Greeting returns the script's opening remarks, space-joined.
func (e *Engine) Greeting() string {
	return strings.Join(e.script.OpeningRemarks, " ")
}

// LastTrace returns the events recorded by the installed tracer if it is a
// *tracer.Recording, or nil otherwise.
func (e *Engine) LastTrace() []tracer.Event {
	if r, ok := e.tracer.(*tracer.Recording); ok {
		return r.Events()
	}
	return nil
}

// Respond runs one turn of spec §4.7's procedure over input and returns the
// response sentence.
func (e *Engine) Respond(input string) string {
	if r, ok := e.tracer.(*tracer.Recording); ok {
		r.Reset()
	}

	filtered := hollerith.Filter(input)
	tokens := e.tokenize(filtered)
	e.tracer.ResponseStart(tokens)

	e.limit = (e.limit % 4) + 1
	e.tracer.LimitUpdate(e.limit)

	stack, words := e.scan(tokens)
	e.tracer.KeywordStackFinal(stack)

	if len(stack) == 0 {
		if e.limit == 4 {
			if text, ok := e.script.Memory.Dequeue(); ok {
				e.tracer.MemoryRecalled(text)
				e.tracer.MemoryQueueSnapshot(e.script.Memory.Memories)
				return text
			}
		}
		return e.applyNone(words)
	}
	return e.drain(stack, words)
}

// tokenize implements spec §4.7 step 1: maximal runs of non-space,
// non-punctuation characters become words; each configured single-char
// punctuation delimiter becomes its own token; whitespace is discarded.
func (e *Engine) tokenize(s string) []string {
	splitChars := e.tokenSplitChars()

	var tokens []string
	var word strings.Builder
	flush := func() {
		if word.Len() > 0 {
			tokens = append(tokens, word.String())
			word.Reset()
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ':
			flush()
		case splitChars[c]:
			flush()
			tokens = append(tokens, string(c))
		default:
			word.WriteByte(c)
		}
	}
	flush()
	return tokens
}

// tokenSplitChars is the subset of e.delimiters that are single characters
// drawn from the Hollerith punctuation set (spec §4.7's configuration
// note); multi-character delimiters like "BUT" are matched at the word
// level in scan instead.
func (e *Engine) tokenSplitChars() [256]bool {
	var set [256]bool
	for _, d := range e.delimiters {
		if len(d) == 1 && strings.IndexByte(hollerithPunctuation, d[0]) >= 0 {
			set[d[0]] = true
		}
	}
	return set
}

func (e *Engine) isDelimiter(token string) bool {
	for _, d := range e.delimiters {
		if token == d {
			return true
		}
	}
	return false
}

// scan implements spec §4.7 step 3: the left-to-right keyword-stack scan
// with delimiter-bounded subclause discarding and word substitution. It
// returns the ordered keyword stack (front = highest priority) and the
// (possibly substituted, possibly clause-trimmed) word list decompositions
// will run against.
func (e *Engine) scan(tokens []string) (stack []string, words []string) {
	topPrecedence := -1

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		if e.isDelimiter(token) {
			if len(stack) == 0 {
				if len(words) > 0 {
					e.tracer.SubclauseDiscard(strings.Join(words, " "))
				}
				words = nil
				continue
			}
			if rest := tokens[i+1:]; len(rest) > 0 {
				e.tracer.SubclauseDiscard(strings.Join(rest, " "))
			}
			break
		}

		word := token
		if rule, ok := e.script.Keywords[token]; ok {
			if rule.HasTransform() && rule.Precedence > topPrecedence {
				stack = append([]string{token}, stack...)
				topPrecedence = rule.Precedence
			} else {
				stack = append(stack, token)
			}
			if rule.Substitution != "" {
				e.tracer.WordSubstitution(word, rule.Substitution)
				word = rule.Substitution
			}
		} else {
			e.tracer.UnknownKeyword(token)
		}
		words = append(words, word)
	}

	return stack, words
}

// drain implements spec §4.7 step 4: pop the keyword stack front-to-back,
// attempting MEMORY creation before applying each rule, and dispatching on
// the rule's action.
func (e *Engine) drain(stack []string, words []string) string {
	for len(stack) > 0 {
		top := stack[0]
		stack = stack[1:]

		rule, ok := e.script.Keywords[top]
		if !ok {
			e.tracer.UnknownKeyword(top)
			return e.fail(words)
		}

		if e.script.Memory != nil && top == e.script.Memory.Keyword {
			e.tryCreateMemory(words)
		}

		result := applyKeyword(e.tracer, rule, e.script.Tags, words)
		switch result.Action {
		case Complete:
			return strings.Join(result.Words, " ")

		case Inapplicable:
			return e.fail(words)

		case Newkey:
			if len(stack) == 0 {
				e.tracer.NewkeyFailed(top)
				if e.newkeyFailUsesNone {
					return e.applyNone(words)
				}
				return e.nomatchMessage()
			}

		case Linkkey:
			if result.Words != nil {
				words = result.Words
			}
			stack = append([]string{result.Link}, stack...)
		}
	}

	return e.applyNone(words)
}

// fail is the shared "rule was inapplicable" fallback: the built-in
// nomatch cycle when configured, else NONE.
func (e *Engine) fail(words []string) string {
	if e.useNomatchMsgs {
		return e.nomatchMessage()
	}
	return e.applyNone(words)
}

func (e *Engine) nomatchMessage() string {
	return nomatchMessages[e.limit-1]
}

// applyNone implements spec §4.7 step 5.
func (e *Engine) applyNone(words []string) string {
	e.tracer.NoneUsed()
	result := applyKeyword(e.tracer, e.script.None(), e.script.Tags, words)
	return strings.Join(result.Words, " ")
}

// tryCreateMemory implements spec §4.7's MEMORY-creation step: hash the
// last word of the current sentence to pick one of the MEMORY rule's four
// transformations, and if its decomposition matches, enqueue the
// reassembled sentence.
func (e *Engine) tryCreateMemory(words []string) {
	if len(words) == 0 {
		return
	}
	lastWord := words[len(words)-1]
	idx := hollerith.Hash(hollerith.LastChunkAsBCD(lastWord), 2)

	t := e.script.Memory.Transforms[idx]
	constituents, ok := matcher.Match(e.script.Tags, t.Pattern, words)
	if !ok {
		return
	}

	text := strings.Join(reassembleWords(t.Reassemblies[0], constituents), " ")
	e.script.Memory.Enqueue(text)
	e.tracer.MemoryCreated(text)
	e.tracer.MemoryQueueSnapshot(e.script.Memory.Memories)
}
