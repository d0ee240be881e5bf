package engine

import (
	"strings"

	"github.com/cwbudde/eliza/internal/ast"
	"github.com/cwbudde/eliza/internal/matcher"
	"github.com/cwbudde/eliza/internal/tracer"
)

// Action is the outcome of applying a single keyword rule, per spec §4.6.
type Action int

const (
	// Complete: a decomposition matched and reassembly produced the turn's
	// response words.
	Complete Action = iota
	// Inapplicable: no decomposition matched and the rule has no link.
	Inapplicable
	// Newkey: a decomposition matched but its reassembly is the bare
	// NEWKEY sentinel; the caller should try the next keyword on the stack.
	Newkey
	// Linkkey: follow Result.Link, either because no decomposition matched
	// but the rule carries a link_keyword, or because the chosen
	// reassembly was a reference or PRE form.
	Linkkey
)

// Result is what applyKeyword returns: the action taken, the new response
// words (Complete, or Linkkey via a PRE form), and the link target
// (Linkkey only).
type Result struct {
	Action Action
	Words  []string
	Link   string
}

// applyKeyword implements spec §4.6: try rule's transformations in
// declaration order until one's decomposition pattern matches words; apply
// its (round-robin) reassembly; or, failing all of them, fall back to the
// rule's bare link_keyword if it has one.
func applyKeyword(tr tracer.Tracer, rule *ast.KeywordRule, tags map[string][]string, words []string) Result {
	for i, t := range rule.Transforms {
		constituents, ok := matcher.Match(tags, t.Pattern, words)
		if !ok {
			tr.DecompositionFailed(rule.Keyword, i)
			continue
		}

		reassemblyIndex := t.Next
		reassembly := t.NextReassembly()

		switch {
		case isBareNewkey(reassembly):
			return Result{Action: Newkey}

		case isBareReference(reassembly):
			tr.TransformApplied(rule.Keyword, i, reassemblyIndex)
			return Result{Action: Linkkey, Link: reassembly[0].Key}

		case isBarePre(reassembly):
			pre := reassembly[0]
			preWords := reassembleWords(pre.Template, constituents)
			tr.PreTransform(strings.Join(preWords, " "), pre.Key)
			tr.TransformApplied(rule.Keyword, i, reassemblyIndex)
			return Result{Action: Linkkey, Words: preWords, Link: pre.Key}

		default:
			newWords := reassembleWords(reassembly, constituents)
			tr.TransformApplied(rule.Keyword, i, reassemblyIndex)
			return Result{Action: Complete, Words: newWords}
		}
	}

	if rule.LinkKeyword != "" {
		return Result{Action: Linkkey, Link: rule.LinkKeyword}
	}
	return Result{Action: Inapplicable}
}

func isBareNewkey(r ast.Reassembly) bool {
	return len(r) == 1 && r[0].Kind == ast.Newkey
}

func isBareReference(r ast.Reassembly) bool {
	return len(r) == 1 && r[0].Kind == ast.Reference
}

func isBarePre(r ast.Reassembly) bool {
	return len(r) == 1 && r[0].Kind == ast.Pre
}

// reassembleWords implements spec §4.5: expand a reassembly rule against a
// match's constituents into the turn's response words.
func reassembleWords(r ast.Reassembly, constituents []string) []string {
	var words []string
	for _, e := range r {
		switch e.Kind {
		case ast.Word:
			words = append(words, e.Word)
		case ast.Constituent:
			if e.N <= 0 || e.N > len(constituents) {
				words = append(words, "THINGY")
				continue
			}
			words = append(words, strings.Fields(constituents[e.N-1])...)
		case ast.Newkey:
			// Only meaningful as a bare, single-element reassembly; the
			// caller handles that case before reaching here. The parser
			// also accepts NEWKEY mixed into a larger rule; there it is
			// emitted literally rather than dropped.
			words = append(words, "NEWKEY")
		}
	}
	return words
}
