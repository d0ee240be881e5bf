// Package matcher implements the segmented decomposition matcher described
// in spec §4.4. It matches a decomposition pattern (literals, fixed-count
// wildcards, free wildcards, synonym groups, and tag groups) against a
// sentence, returning the text each pattern element consumed.
//
// The matcher is a plain recursive backtracker, not the "SLIP list" it is
// modeled after: SLIP's segmented lists let the 1966 FORTRAN implementation
// splice and re-walk sublists in place, but a Go slice with an index pair
// gives the same segment-by-segment walk without the pointer plumbing. The
// free-wildcard case tries the smallest consumption first and only grows it
// when the remainder of the pattern fails to match, which reproduces SLIP's
// minimum-consumption behavior exactly.
package matcher

import (
	"strings"

	"github.com/cwbudde/eliza/internal/ast"
)

// Match attempts to decompose words according to pattern. tags maps a tag
// name (as named in a "(/NAME...)" group) to the set of words carrying that
// tag, as built by ast.Script.BuildTagIndex.
//
// On success it returns one string per pattern element: the (possibly
// empty, possibly multi-word) span of words that element consumed, in
// pattern order. Reassembly constituent references are 1-based indices into
// this slice.
func Match(tags map[string][]string, pattern ast.Pattern, words []string) ([]string, bool) {
	result := make([]string, len(pattern))
	if match(tags, pattern, 0, words, 0, result) {
		return result, true
	}
	return nil, false
}

func match(tags map[string][]string, pattern ast.Pattern, pi int, words []string, wi int, result []string) bool {
	if pi == len(pattern) {
		return wi == len(words)
	}

	elem := pattern[pi]
	switch elem.Kind {
	case ast.Literal, ast.Synonym, ast.Tag:
		if wi >= len(words) || !matchesWord(tags, elem, words[wi]) {
			return false
		}
		if !match(tags, pattern, pi+1, words, wi+1, result) {
			return false
		}
		result[pi] = words[wi]
		return true

	case ast.Fixed:
		if wi+elem.N > len(words) {
			return false
		}
		if !match(tags, pattern, pi+1, words, wi+elem.N, result) {
			return false
		}
		result[pi] = strings.Join(words[wi:wi+elem.N], " ")
		return true

	case ast.Free:
		for n := 0; wi+n <= len(words); n++ {
			if match(tags, pattern, pi+1, words, wi+n, result) {
				result[pi] = strings.Join(words[wi:wi+n], " ")
				return true
			}
		}
		return false

	default:
		return false
	}
}

func matchesWord(tags map[string][]string, elem ast.PatternElem, word string) bool {
	switch elem.Kind {
	case ast.Literal:
		return elem.Word == word
	case ast.Synonym:
		return contains(elem.Words, word)
	case ast.Tag:
		for _, tag := range elem.Words {
			if contains(tags[tag], word) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

func contains(words []string, word string) bool {
	for _, w := range words {
		if w == word {
			return true
		}
	}
	return false
}
