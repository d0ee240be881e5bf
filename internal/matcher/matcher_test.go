package matcher

import (
	"reflect"
	"strings"
	"testing"

	"github.com/cwbudde/eliza/internal/ast"
)

func pat(elems ...ast.PatternElem) ast.Pattern { return ast.Pattern(elems) }

func lit(w string) ast.PatternElem      { return ast.PatternElem{Kind: ast.Literal, Word: w} }
func fixed(n int) ast.PatternElem       { return ast.PatternElem{Kind: ast.Fixed, N: n} }
func free() ast.PatternElem             { return ast.PatternElem{Kind: ast.Free} }
func syn(ws ...string) ast.PatternElem  { return ast.PatternElem{Kind: ast.Synonym, Words: ws} }

func words(s string) []string { return strings.Fields(s) }

// TestMatchCanonicalVectors checks the five worked examples from spec §4.4.
func TestMatchCanonicalVectors(t *testing.T) {
	cases := []struct {
		name    string
		pattern ast.Pattern
		input   string
		want    []string
	}{
		{
			name:    "you want/need",
			pattern: pat(free(), lit("YOU"), syn("WANT", "NEED"), free()),
			input:   "YOU NEED NICE FOOD",
			want:    []string{"", "YOU", "NEED", "NICE FOOD"},
		},
		{
			name:    "your father/mother",
			pattern: pat(free(), lit("YOUR"), free(), syn("FATHER", "MOTHER"), free()),
			input:   "CONSIDER YOUR AGED MOTHER AND FATHER TOO",
			want:    []string{"CONSIDER", "YOUR", "AGED", "MOTHER", "AND FATHER TOO"},
		},
		{
			name:    "two adjacent synonym groups",
			pattern: pat(free(), syn("FATHER", "MOTHER"), syn("FATHER", "MOTHER"), free()),
			input:   "MOTHER AND FATHER MOTHER",
			want:    []string{"MOTHER AND", "FATHER", "MOTHER", ""},
		},
		{
			name:    "fixed counts",
			pattern: pat(lit("MARY"), fixed(2), fixed(2), lit("ITS"), fixed(1), free()),
			input:   "MARY HAD A LITTLE LAMB ITS PROBABILITY WAS ZERO",
			want:    []string{"MARY", "HAD A", "LITTLE LAMB", "ITS", "PROBABILITY", "WAS ZERO"},
		},
		{
			name:    "backtracking free wildcard before trailing literal",
			pattern: pat(free(), lit("A"), free(), lit("A")),
			input:   "X X A X X A X X A",
			want:    []string{"X X", "A", "X X A X X", "A"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Match(nil, tc.pattern, words(tc.input))
			if !ok {
				t.Fatalf("Match() returned no match, want %v", tc.want)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Match() = %#v, want %#v", got, tc.want)
			}
		})
	}
}

func TestMatchFailsOnUnmatchedWords(t *testing.T) {
	p := pat(lit("HELLO"))
	if _, ok := Match(nil, p, words("HELLO THERE")); ok {
		t.Fatalf("expected match to fail: trailing word is not consumed")
	}
}

func TestMatchTagGroup(t *testing.T) {
	tags := map[string][]string{"FAMILY": {"MOTHER", "FATHER"}}
	p := pat(free(), ast.PatternElem{Kind: ast.Tag, Words: []string{"FAMILY"}}, free())
	got, ok := Match(tags, p, words("MY FATHER IS TALL"))
	if !ok {
		t.Fatalf("expected tag group to match FATHER")
	}
	want := []string{"MY", "FATHER", "IS TALL"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Match() = %#v, want %#v", got, want)
	}
}
