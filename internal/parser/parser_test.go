package parser

import (
	"strings"
	"testing"
)

func TestParseErrorScenarios(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"empty input", "", "Script error on line 1: expected '('"},
		{"no NONE rule", "()", "Script error: no NONE rule specified; see Jan 1966 CACM page 41"},
		{"unterminated pattern", "()\n(NONE\n((", "Script error on line 3: expected ')'"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(c.src)
			if err == nil {
				t.Fatalf("Parse(%q): expected an error, got nil", c.src)
			}
			if got := err.Error(); got != c.want {
				t.Errorf("Parse(%q).Error() = %q, want %q", c.src, got, c.want)
			}
		})
	}
}

const doctorFragment = `
(HOW DO YOU DO. PLEASE STATE YOUR PROBLEM)
(SORRY
    ((0)
        (PLEASE DON'T APOLOGIZE)
        (APOLOGIES ARE NOT NECESSARY)
    )
)
(MY = YOUR)
(ALIKE 10 DLIST(/ BELIEF)
    ((0 ALIKE 0)
        (IN WHAT WAY)
        (= DIT)
    )
)
(DIT
    ((0)
        (PLEASE GO ON)
    )
)
(NONE
    ((0)
        (I AM NOT SURE I UNDERSTAND YOU FULLY)
    )
)
(MEMORY SORRY
    (0 = THAT'S QUITE ALL RIGHT)
    (0 = THAT'S QUITE ALL RIGHT)
    (0 = THAT'S QUITE ALL RIGHT)
    (0 = THAT'S QUITE ALL RIGHT)
)
`

func TestParseThenPrintRoundTrips(t *testing.T) {
	script, err := Parse(doctorFragment)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	printed := Print(script)
	reparsed, err := Parse(printed)
	if err != nil {
		t.Fatalf("Parse(Print(script)): %v\n---\n%s", err, printed)
	}

	if len(reparsed.KeywordOrder) != len(script.KeywordOrder) {
		t.Fatalf("keyword count changed: %d vs %d", len(reparsed.KeywordOrder), len(script.KeywordOrder))
	}
	for i, kw := range script.KeywordOrder {
		if reparsed.KeywordOrder[i] != kw {
			t.Errorf("keyword order[%d] = %q, want %q", i, reparsed.KeywordOrder[i], kw)
		}
	}

	mother := reparsed.Keywords["ALIKE"]
	if mother == nil {
		t.Fatal("ALIKE rule missing after round trip")
	}
	if got, want := mother.Precedence, 10; got != want {
		t.Errorf("ALIKE precedence = %d, want %d", got, want)
	}
	if len(mother.Tags) != 1 || mother.Tags[0] != "BELIEF" {
		t.Errorf("ALIKE tags = %v, want [BELIEF]", mother.Tags)
	}
}

func TestParseRejectsDuplicateKeyword(t *testing.T) {
	src := `
(HI)
(SORRY ((0) (A)))
(SORRY ((0) (B)))
(NONE ((0) (C)))
(MEMORY SORRY (0 = X) (0 = X) (0 = X) (0 = X))
`
	if _, err := Parse(src); err == nil {
		t.Fatal("Parse: expected an error for a duplicate keyword")
	}
}

func TestPrintKeyword(t *testing.T) {
	script, err := Parse(doctorFragment)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	rule, ok := PrintKeyword(script, "ALIKE")
	if !ok {
		t.Fatal("PrintKeyword(ALIKE): expected a rule, got none")
	}
	if !strings.HasPrefix(rule, "(ALIKE") {
		t.Errorf("PrintKeyword(ALIKE) = %q, want prefix %q", rule, "(ALIKE")
	}

	if _, ok := PrintKeyword(script, "NOTAKEYWORD"); ok {
		t.Error("PrintKeyword(NOTAKEYWORD): expected no rule, got one")
	}
}

func TestParseRejectsUnknownMemoryKeyword(t *testing.T) {
	src := `
(HI)
(SORRY ((0) (A)))
(NONE ((0) (C)))
(MEMORY NOTAKEYWORD (0 = X) (0 = X) (0 = X) (0 = X))
`
	if _, err := Parse(src); err == nil {
		t.Fatal("Parse: expected an error for an undeclared MEMORY keyword")
	}
}
