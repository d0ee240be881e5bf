package engine

import (
	"strings"
	"testing"

	"github.com/cwbudde/eliza/internal/ast"
	"github.com/cwbudde/eliza/internal/parser"
)

func mustParse(t *testing.T, src string) *ast.Script {
	t.Helper()
	s, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("parser.Parse: %v", err)
	}
	return s
}

const motherScript = `
(HOW DO YOU DO)
(MOTHER
    ((0 MOTHER 0)
        (TELL ME MORE ABOUT YOUR FAMILY)
    )
)
(NONE
    ((0)
        (PLEASE GO ON)
    )
)
(MEMORY MOTHER
    (0 MOTHER 0 = LETS DISCUSS YOUR MOTHER MORE)
    (0 MOTHER 0 = TELL ME MORE ABOUT YOUR MOTHER)
    (0 MOTHER 0 = WHO ELSE IN YOUR FAMILY)
    (0 MOTHER 0 = YOUR MOTHER)
)
`

func TestRespondDecompositionAndMemoryCreation(t *testing.T) {
	script := mustParse(t, motherScript)
	e := New(script)

	got := e.Respond("MY MOTHER IS NICE")
	want := "TELL ME MORE ABOUT YOUR FAMILY"
	if got != want {
		t.Fatalf("Respond() = %q, want %q", got, want)
	}
	if len(script.Memory.Memories) != 1 {
		t.Fatalf("expected one memory to be created, got %d", len(script.Memory.Memories))
	}
	// hash(last_chunk_as_bcd("NICE"), 2) == 2, selecting the third transform.
	if script.Memory.Memories[0] != "WHO ELSE IN YOUR FAMILY" {
		t.Errorf("memory = %q, want %q", script.Memory.Memories[0], "WHO ELSE IN YOUR FAMILY")
	}
}

func TestRespondDiscardsSubclauseBeforeDelimiterWhenStackEmpty(t *testing.T) {
	script := mustParse(t, motherScript)
	e := New(script)

	got := e.Respond("WELL, MOTHER IS NICE")
	want := "TELL ME MORE ABOUT YOUR FAMILY"
	if got != want {
		t.Fatalf("Respond() = %q, want %q", got, want)
	}
}

func TestRespondFallsThroughToNoneAndRecallsMemoryAtLimitFour(t *testing.T) {
	script := mustParse(t, motherScript)
	e := New(script)

	first := e.Respond("MY MOTHER IS NICE") // limit -> 2, creates a memory
	if first != "TELL ME MORE ABOUT YOUR FAMILY" {
		t.Fatalf("unexpected first response %q", first)
	}

	second := e.Respond("BANANA") // limit -> 3, no keyword, NONE
	if second != "PLEASE GO ON" {
		t.Fatalf("Respond() = %q, want PLEASE GO ON", second)
	}

	third := e.Respond("BANANA") // limit -> 4, stack empty, memory recalled
	if third != "WHO ELSE IN YOUR FAMILY" {
		t.Fatalf("Respond() = %q, want the recalled memory", third)
	}
	if len(script.Memory.Memories) != 0 {
		t.Fatalf("memory should have been dequeued on recall, got %v", script.Memory.Memories)
	}
}

const linkScript = `
(HI)
(ALIKE
    (= FAMILY)
)
(FAMILY
    ((0 FAMILY 0)
        (TELL ME MORE ABOUT YOUR FAMILY)
    )
)
(NONE
    ((0)
        (PLEASE GO ON)
    )
)
(MEMORY FAMILY
    (0 = IN WHAT WAY)
    (0 = IN WHAT WAY)
    (0 = IN WHAT WAY)
    (0 = IN WHAT WAY)
)
`

func TestRespondFollowsBareLinkKeyword(t *testing.T) {
	script := mustParse(t, linkScript)
	e := New(script)

	got := e.Respond("EVERYONE IS ALIKE FAMILY")
	want := "TELL ME MORE ABOUT YOUR FAMILY"
	if got != want {
		t.Fatalf("Respond() = %q, want %q", got, want)
	}
}

const newkeyScript = `
(HI)
(FIRST 10
    ((0 FIRST 0)
        (NEWKEY)
    )
)
(SECOND
    ((0 SECOND 0)
        (FOUND SECOND KEYWORD)
    )
)
(NONE
    ((0)
        (PLEASE GO ON)
    )
)
(MEMORY SECOND
    (0 = IN WHAT WAY)
    (0 = IN WHAT WAY)
    (0 = IN WHAT WAY)
    (0 = IN WHAT WAY)
)
`

func TestRespondNewkeyFallsThroughToNextStackEntry(t *testing.T) {
	script := mustParse(t, newkeyScript)
	e := New(script)

	got := e.Respond("FIRST AND SECOND")
	want := "FOUND SECOND KEYWORD"
	if got != want {
		t.Fatalf("Respond() = %q, want %q", got, want)
	}
}

func TestGreetingJoinsOpeningRemarks(t *testing.T) {
	script := mustParse(t, motherScript)
	e := New(script)
	if got, want := e.Greeting(), "HOW DO YOU DO"; got != want {
		t.Errorf("Greeting() = %q, want %q", got, want)
	}
}

func TestRespondUsesBuiltinNomatchCycleOnInapplicableRule(t *testing.T) {
	// NOMATCH-only script: a keyword whose sole decomposition can never
	// match, and no link_keyword, so the rule is inapplicable and the
	// built-in nomatch cycle should be used (the default configuration).
	src := `
(HI)
(STUCK
    ((STUCK ONLY LITERAL WORDS HERE)
        (UNREACHABLE)
    )
)
(NONE
    ((0)
        (PLEASE GO ON)
    )
)
(MEMORY STUCK
    (0 = X)
    (0 = X)
    (0 = X)
    (0 = X)
)
`
	script := mustParse(t, src)
	e := New(script)

	got := e.Respond("STUCK")
	if !strings.Contains(strings.Join(nomatchMessages, "|"), got) {
		t.Fatalf("Respond() = %q, want one of the built-in nomatch messages", got)
	}
}
