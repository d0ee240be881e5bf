package engine

import (
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/eliza/internal/parser"
	"github.com/cwbudde/eliza/internal/scripts"
)

// cacmConversation is the canonical 15-turn exchange from Weizenbaum's
// 1966 CACM paper, run here against the built-in DOCTOR script.
var cacmConversation = []string{
	"Men are all alike.",
	"They're always bugging us about something or other.",
	"Well, my boyfriend made me come here.",
	"He says I'm depressed much of the time.",
	"It's true. I am unhappy.",
	"I need some help, that much seems certain.",
	"Perhaps I could learn to get along with my mother.",
	"My mother takes care of me.",
	"My father.",
	"You are like my father in some ways.",
	"You are not very aggressive but I think you don't want me to notice that.",
	"You don't argue with me.",
	"You are afraid of me.",
	"My father is afraid of everybody.",
	"Bullies.",
}

func TestCACMConversationMatchesSpecVectors(t *testing.T) {
	script, err := parser.Parse(scripts.Doctor)
	if err != nil {
		t.Fatalf("parser.Parse(scripts.Doctor): %v", err)
	}
	e := New(script)

	want := map[int]string{
		0:  "IN WHAT WAY",
		1:  "CAN YOU THINK OF A SPECIFIC EXAMPLE",
		2:  "YOUR BOYFRIEND MADE YOU COME HERE",
		3:  "I AM SORRY TO HEAR YOU ARE DEPRESSED",
		8:  "YOUR FATHER",
		14: "DOES THAT HAVE ANYTHING TO DO WITH THE FACT THAT YOUR BOYFRIEND MADE YOU COME HERE",
	}

	var transcript strings.Builder
	for i, turn := range cacmConversation {
		got := e.Respond(turn)
		transcript.WriteString(turn)
		transcript.WriteString("\n> ")
		transcript.WriteString(got)
		transcript.WriteString("\n\n")

		if exact, ok := want[i]; ok && got != exact {
			t.Errorf("turn %d (%q): got %q, want %q", i+1, turn, got, exact)
		}
	}

	if len(script.Memory.Memories) != 0 {
		t.Errorf("MEMORY queue should be drained by the 15th turn, has %v", script.Memory.Memories)
	}

	snaps.MatchSnapshot(t, "cacm_conversation", transcript.String())
}
