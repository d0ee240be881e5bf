package hollerith

import "testing"

func TestLastChunkAsBCD(t *testing.T) {
	cases := []struct {
		word string
		want uint64
	}{
		{"", 0o606060606060},
		{"X", 0o676060606060},
		{"HERE", 0o302551256060},
		{"ALWAYS", 0o214366217062},
	}
	for _, c := range cases {
		if got := LastChunkAsBCD(c.word); got != c.want {
			t.Errorf("LastChunkAsBCD(%q) = %#o, want %#o", c.word, got, c.want)
		}
	}
}

func TestHash(t *testing.T) {
	cases := []struct {
		d    uint64
		n    uint
		want uint64
	}{
		{0o214366217062, 7, 14},
		{0o302551256060, 2, 3},
		{0, 7, 0},
		{0o777777777777, 7, 0x70},
	}
	for _, c := range cases {
		if got := Hash(c.d, c.n); got != c.want {
			t.Errorf("Hash(%#o, %d) = %#x, want %#x", c.d, c.n, got, c.want)
		}
	}
}

func TestHashIsInRangeForMemorySelection(t *testing.T) {
	// The engine always calls Hash(_, 2) to index a 4-element MEMORY
	// transform array; the result must stay in 0..3 for every word.
	for _, word := range []string{"", "NICE", "FAMILY", "YOU", "A", "SUPERCALIFRAGILISTIC"} {
		idx := Hash(LastChunkAsBCD(word), 2)
		if idx > 3 {
			t.Errorf("Hash(LastChunkAsBCD(%q), 2) = %d, want 0..3", word, idx)
		}
	}
}
