// Package ast is the in-memory rule set produced by the script parser and
// consumed by the matcher and engine packages: the data model of spec §3.
package ast

// NoneKey is the reserved key the parser canonicalises the script's NONE
// rule under. Choosing 'z' as a prefix keeps it sorting after any
// user keyword for round-trip/printing purposes (spec §4.3); it is never
// used for dispatch, only identity.
const NoneKey = "zNONE"

// Script is the fully parsed, load-time-immutable rule set (spec §3's
// Lifecycle note: only a Transformation's reassembly cursor and the
// MemoryRule's FIFO queue mutate after load).
type Script struct {
	OpeningRemarks []string

	// Keywords holds every keyword rule, including the one under NoneKey.
	// KeywordOrder preserves insertion order (spec §3's Script type),
	// since Go map iteration order is not insertion order.
	Keywords     map[string]*KeywordRule
	KeywordOrder []string

	Memory *MemoryRule

	// Tags is the derived tag -> ordered-keyword-list index (spec §3's Tag
	// index), built once by BuildTagIndex after parsing.
	Tags map[string][]string

	// Source is the original script text, kept for caret-pointer error
	// formatting and for round-trip printing.
	Source string
}

// None returns the script's mandatory NONE rule. Parser post-parse checks
// guarantee it is always present.
func (s *Script) None() *KeywordRule {
	return s.Keywords[NoneKey]
}

// BuildTagIndex (re)computes Tags from the current Keywords/KeywordOrder,
// preserving each tag's keyword-declaration order.
func (s *Script) BuildTagIndex() {
	tags := make(map[string][]string)
	for _, kw := range s.KeywordOrder {
		rule := s.Keywords[kw]
		for _, tag := range rule.Tags {
			tags[tag] = append(tags[tag], kw)
		}
	}
	s.Tags = tags
}

// KeywordRule is one keyword's dispatch entry (spec §3).
type KeywordRule struct {
	Keyword      string
	Substitution string
	Precedence   int
	Tags         []string
	Transforms   []*Transformation
	LinkKeyword  string
}

// HasTransform reports whether this rule does anything beyond matching a
// bare keyword: it either has decomposition/reassembly pairs or links
// straight to another keyword.
func (k *KeywordRule) HasTransform() bool {
	return len(k.Transforms) > 0 || k.LinkKeyword != ""
}

// MemoryRule lays down deferred responses when its keyword is seen, for
// later FIFO recall when the keyword stack runs dry (spec §3, §4.7).
type MemoryRule struct {
	Keyword    string
	Transforms [4]*Transformation
	Memories   []string // FIFO queue; front = oldest
}

// Enqueue appends a newly created memory to the back of the queue.
func (m *MemoryRule) Enqueue(text string) {
	m.Memories = append(m.Memories, text)
}

// Dequeue pops and returns the oldest memory, if any.
func (m *MemoryRule) Dequeue() (string, bool) {
	if len(m.Memories) == 0 {
		return "", false
	}
	text := m.Memories[0]
	m.Memories = m.Memories[1:]
	return text, true
}
