// Package tracer is the trace observer surface from spec §4.8: a
// variant-typed sink the response engine calls into at well-defined points
// during a turn. The engine never makes an observer call load-bearing —
// every Tracer method returns nothing, and Null's implementation of all of
// them is a true no-op, so installing no tracer costs nothing beyond one
// interface-typed field.
//
// This generalizes the teacher's --trace flag (go-dws's lexer/parser accept
// a WithTracing(bool) option and cmd/dwscript/cmd/run.go prints one fixed
// line to stderr when it's set) into a proper observer interface: the
// teacher's trace is a single on/off switch with one hardcoded message,
// where spec §4.8 calls for fourteen distinct callback points a caller can
// act on individually.
package tracer

// Tracer receives one callback per trace point named in spec §4.8. Method
// names and signatures below correspond 1:1 to that callback list, in the
// same order it is given there.
type Tracer interface {
	// ResponseStart fires once per turn, with the Hollerith-filtered,
	// tokenised input words.
	ResponseStart(words []string)

	// LimitUpdate fires each time the LIMIT counter advances.
	LimitUpdate(limit int)

	// SubclauseDiscard fires when a delimiter-bounded subclause is dropped:
	// the text before a delimiter while no keyword has been found yet, or
	// the text after it once one has.
	SubclauseDiscard(discarded string)

	// WordSubstitution fires when a keyword rule's Substitution rewrites a
	// word in place during keyword-stack scanning.
	WordSubstitution(original, substituted string)

	// KeywordStackFinal fires once the left-to-right scan has built the
	// final, precedence-ordered keyword stack for the turn.
	KeywordStackFinal(stack []string)

	// MemoryCreated fires when a MEMORY rule produces a new sentence and
	// enqueues it.
	MemoryCreated(text string)

	// MemoryRecalled fires when a queued memory is dequeued and used as the
	// turn's response.
	MemoryRecalled(text string)

	// UnknownKeyword fires for a scanned word that matches no keyword rule.
	UnknownKeyword(word string)

	// DecompositionFailed fires once for each of a keyword rule's
	// transformations whose decomposition pattern does not match the input.
	DecompositionFailed(keyword string, patternIndex int)

	// NewkeyFailed fires when a NEWKEY reassembly element finds no further
	// keyword on the stack to fall through to.
	NewkeyFailed(keyword string)

	// TransformApplied fires when a decomposition/reassembly pair is
	// applied: it produces the turn's response, or hands control on via a
	// reference or PRE form.
	TransformApplied(keyword string, patternIndex, reassemblyIndex int)

	// MemoryQueueSnapshot fires whenever the MEMORY FIFO changes shape,
	// with the queue's contents in FIFO order (oldest first).
	MemoryQueueSnapshot(queue []string)

	// PreTransform fires when a PRE form rewrites a reassembly's
	// constituents and then has its key re-dispatched.
	PreTransform(template string, key string)

	// NoneUsed fires when the turn falls through to the NONE rule.
	NoneUsed()
}

// Event is a recorded Tracer call, kept by Recording for later inspection
// (Engine.LastTrace). Kind is one of the constants below; Fields holds the
// call's arguments keyed by name, stringified, in no particular iteration
// order beyond what map semantics give.
type Event struct {
	Kind   string
	Fields map[string]string
}

const (
	KindResponseStart       = "response_start"
	KindLimitUpdate         = "limit_update"
	KindSubclauseDiscard    = "subclause_discard"
	KindWordSubstitution    = "word_substitution"
	KindKeywordStackFinal   = "keyword_stack_final"
	KindMemoryCreated       = "memory_created"
	KindMemoryRecalled      = "memory_recalled"
	KindUnknownKeyword      = "unknown_keyword"
	KindDecompositionFailed = "decomposition_failed"
	KindNewkeyFailed        = "newkey_failed"
	KindTransformApplied    = "transform_applied"
	KindMemoryQueueSnapshot = "memory_queue_snapshot"
	KindPreTransform        = "pre_transform"
	KindNoneUsed            = "none_used"
)
