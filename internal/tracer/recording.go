package tracer

import "strconv"

// Recording wraps another Tracer (Null by default) and additionally keeps
// every call it receives as an Event, in order. It backs Engine.LastTrace:
// installing a *Recording lets a caller (the CLI's "*"/"**" meta-commands,
// a test) inspect what happened during the last turn without parsing a log
// line or JSON stream back out.
type Recording struct {
	inner  Tracer
	events []Event
}

// NewRecording returns a Recording tracer that also forwards every call to
// inner. Pass Null{} to record without any other side effect.
func NewRecording(inner Tracer) *Recording {
	if inner == nil {
		inner = Null{}
	}
	return &Recording{inner: inner}
}

// Events returns every call recorded so far, oldest first.
func (r *Recording) Events() []Event {
	return r.events
}

// Reset clears the recorded history, called at the start of each turn so
// LastTrace reflects only the most recent one.
func (r *Recording) Reset() {
	r.events = nil
}

func (r *Recording) record(kind string, fields map[string]string) {
	r.events = append(r.events, Event{Kind: kind, Fields: fields})
}

func (r *Recording) ResponseStart(words []string) {
	r.record(KindResponseStart, map[string]string{"words": fieldString(words)})
	r.inner.ResponseStart(words)
}

func (r *Recording) LimitUpdate(limit int) {
	r.record(KindLimitUpdate, map[string]string{"limit": strconv.Itoa(limit)})
	r.inner.LimitUpdate(limit)
}

func (r *Recording) SubclauseDiscard(discarded string) {
	r.record(KindSubclauseDiscard, map[string]string{"discarded": discarded})
	r.inner.SubclauseDiscard(discarded)
}

func (r *Recording) WordSubstitution(original, substituted string) {
	r.record(KindWordSubstitution, map[string]string{"original": original, "substituted": substituted})
	r.inner.WordSubstitution(original, substituted)
}

func (r *Recording) KeywordStackFinal(stack []string) {
	r.record(KindKeywordStackFinal, map[string]string{"stack": fieldString(stack)})
	r.inner.KeywordStackFinal(stack)
}

func (r *Recording) MemoryCreated(text string) {
	r.record(KindMemoryCreated, map[string]string{"text": text})
	r.inner.MemoryCreated(text)
}

func (r *Recording) MemoryRecalled(text string) {
	r.record(KindMemoryRecalled, map[string]string{"text": text})
	r.inner.MemoryRecalled(text)
}

func (r *Recording) UnknownKeyword(word string) {
	r.record(KindUnknownKeyword, map[string]string{"word": word})
	r.inner.UnknownKeyword(word)
}

func (r *Recording) DecompositionFailed(keyword string, patternIndex int) {
	r.record(KindDecompositionFailed, map[string]string{
		"keyword": keyword, "pattern_index": strconv.Itoa(patternIndex),
	})
	r.inner.DecompositionFailed(keyword, patternIndex)
}

func (r *Recording) NewkeyFailed(keyword string) {
	r.record(KindNewkeyFailed, map[string]string{"keyword": keyword})
	r.inner.NewkeyFailed(keyword)
}

func (r *Recording) TransformApplied(keyword string, patternIndex, reassemblyIndex int) {
	r.record(KindTransformApplied, map[string]string{
		"keyword":          keyword,
		"pattern_index":    strconv.Itoa(patternIndex),
		"reassembly_index": strconv.Itoa(reassemblyIndex),
	})
	r.inner.TransformApplied(keyword, patternIndex, reassemblyIndex)
}

func (r *Recording) MemoryQueueSnapshot(queue []string) {
	r.record(KindMemoryQueueSnapshot, map[string]string{"queue": fieldString(queue)})
	r.inner.MemoryQueueSnapshot(queue)
}

func (r *Recording) PreTransform(template string, key string) {
	r.record(KindPreTransform, map[string]string{"template": template, "key": key})
	r.inner.PreTransform(template, key)
}

func (r *Recording) NoneUsed() {
	r.record(KindNoneUsed, nil)
	r.inner.NoneUsed()
}

var _ Tracer = (*Recording)(nil)
