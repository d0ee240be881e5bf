package tracer

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Logging writes one human-readable line per callback to w, in the spirit
// of go-dws's "[Trace mode enabled - executing %s]" stderr line, but with a
// distinct, labelled line per event instead of one fixed banner.
type Logging struct {
	w io.Writer
}

// NewLogging returns a Logging tracer writing to w.
func NewLogging(w io.Writer) *Logging {
	return &Logging{w: w}
}

func (l *Logging) printf(format string, args ...any) {
	fmt.Fprintf(l.w, format+"\n", args...)
}

func (l *Logging) ResponseStart(words []string) {
	l.printf("trace: response start: %s", strings.Join(words, " "))
}

func (l *Logging) LimitUpdate(limit int) {
	l.printf("trace: limit -> %d", limit)
}

func (l *Logging) SubclauseDiscard(discarded string) {
	l.printf("trace: discarded subclause: %q", discarded)
}

func (l *Logging) WordSubstitution(original, substituted string) {
	l.printf("trace: substituted %q -> %q", original, substituted)
}

func (l *Logging) KeywordStackFinal(stack []string) {
	l.printf("trace: keyword stack: [%s]", strings.Join(stack, " "))
}

func (l *Logging) MemoryCreated(text string) {
	l.printf("trace: memory created: %q", text)
}

func (l *Logging) MemoryRecalled(text string) {
	l.printf("trace: memory recalled: %q", text)
}

func (l *Logging) UnknownKeyword(word string) {
	l.printf("trace: unknown keyword: %s", word)
}

func (l *Logging) DecompositionFailed(keyword string, patternIndex int) {
	l.printf("trace: decomposition failed: keyword=%s pattern=%d", keyword, patternIndex)
}

func (l *Logging) NewkeyFailed(keyword string) {
	l.printf("trace: NEWKEY failed: keyword=%s", keyword)
}

func (l *Logging) TransformApplied(keyword string, patternIndex, reassemblyIndex int) {
	l.printf("trace: transform applied: keyword=%s pattern=%d reassembly=%d",
		keyword, patternIndex, reassemblyIndex)
}

func (l *Logging) MemoryQueueSnapshot(queue []string) {
	quoted := make([]string, len(queue))
	for i, m := range queue {
		quoted[i] = strconv.Quote(m)
	}
	l.printf("trace: memory queue: [%s]", strings.Join(quoted, ", "))
}

func (l *Logging) PreTransform(template string, key string) {
	l.printf("trace: PRE transform: template=%q key=%s", template, key)
}

func (l *Logging) NoneUsed() {
	l.printf("trace: NONE used")
}

var _ Tracer = (*Logging)(nil)
