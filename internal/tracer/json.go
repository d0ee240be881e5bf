package tracer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tidwall/sjson"
)

// JSON writes one newline-delimited JSON object per callback to w. It
// exists for callers that want to pipe a turn's trace into another tool
// (jq, a log aggregator, or tidwall/gjson as this package's tests use)
// rather than read it as prose.
//
// Each line is built incrementally with sjson.Set rather than through a
// throwaway per-event struct + json.Marshal — the field set differs per
// event kind, and sjson's "set one path into a JSON string" model fits a
// write-mostly, schema-light event log better than defining fourteen
// marshalable structs for fourteen shapes of event.
type JSON struct {
	w io.Writer
}

// NewJSON returns a JSON tracer writing NDJSON lines to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

func (j *JSON) emit(kind string, fields map[string]any) {
	line := `{}`
	line, _ = sjson.Set(line, "kind", kind)
	for k, v := range fields {
		line, _ = sjson.Set(line, k, v)
	}
	fmt.Fprintln(j.w, line)
}

func (j *JSON) ResponseStart(words []string) {
	j.emit(KindResponseStart, map[string]any{"words": words})
}

func (j *JSON) LimitUpdate(limit int) {
	j.emit(KindLimitUpdate, map[string]any{"limit": limit})
}

func (j *JSON) SubclauseDiscard(discarded string) {
	j.emit(KindSubclauseDiscard, map[string]any{"discarded": discarded})
}

func (j *JSON) WordSubstitution(original, substituted string) {
	j.emit(KindWordSubstitution, map[string]any{"original": original, "substituted": substituted})
}

func (j *JSON) KeywordStackFinal(stack []string) {
	j.emit(KindKeywordStackFinal, map[string]any{"stack": stack})
}

func (j *JSON) MemoryCreated(text string) {
	j.emit(KindMemoryCreated, map[string]any{"text": text})
}

func (j *JSON) MemoryRecalled(text string) {
	j.emit(KindMemoryRecalled, map[string]any{"text": text})
}

func (j *JSON) UnknownKeyword(word string) {
	j.emit(KindUnknownKeyword, map[string]any{"word": word})
}

func (j *JSON) DecompositionFailed(keyword string, patternIndex int) {
	j.emit(KindDecompositionFailed, map[string]any{"keyword": keyword, "pattern_index": patternIndex})
}

func (j *JSON) NewkeyFailed(keyword string) {
	j.emit(KindNewkeyFailed, map[string]any{"keyword": keyword})
}

func (j *JSON) TransformApplied(keyword string, patternIndex, reassemblyIndex int) {
	j.emit(KindTransformApplied, map[string]any{
		"keyword":          keyword,
		"pattern_index":    patternIndex,
		"reassembly_index": reassemblyIndex,
	})
}

func (j *JSON) MemoryQueueSnapshot(queue []string) {
	j.emit(KindMemoryQueueSnapshot, map[string]any{"queue": queue})
}

func (j *JSON) PreTransform(template string, key string) {
	j.emit(KindPreTransform, map[string]any{"template": template, "key": key})
}

func (j *JSON) NoneUsed() {
	j.emit(KindNoneUsed, nil)
}

var _ Tracer = (*JSON)(nil)

// fieldString renders a single value as the Event.Fields string Recording
// stores, matching the shape a reader would expect from the JSON tracer's
// own scalar fields.
func fieldString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case []string:
		return strings.Join(t, ",")
	default:
		return fmt.Sprint(t)
	}
}
