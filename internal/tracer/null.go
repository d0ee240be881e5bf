package tracer

// Null is the default, zero-cost Tracer: every method is a true no-op.
// spec §4.8 requires a no-op variant be the default so that tracing is
// never load-bearing for a caller that doesn't install one.
type Null struct{}

func (Null) ResponseStart(words []string)                                       {}
func (Null) LimitUpdate(limit int)                                              {}
func (Null) SubclauseDiscard(discarded string)                                  {}
func (Null) WordSubstitution(original, substituted string)                      {}
func (Null) KeywordStackFinal(stack []string)                                   {}
func (Null) MemoryCreated(text string)                                          {}
func (Null) MemoryRecalled(text string)                                         {}
func (Null) UnknownKeyword(word string)                                         {}
func (Null) DecompositionFailed(keyword string, patternIndex int)               {}
func (Null) NewkeyFailed(keyword string)                                        {}
func (Null) TransformApplied(keyword string, patternIndex, reassemblyIndex int) {}
func (Null) MemoryQueueSnapshot(queue []string)                                 {}
func (Null) PreTransform(template string, key string)                          {}
func (Null) NoneUsed()                                                          {}

var _ Tracer = Null{}
