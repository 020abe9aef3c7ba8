package normalize

// Accepted key names, probed in priority order.
var (
	QuestionKeys = []string{"question", "Question", "q"}
	AnswerKeys   = []string{"answer", "Answer", "a"}
)

// lookup returns the first non-empty string stored under one of keys.
// Values of any other JSON type count as absent.
func lookup(m map[string]any, keys []string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// NormalizeFields maps one decoded entry onto the canonical shape. Missing
// fields become empty strings; unknown keys are ignored.
func NormalizeFields(m map[string]any) QuestionAnswer {
	return QuestionAnswer{
		Question: lookup(m, QuestionKeys),
		Answer:   lookup(m, AnswerKeys),
	}
}

// NormalizeAll normalizes every decoded element, preserving order and length.
// An element that is not an object yields an empty record so the validator
// discards and counts it like any other malformed entry.
func NormalizeAll(items []any) []QuestionAnswer {
	out := make([]QuestionAnswer, len(items))
	for i, item := range items {
		if m, ok := item.(map[string]any); ok {
			out[i] = NormalizeFields(m)
		}
	}
	return out
}
