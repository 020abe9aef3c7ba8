package normalize

import "strings"

// ValidateRecords keeps the records whose question and answer are non-empty
// after trimming. Survivors are returned trimmed and in their original
// order. Zero survivors is an *ErrEmptyResult; the partial Outcome is still
// returned for diagnostics but must not be treated as a success.
//
// A present-but-blank field is dropped exactly like an absent one.
func ValidateRecords(records []QuestionAnswer) (Outcome, error) {
	out := Outcome{Records: make([]QuestionAnswer, 0, len(records))}

	for i, r := range records {
		q := strings.TrimSpace(r.Question)
		a := strings.TrimSpace(r.Answer)
		if q == "" || a == "" {
			out.Discarded++
			out.Dropped = append(out.Dropped, i)
			continue
		}
		out.Records = append(out.Records, QuestionAnswer{Question: q, Answer: a})
	}

	if len(out.Records) == 0 {
		return out, &ErrEmptyResult{Discarded: out.Discarded}
	}
	return out, nil
}
