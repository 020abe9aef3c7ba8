package normalize

import "fmt"

// Mode selects which pipeline runs.
type Mode string

const (
	// ModeBatch extracts an ordered list of question/answer records.
	ModeBatch Mode = "batch"

	// ModeSingle extracts exactly one concept explanation.
	ModeSingle Mode = "single"
)

// ParseMode converts a user-supplied mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeBatch, ModeSingle:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown mode %q (want %q or %q)", s, ModeBatch, ModeSingle)
}

// Questions runs the batch pipeline:
// locate, parse, normalize fields, validate.
// The returned error is one of *ErrExtraction, *ErrParse or *ErrEmptyResult.
func Questions(raw string) (Outcome, error) {
	candidate, ok := LocateArray(raw)
	if !ok {
		return Outcome{}, &ErrExtraction{Text: raw}
	}

	items, err := ParseArray(candidate)
	if err != nil {
		return Outcome{}, err
	}

	return ValidateRecords(NormalizeAll(items))
}

// Explanation runs the single-mode pipeline. It never fails: decode errors
// and missing fields are absorbed by synthesizing a record from question and
// the cleaned text.
func Explanation(raw, question string) ConceptResult {
	cleaned := CleanFences(raw)

	obj, err := ParseObject(cleaned)
	if err == nil {
		var rec ConceptExplanation
		if rec, err = conceptFromMap(obj); err == nil {
			return ConceptResult{Record: rec}
		}
	}

	return ConceptResult{
		Record:   Synthesize(question, cleaned, raw),
		Fallback: true,
		Reason:   err.Error(),
	}
}

// Result holds the output of Normalize. Only the field matching Mode is set.
type Result struct {
	Mode      Mode
	Questions Outcome
	Concept   ConceptResult
}

// Normalize runs the pipeline selected by mode. question is only consulted in
// single mode, where it supplies the fallback title.
func Normalize(mode Mode, raw, question string) (Result, error) {
	switch mode {
	case ModeBatch:
		out, err := Questions(raw)
		if err != nil {
			return Result{Mode: mode}, err
		}
		return Result{Mode: mode, Questions: out}, nil
	case ModeSingle:
		return Result{Mode: mode, Concept: Explanation(raw, question)}, nil
	}
	return Result{}, fmt.Errorf("unknown mode %q", mode)
}
