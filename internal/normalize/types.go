// Package normalize turns free-form model output into strictly shaped
// interview-prep records.
//
// Two modes exist. Batch mode extracts an ordered list of question/answer
// pairs and fails loudly when nothing usable survives. Single mode extracts
// one concept explanation and never fails: when the model's output cannot be
// decoded it synthesizes a degraded record from the original question and the
// cleaned text.
//
// Every function in this package is a pure function of its input. Nothing is
// logged and nothing is shared between calls; callers log the diagnostic
// fields carried by Outcome and ConceptResult.
package normalize

// QuestionAnswer is a canonical question/answer record.
// Both fields are non-empty and trimmed once a record leaves the pipeline.
type QuestionAnswer struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// ConceptExplanation is the single record produced in single mode.
type ConceptExplanation struct {
	Title       string `json:"title" yaml:"title"`
	Explanation string `json:"explanation" yaml:"explanation"`
}

// Outcome is the result of a successful batch run.
type Outcome struct {
	// Records holds the surviving records in their original order.
	Records []QuestionAnswer

	// Discarded counts entries dropped for missing or blank fields.
	Discarded int

	// Dropped holds the array indexes of the discarded entries.
	Dropped []int
}

// ConceptResult is the result of a single-mode run.
type ConceptResult struct {
	Record ConceptExplanation

	// Fallback is true when Record was synthesized rather than decoded.
	Fallback bool

	// Reason describes why decoding was abandoned. Empty unless Fallback.
	Reason string
}
