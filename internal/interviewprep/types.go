// Package interviewprep generates interview questions and concept
// explanations from a model provider and normalizes what comes back.
package interviewprep

import (
	"errors"
	"strings"
)

// QuestionsInput describes the interview a question batch is generated for.
type QuestionsInput struct {
	Role              string `json:"role"`
	Experience        string `json:"experience"`
	TopicsToFocus     string `json:"topicsToFocus"`
	NumberOfQuestions int    `json:"numberOfQuestions"`
}

// ErrNoResponse is returned when the model produced no usable text.
var ErrNoResponse = errors.New("model returned an empty response")

// ErrInvalidInput describes a request the service refuses before calling
// the model.
type ErrInvalidInput struct {
	Fields  []string // offending fields, in input order
	Message string
}

func (e *ErrInvalidInput) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.Fields, ", ")
}

// Validate checks that every field is present and the count is in range.
func (in QuestionsInput) Validate(maxQuestions int) error {
	var missing []string
	if strings.TrimSpace(in.Role) == "" {
		missing = append(missing, "role")
	}
	if strings.TrimSpace(in.Experience) == "" {
		missing = append(missing, "experience")
	}
	if strings.TrimSpace(in.TopicsToFocus) == "" {
		missing = append(missing, "topicsToFocus")
	}
	if in.NumberOfQuestions == 0 {
		missing = append(missing, "numberOfQuestions")
	}
	if len(missing) > 0 {
		return &ErrInvalidInput{Fields: missing, Message: "Missing required field(s)"}
	}

	if in.NumberOfQuestions < 1 || in.NumberOfQuestions > maxQuestions {
		return &ErrInvalidInput{
			Fields:  []string{"numberOfQuestions"},
			Message: "numberOfQuestions out of range",
		}
	}
	return nil
}
