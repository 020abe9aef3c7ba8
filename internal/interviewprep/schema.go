package interviewprep

import "github.com/abhisek/prepai/internal/llm"

// QuestionListSchema is sent with question requests when structured output
// is enabled. The array is wrapped in an object because not every provider
// accepts a top-level array.
var QuestionListSchema = &llm.Schema{
	Name:        "interview-questions",
	Description: "A list of interview questions with model answers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The interview question",
						},
						"answer": map[string]any{
							"type":        "string",
							"description": "A concise model answer, markdown allowed",
						},
					},
					"required":             []any{"question", "answer"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// ConceptSchema is sent with concept requests when structured output is
// enabled.
var ConceptSchema = &llm.Schema{
	Name:        "concept-explanation",
	Description: "A titled explanation of the concept behind an interview question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "A short title for the concept",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "The explanation, markdown allowed",
			},
		},
		"required":             []any{"title", "explanation"},
		"additionalProperties": false,
	},
}
