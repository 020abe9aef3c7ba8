package normalize

import (
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const conceptSchemaURL = "schema://concept-explanation.json"

// conceptSchemaJSON accepts any object carrying non-empty string title and
// explanation fields. Extra keys are allowed and ignored.
const conceptSchemaJSON = `{
	"type": "object",
	"properties": {
		"title":       {"type": "string", "minLength": 1},
		"explanation": {"type": "string", "minLength": 1}
	},
	"required": ["title", "explanation"]
}`

var conceptSchema = mustCompileConceptSchema()

func mustCompileConceptSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(conceptSchemaJSON))
	if err != nil {
		panic(fmt.Sprintf("parse concept schema: %v", err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource(conceptSchemaURL, doc); err != nil {
		panic(fmt.Sprintf("add concept schema: %v", err))
	}
	return c.MustCompile(conceptSchemaURL)
}

// conceptFromMap checks a decoded object for the required fields and
// returns the record built from them.
func conceptFromMap(obj map[string]any) (ConceptExplanation, error) {
	if err := conceptSchema.Validate(obj); err != nil {
		return ConceptExplanation{}, fmt.Errorf("missing title or explanation: %w", err)
	}
	return ConceptExplanation{
		Title:       obj["title"].(string),
		Explanation: obj["explanation"].(string),
	}, nil
}

// Synthesize builds the degraded single-mode record: the caller's original
// question becomes the title and the cleaned model text the explanation.
// When cleaning stripped everything, the trimmed raw text is used instead.
func Synthesize(question, cleaned, raw string) ConceptExplanation {
	explanation := cleaned
	if explanation == "" {
		explanation = strings.TrimSpace(raw)
	}
	return ConceptExplanation{Title: question, Explanation: explanation}
}
