package interviewprep

import (
	"fmt"
	"strings"
	"text/template"
)

// Prompts holds the prompt templates. User templates are text/template
// sources; questions templates see QuestionsInput, concept templates see
// struct{ Question string }.
type Prompts struct {
	QuestionsSystem string `toml:"questions_system"`
	QuestionsUser   string `toml:"questions_user"`
	ConceptSystem   string `toml:"concept_system"`
	ConceptUser     string `toml:"concept_user"`
}

const defaultQuestionsSystem = `You are a senior technical interviewer preparing a candidate for a job interview.

Rules:
- Write questions a real interviewer for the given role and experience level would ask.
- Cover the requested topics; spread the questions across them.
- Each answer should be concise and beginner-friendly. Include a small code block in the answer only when it helps.
- Respond with a JSON array of objects, each with exactly two keys: "question" and "answer".
- Return only the JSON array. No prose before or after it.`

const defaultQuestionsUser = `Role: {{.Role}}
Candidate experience: {{.Experience}}
Focus topics: {{.TopicsToFocus}}
Number of questions: {{.NumberOfQuestions}}`

const defaultConceptSystem = `You are a patient teacher explaining interview concepts to a developer.

Rules:
- Explain the concept behind the question in depth, as if teaching a beginner.
- Include a small code example when it makes the idea clearer.
- Give the explanation a short, clear title.
- Respond with a single JSON object with exactly two keys: "title" and "explanation".
- Return only the JSON object. No prose before or after it.`

const defaultConceptUser = `Question: {{.Question}}`

// DefaultPrompts returns the built-in prompt set.
func DefaultPrompts() Prompts {
	return Prompts{
		QuestionsSystem: defaultQuestionsSystem,
		QuestionsUser:   defaultQuestionsUser,
		ConceptSystem:   defaultConceptSystem,
		ConceptUser:     defaultConceptUser,
	}
}

// withDefaults fills empty fields from DefaultPrompts.
func (p Prompts) withDefaults() Prompts {
	d := DefaultPrompts()
	if strings.TrimSpace(p.QuestionsSystem) == "" {
		p.QuestionsSystem = d.QuestionsSystem
	}
	if strings.TrimSpace(p.QuestionsUser) == "" {
		p.QuestionsUser = d.QuestionsUser
	}
	if strings.TrimSpace(p.ConceptSystem) == "" {
		p.ConceptSystem = d.ConceptSystem
	}
	if strings.TrimSpace(p.ConceptUser) == "" {
		p.ConceptUser = d.ConceptUser
	}
	return p
}

// PromptBuilder renders system and user prompts from templates.
type PromptBuilder struct {
	questionsSystem string
	conceptSystem   string
	questionsUser   *template.Template
	conceptUser     *template.Template
}

// NewPromptBuilder parses the user templates of p, falling back to the
// defaults for empty fields.
func NewPromptBuilder(p Prompts) (*PromptBuilder, error) {
	p = p.withDefaults()

	qt, err := template.New("questions").Option("missingkey=error").Parse(p.QuestionsUser)
	if err != nil {
		return nil, fmt.Errorf("parse questions prompt: %w", err)
	}
	ct, err := template.New("concept").Option("missingkey=error").Parse(p.ConceptUser)
	if err != nil {
		return nil, fmt.Errorf("parse concept prompt: %w", err)
	}

	return &PromptBuilder{
		questionsSystem: p.QuestionsSystem,
		conceptSystem:   p.ConceptSystem,
		questionsUser:   qt,
		conceptUser:     ct,
	}, nil
}

// BuildQuestionsPrompt returns the system and user prompts for a question
// batch.
func (b *PromptBuilder) BuildQuestionsPrompt(in QuestionsInput) (system, user string, err error) {
	var sb strings.Builder
	if err := b.questionsUser.Execute(&sb, in); err != nil {
		return "", "", fmt.Errorf("render questions prompt: %w", err)
	}
	return b.questionsSystem, sb.String(), nil
}

// BuildConceptPrompt returns the system and user prompts for explaining
// question. The caller trims question beforehand.
func (b *PromptBuilder) BuildConceptPrompt(question string) (system, user string, err error) {
	var sb strings.Builder
	data := struct{ Question string }{Question: question}
	if err := b.conceptUser.Execute(&sb, data); err != nil {
		return "", "", fmt.Errorf("render concept prompt: %w", err)
	}
	return b.conceptSystem, sb.String(), nil
}
