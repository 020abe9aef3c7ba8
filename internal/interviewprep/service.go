package interviewprep

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/abhisek/prepai/internal/llm"
	"github.com/abhisek/prepai/internal/normalize"
)

// Service turns interview requests into model calls and normalized records.
type Service struct {
	provider llm.Provider
	prompts  *PromptBuilder
	config   Config
	logger   *zap.Logger
}

// New creates a Service. A nil logger disables logging.
func New(provider llm.Provider, cfg Config, logger *zap.Logger) (*Service, error) {
	prompts, err := NewPromptBuilder(cfg.Prompts)
	if err != nil {
		return nil, err
	}
	if cfg.MaxQuestions <= 0 {
		cfg.MaxQuestions = DefaultConfig().MaxQuestions
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{provider: provider, prompts: prompts, config: cfg, logger: logger}, nil
}

// GenerateQuestions asks the model for a batch of questions and runs the
// batch pipeline over the reply. Pipeline failures surface unchanged as
// *normalize.ErrExtraction, *normalize.ErrParse or *normalize.ErrEmptyResult.
func (s *Service) GenerateQuestions(ctx context.Context, in QuestionsInput) ([]normalize.QuestionAnswer, error) {
	if err := in.Validate(s.config.MaxQuestions); err != nil {
		return nil, err
	}

	system, user, err := s.prompts.BuildQuestionsPrompt(in)
	if err != nil {
		return nil, err
	}

	var schema *llm.Schema
	if s.config.StructuredOutput {
		schema = QuestionListSchema
	}

	text, err := s.complete(llm.WithPurpose(ctx, llm.PurposeQuestions), system, user, schema)
	if err != nil {
		return nil, err
	}

	out, err := normalize.Questions(text)
	if err != nil {
		s.logger.Warn("question normalization failed",
			zap.String("kind", normalize.KindOf(err)),
			zap.Int("discarded", out.Discarded),
			zap.Error(err),
		)
		return nil, err
	}

	if out.Discarded > 0 {
		s.logger.Info("discarded malformed questions",
			zap.Int("discarded", out.Discarded),
			zap.Ints("indexes", out.Dropped),
			zap.Int("kept", len(out.Records)),
		)
	}
	return out.Records, nil
}

// ExplainConcept asks the model to explain the concept behind question.
// The reply never fails normalization; an unusable reply degrades to a
// record titled with the question as given.
func (s *Service) ExplainConcept(ctx context.Context, question string) (normalize.ConceptExplanation, error) {
	trimmed := strings.TrimSpace(question)
	if trimmed == "" {
		return normalize.ConceptExplanation{}, &ErrInvalidInput{
			Fields:  []string{"question"},
			Message: "Valid question is required",
		}
	}

	system, user, err := s.prompts.BuildConceptPrompt(trimmed)
	if err != nil {
		return normalize.ConceptExplanation{}, err
	}

	var schema *llm.Schema
	if s.config.StructuredOutput {
		schema = ConceptSchema
	}

	text, err := s.complete(llm.WithPurpose(ctx, llm.PurposeConcept), system, user, schema)
	if err != nil {
		return normalize.ConceptExplanation{}, err
	}

	res := normalize.Explanation(text, question)
	if res.Fallback {
		s.logger.Info("concept explanation fell back to raw text", zap.String("reason", res.Reason))
	}
	return res.Record, nil
}

// complete sends one prompt and returns the reply text.
func (s *Service) complete(ctx context.Context, system, user string, schema *llm.Schema) (string, error) {
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      system,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: user}},
		Schema:      schema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}

	if resp.StopReason == "max_tokens" {
		s.logger.Warn("model reply was truncated", zap.Int("max_tokens", s.config.MaxTokens))
	}
	if strings.TrimSpace(resp.Text) == "" {
		return "", ErrNoResponse
	}
	return resp.Text, nil
}
