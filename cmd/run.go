package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/prepai/internal/interviewprep"
	"github.com/abhisek/prepai/internal/llm"
	"github.com/abhisek/prepai/internal/store"
)

// openStore opens the database selected by resolveDBPath.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	logger.Debug("store opened", zap.String("path", dbPath))
	return st, nil
}

// newPrepService builds the provider stack and the interview-prep service.
// When the configured provider has no key, the vendors' standard key
// variables are probed. Every model call is recorded through events.
func newPrepService(ctx context.Context, events llm.EventRecorder) (*interviewprep.Service, error) {
	llmCfg := cfg.LLM
	if !llmCfg.HasKey() {
		if found, ok := llm.DiscoverConfig(); ok {
			found.Timeout = llmCfg.Timeout
			found.Retry = llmCfg.Retry
			logger.Info("using discovered API key", zap.String("provider", found.Provider))
			llmCfg = found
		}
	}

	provider, err := llm.NewProvider(ctx, llmCfg, events, logger)
	if err != nil {
		return nil, fmt.Errorf("LLM provider not configured: %w", err)
	}
	return interviewprep.New(provider, cfg.Generation, logger)
}
