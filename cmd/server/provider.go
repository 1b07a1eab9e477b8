package main

import (
	"context"
	"fmt"

	"github.com/artem13815/triage/pkg/config"
	"github.com/artem13815/triage/pkg/llm"
	"github.com/artem13815/triage/pkg/llm/gemini"
	"github.com/artem13815/triage/pkg/llm/openrouter"
)

// chatModel is what the server needs from a provider adapter.
type chatModel interface {
	llm.ChatModel
	Ping(ctx context.Context) error
	Model() string
}

func newChatModel(ctx context.Context, cfg config.Config) (chatModel, error) {
	switch cfg.LLMProvider {
	case config.ProviderGemini:
		return gemini.New(ctx, gemini.Config{
			APIKey:  cfg.GoogleAPIKey,
			Model:   cfg.GeminiModel,
			Timeout: cfg.LLMTimeout,
		})
	case config.ProviderOpenRouter:
		return openrouter.New(openrouter.Config{
			APIKey:   cfg.OpenRouterAPIKey,
			BaseURL:  cfg.OpenRouterBase,
			Model:    cfg.OpenRouterModel,
			AppTitle: cfg.OpenRouterAppTitle,
			Referer:  cfg.OpenRouterReferer,
			Timeout:  cfg.LLMTimeout,
		})
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownProvider, cfg.LLMProvider)
	}
}
