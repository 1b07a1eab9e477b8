package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned by adapters when the provider replied without text.
var ErrEmptyResponse = errors.New("no content returned by model")

// Prompt is a single-turn request: a system instruction, one user message and
// an optional schema the reply must follow.
type Prompt struct {
	System string
	User   string
	Schema *Schema
}

// ChatModel is a minimal abstraction for chat-based LLMs used by the domain.
// It hides concrete providers to preserve dependency direction.
type ChatModel interface {
	Ask(ctx context.Context, p Prompt) (string, error)
}

// ChatModelFunc adapts a function to ChatModel.
type ChatModelFunc func(ctx context.Context, p Prompt) (string, error)

func (f ChatModelFunc) Ask(ctx context.Context, p Prompt) (string, error) { return f(ctx, p) }
