package checkers

import (
	"context"
	"time"
)

// Pinger is implemented by LLM adapters that can cheaply verify credentials.
type Pinger interface {
	Ping(ctx context.Context) error
}

type LLMChecker struct {
	name    string
	pinger  Pinger
	timeout time.Duration
}

func NewLLMChecker(provider string, pinger Pinger) *LLMChecker {
	return &LLMChecker{name: "llm:" + provider, pinger: pinger, timeout: 2 * time.Second}
}

func (c *LLMChecker) Name() string { return c.name }

func (c *LLMChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.pinger.Ping(ctx)
}
