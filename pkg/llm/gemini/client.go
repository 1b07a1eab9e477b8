// Package gemini adapts Google's Gemini API to llm.ChatModel.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/artem13815/triage/pkg/llm"
)

const DefaultModel = "gemini-1.5-flash"

type Config struct {
	APIKey      string
	Model       string
	Temperature float32
	Timeout     time.Duration
	// BaseURL overrides the API endpoint; empty means the public Gemini API.
	BaseURL string
}

// Client calls generateContent once per Ask. It never retries.
type Client struct {
	client      *genai.Client
	model       string
	temperature float32
	timeout     time.Duration
}

func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key is empty")
	}
	model := strings.TrimPrefix(cfg.Model, "models/")
	if model == "" {
		model = DefaultModel
	}
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{
		client:      client,
		model:       model,
		temperature: cfg.Temperature,
		timeout:     cfg.Timeout,
	}, nil
}

// Model reports the model id used for requests.
func (c *Client) Model() string { return c.model }

func (c *Client) Ask(ctx context.Context, p llm.Prompt) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(p.User), buildGenerateConfig(p, c.temperature))
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", llm.ErrEmptyResponse
	}
	return text, nil
}

// Ping fetches model metadata, which fails on a bad key or unknown model.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.client.Models.Get(ctx, c.model, nil); err != nil {
		return fmt.Errorf("gemini model %s: %w", c.model, err)
	}
	return nil
}

func buildGenerateConfig(p llm.Prompt, temperature float32) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(temperature),
	}
	if p.System != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{genai.NewPartFromText(p.System)},
		}
	}
	if p.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = convertSchema(*p.Schema)
	}
	return cfg
}

func convertSchema(s llm.Schema) *genai.Schema {
	out := &genai.Schema{
		Type:        genai.TypeObject,
		Title:       s.Title,
		Description: s.Description,
		Properties:  make(map[string]*genai.Schema, len(s.Properties)),
		Required:    s.Required(),
	}
	for _, p := range s.Properties {
		out.Properties[p.Name] = &genai.Schema{
			Type:        genai.TypeString,
			Description: p.Description,
		}
	}
	return out
}
