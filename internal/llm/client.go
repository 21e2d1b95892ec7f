package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"

	DefaultGeminiModel = "gemini-2.5-flash"
	DefaultOpenAIModel = "gpt-4o-mini"

	temperature     = 0.7
	maxOutputTokens = 500
)

var (
	ErrAPIKeyMissing   = errors.New("llm: API key not configured")
	ErrUnknownProvider = errors.New("llm: unknown provider")
	ErrEmptyCompletion = errors.New("llm: no completion returned")
)

// Client sends one system prompt plus one user message and returns the
// model's text. Implementations never retry.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

type Config struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

// New builds the client for config.Provider. A missing API key is not an
// error here; it surfaces as ErrAPIKeyMissing on the first call.
func New(ctx context.Context, config Config) (Client, error) {
	switch strings.ToLower(strings.TrimSpace(config.Provider)) {
	case "", ProviderGemini:
		return NewGeminiClient(ctx, config)
	case ProviderOpenAI:
		return NewOpenAIClient(config), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, config.Provider)
	}
}
