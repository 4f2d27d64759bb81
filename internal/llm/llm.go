package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	ProviderGemini = "gemini"
	ProviderOllama = "ollama"
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)

const (
	DefaultGeminiModel = "gemini-2.5-flash"
	defaultOllamaModel = "ministral-3:latest"
	defaultOpenAIModel = "gpt-4o-mini"
	defaultOllamaHost  = "http://localhost:11434"
	defaultOpenAIBase  = "https://api.openai.com/v1"
)

const defaultLLMHTTPTimeout = 3 * time.Minute

var (
	// ErrMissingAPIKey means the selected provider needs a credential and none was configured.
	ErrMissingAPIKey = errors.New("api key missing")
	// ErrUnknownProvider is returned for provider names NewFromConfig does not recognize.
	ErrUnknownProvider = errors.New("unknown llm provider")
)

// Config describes how to build an LLM client.
type Config struct {
	Provider   string
	Model      string
	Endpoint   string
	APIKey     string
	HTTPClient *http.Client
}

// Client turns a prompt into generated text.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// RequiresAPIKey reports whether the provider cannot run without a credential.
func RequiresAPIKey(provider string) bool {
	switch normalizeProvider(provider) {
	case ProviderGemini, ProviderOpenAI:
		return true
	default:
		return false
	}
}

// NewFromConfig builds the client for cfg.Provider, defaulting to Gemini.
func NewFromConfig(ctx context.Context, cfg Config) (Client, error) {
	provider := normalizeProvider(cfg.Provider)
	if RequiresAPIKey(provider) && strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("%s: %w", provider, ErrMissingAPIKey)
	}
	switch provider {
	case ProviderGemini:
		return newGeminiClient(ctx, cfg)
	case ProviderOllama:
		return &ollamaClient{
			host:   pickString(strings.TrimRight(cfg.Endpoint, "/"), defaultOllamaHost),
			model:  pickString(cfg.Model, defaultOllamaModel),
			client: pickHTTPClient(cfg.HTTPClient),
		}, nil
	case ProviderOpenAI:
		return &openAIClient{
			apiKey: cfg.APIKey,
			model:  pickString(cfg.Model, defaultOpenAIModel),
			base:   pickString(strings.TrimRight(cfg.Endpoint, "/"), defaultOpenAIBase),
			client: pickHTTPClient(cfg.HTTPClient),
		}, nil
	case ProviderMock:
		return mockClient{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}

func normalizeProvider(provider string) string {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if provider == "" {
		return ProviderGemini
	}
	return provider
}

func pickString(value, fallback string) string {
	if strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func pickHTTPClient(custom *http.Client) *http.Client {
	if custom != nil {
		return custom
	}
	// Local models often need >60s for a full page of notes.
	return &http.Client{Timeout: defaultLLMHTTPTimeout}
}
