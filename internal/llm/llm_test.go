package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/csheth/noteza/internal/notes"
)

func TestPickHTTPClientHonorsCustomClient(t *testing.T) {
	custom := &http.Client{Timeout: 42 * time.Second}
	if got := pickHTTPClient(custom); got != custom {
		t.Fatalf("expected custom client to be returned")
	}
}

func TestPickHTTPClientUsesLongerTimeout(t *testing.T) {
	client := pickHTTPClient(nil)
	if client.Timeout != defaultLLMHTTPTimeout {
		t.Fatalf("expected default timeout %s, got %s", defaultLLMHTTPTimeout, client.Timeout)
	}
}

func TestNewFromConfigRequiresKey(t *testing.T) {
	for _, provider := range []string{"", "gemini", "openai"} {
		_, err := NewFromConfig(context.Background(), Config{Provider: provider})
		if !errors.Is(err, ErrMissingAPIKey) {
			t.Fatalf("provider %q: expected ErrMissingAPIKey, got %v", provider, err)
		}
	}
}

func TestNewFromConfigUnknownProvider(t *testing.T) {
	_, err := NewFromConfig(context.Background(), Config{Provider: "carrier-pigeon"})
	if !errors.Is(err, ErrUnknownProvider) {
		t.Fatalf("expected ErrUnknownProvider, got %v", err)
	}
}

func TestNewFromConfigDefaults(t *testing.T) {
	client, err := NewFromConfig(context.Background(), Config{Provider: "Ollama"})
	if err != nil {
		t.Fatalf("NewFromConfig() error = %v", err)
	}
	ollama, ok := client.(*ollamaClient)
	if !ok {
		t.Fatalf("expected *ollamaClient, got %T", client)
	}
	if ollama.host != defaultOllamaHost || ollama.model != defaultOllamaModel {
		t.Fatalf("unexpected defaults: host=%s model=%s", ollama.host, ollama.model)
	}

	client, err = NewFromConfig(context.Background(), Config{Provider: "gemini", APIKey: "k"})
	if err != nil {
		t.Fatalf("NewFromConfig() error = %v", err)
	}
	if client.Name() != "Gemini (gemini-2.5-flash)" {
		t.Fatalf("unexpected gemini client name: %s", client.Name())
	}
}

func TestRequiresAPIKey(t *testing.T) {
	if !RequiresAPIKey("") || !RequiresAPIKey("GEMINI") || !RequiresAPIKey("openai") {
		t.Fatal("gemini and openai need keys")
	}
	if RequiresAPIKey("ollama") || RequiresAPIKey("mock") {
		t.Fatal("ollama and mock run without keys")
	}
}

func TestMockClientEchoesTopic(t *testing.T) {
	client, err := NewFromConfig(context.Background(), Config{Provider: ProviderMock})
	if err != nil {
		t.Fatalf("NewFromConfig() error = %v", err)
	}
	brief, err := client.Generate(context.Background(), BuildNotesPrompt("Photosynthesis", notes.LevelBrief))
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !strings.HasPrefix(brief, "## Photosynthesis\n") {
		t.Fatalf("mock output should open with the topic heading: %q", brief)
	}
	detailed, _ := client.Generate(context.Background(), BuildNotesPrompt("Photosynthesis", notes.LevelDetailed))
	if len(detailed) <= len(brief) {
		t.Fatal("detailed mock notes should be longer than brief ones")
	}
}

func TestMockClientHonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (mockClient{}).Generate(ctx, "prompt"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
