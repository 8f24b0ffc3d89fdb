package gemini

import (
	"context"
	"testing"

	"github.com/culturalmind/persona-server/internal/config"
	"github.com/culturalmind/persona-server/internal/metrics"
)

func TestNewClientRequiresConfig(t *testing.T) {
	if _, err := NewClient(nil, metrics.NewStore()); err == nil {
		t.Fatalf("expected error for nil config")
	}
	if _, err := NewClient(&config.Config{}, nil); err == nil {
		t.Fatalf("expected error for nil metrics store")
	}
}

func TestHasCredentials(t *testing.T) {
	cfg := &config.Config{}
	client, err := NewClient(cfg, metrics.NewStore())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.HasCredentials() {
		t.Fatalf("expected no credentials")
	}

	cfg = &config.Config{Gemini: config.GeminiConfig{APIKeys: []string{"k"}}}
	client, err = NewClient(cfg, metrics.NewStore())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !client.HasCredentials() {
		t.Fatalf("expected credentials")
	}
}

func TestChatWithoutKeyFails(t *testing.T) {
	client, err := NewClient(&config.Config{}, metrics.NewStore())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := client.Chat(context.Background(), Request{Prompt: "hi"}); err != ErrMissingAPIKey {
		t.Fatalf("expected ErrMissingAPIKey, got: %v", err)
	}
}

func TestBuildGenerateConfig(t *testing.T) {
	generateConfig := buildGenerateConfig(Request{
		SystemPrompt:    "Respond only in Turkish.",
		Temperature:     1.0,
		TopP:            0.9,
		MaxOutputTokens: 1200,
	})
	if generateConfig.Temperature == nil || *generateConfig.Temperature != 1.0 {
		t.Fatalf("unexpected temperature")
	}
	if generateConfig.TopP == nil || *generateConfig.TopP != 0.9 {
		t.Fatalf("unexpected top_p")
	}
	if generateConfig.MaxOutputTokens != 1200 {
		t.Fatalf("unexpected max tokens")
	}
	if generateConfig.SystemInstruction == nil {
		t.Fatalf("expected system instruction")
	}
}
