package persona

import (
	"context"
	"log/slog"
	"time"

	"github.com/culturalmind/persona-server/internal/config"
	"github.com/culturalmind/persona-server/internal/gemini"
	"github.com/culturalmind/persona-server/internal/locale"
	"github.com/culturalmind/persona-server/internal/metrics"
)

// Generator produces cultural personas, falling back to the static locale
// bundle whenever generation is unavailable or unusable.
type Generator struct {
	llm     gemini.Generator
	cfg     *config.Config
	locales *locale.Table
	metrics *metrics.Store
	logger  *slog.Logger
}

// NewGenerator creates a persona generator.
func NewGenerator(
	llm gemini.Generator,
	cfg *config.Config,
	locales *locale.Table,
	metricsStore *metrics.Store,
	logger *slog.Logger,
) *Generator {
	return &Generator{
		llm:     llm,
		cfg:     cfg,
		locales: locales,
		metrics: metricsStore,
		logger:  logger,
	}
}

// Generate builds a persona for the given profile. It never fails outward:
// any generation or parse problem yields the deterministic fallback.
func (g *Generator) Generate(ctx context.Context, profile TasteProfile, language string, seed int) *Record {
	code := g.locales.Resolve(language)
	bundle := g.locales.Bundle(code)

	if !g.llm.HasCredentials() {
		g.logger.Warn("persona_fallback", "reason", "no_credentials", "language", code, "seed", seed)
		g.metrics.RecordFallback()
		return Fallback(bundle, profile, seed)
	}

	record, ok := g.tryGenerate(ctx, profile, bundle.DisplayName, seed)
	if !ok {
		g.metrics.RecordFallback()
		return Fallback(bundle, profile, seed)
	}
	return record
}

func (g *Generator) tryGenerate(ctx context.Context, profile TasteProfile, targetLanguage string, seed int) (*Record, bool) {
	variation := DeriveVariation(seed)
	payload, err := BuildPrompt(profile, targetLanguage, variation)
	if err != nil {
		g.logger.Error("persona_prompt_failed", "error", err)
		return nil, false
	}

	timeout := time.Duration(g.cfg.Gemini.TimeoutSeconds) * time.Second
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text, err := g.llm.Chat(callCtx, gemini.Request{
		Prompt:          payload.User,
		SystemPrompt:    payload.System,
		Temperature:     g.cfg.Gemini.PersonaTemperature,
		TopP:            g.cfg.Gemini.PersonaTopP,
		MaxOutputTokens: g.cfg.Gemini.PersonaMaxOutputTokens,
	})
	if err != nil {
		g.logger.Warn("persona_generation_failed", "error", err, "seed", seed)
		return nil, false
	}

	record := &Record{}
	switch gemini.DecodeLenient(text, record) {
	case gemini.DecodeRepaired:
		g.logger.Info("persona_payload_repaired", "seed", seed)
	case gemini.DecodeFailed:
		g.logger.Warn("persona_payload_unparseable", "seed", seed)
		return nil, false
	}

	if !record.Complete() {
		g.logger.Warn("persona_payload_incomplete", "seed", seed)
		return nil, false
	}
	return record, true
}
