package culturemap

import (
	"context"
	"log/slog"
	"time"

	"github.com/culturalmind/persona-server/internal/config"
	"github.com/culturalmind/persona-server/internal/gemini"
	"github.com/culturalmind/persona-server/internal/locale"
	"github.com/culturalmind/persona-server/internal/metrics"
	"github.com/culturalmind/persona-server/internal/persona"
)

// Generator produces per-country insights, falling back to the static
// locale map whenever generation is unavailable or unusable.
type Generator struct {
	llm     gemini.Generator
	cfg     *config.Config
	locales *locale.Table
	metrics *metrics.Store
	logger  *slog.Logger
}

// NewGenerator creates a cultural map generator.
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

// GenerateInsights builds the country insight map. An empty country list
// yields an empty map without a generation call. Any failure yields the
// static locale map instead of an error.
func (g *Generator) GenerateInsights(
	ctx context.Context,
	record *persona.Record,
	profile persona.TasteProfile,
	countries []string,
	language string,
) map[string]CountryInsight {
	if len(countries) == 0 {
		return map[string]CountryInsight{}
	}

	code := g.locales.Resolve(language)
	bundle := g.locales.Bundle(code)

	if !g.llm.HasCredentials() {
		g.logger.Warn("culture_map_fallback", "reason", "no_credentials", "language", code)
		g.metrics.RecordFallback()
		return staticInsights(bundle)
	}

	insights, ok := g.tryGenerate(ctx, record, profile, countries, bundle.DisplayName)
	if !ok {
		g.metrics.RecordFallback()
		return staticInsights(bundle)
	}
	return insights
}

func (g *Generator) tryGenerate(
	ctx context.Context,
	record *persona.Record,
	profile persona.TasteProfile,
	countries []string,
	targetLanguage string,
) (map[string]CountryInsight, bool) {
	payload, err := BuildPrompt(record, profile, countries, targetLanguage)
	if err != nil {
		g.logger.Error("culture_map_prompt_failed", "error", err)
		return nil, false
	}

	timeout := time.Duration(g.cfg.Gemini.TimeoutSeconds) * time.Second
	callCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	text, err := g.llm.Chat(callCtx, gemini.Request{
		Prompt:          payload.User,
		SystemPrompt:    payload.System,
		Temperature:     g.cfg.Gemini.MapTemperature,
		MaxOutputTokens: g.cfg.Gemini.MapMaxOutputTokens,
	})
	if err != nil {
		g.logger.Warn("culture_map_generation_failed", "error", err)
		return nil, false
	}

	var parsed []CountryInsight
	if gemini.DecodeLenient(text, &parsed) == gemini.DecodeFailed {
		g.logger.Warn("culture_map_payload_unparseable")
		return nil, false
	}

	insights := make(map[string]CountryInsight, len(parsed))
	for _, insight := range parsed {
		if insight.Country == "" {
			continue
		}
		insights[insight.Country] = insight
	}
	if len(insights) == 0 {
		g.logger.Warn("culture_map_payload_empty")
		return nil, false
	}
	return insights, true
}

func staticInsights(bundle *locale.Bundle) map[string]CountryInsight {
	insights := make(map[string]CountryInsight, len(bundle.Insights))
	for country, insight := range bundle.Insights {
		insights[country] = fromLocale(insight)
	}
	return insights
}
