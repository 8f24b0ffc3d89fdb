package di

import (
	"fmt"

	"github.com/culturalmind/persona-server/internal/config"
	"github.com/culturalmind/persona-server/internal/culturemap"
	"github.com/culturalmind/persona-server/internal/gemini"
	"github.com/culturalmind/persona-server/internal/handler"
	"github.com/culturalmind/persona-server/internal/locale"
	"github.com/culturalmind/persona-server/internal/metrics"
	"github.com/culturalmind/persona-server/internal/persona"
	"github.com/culturalmind/persona-server/internal/qloo"
	"github.com/culturalmind/persona-server/internal/server"
	"github.com/culturalmind/persona-server/internal/usecase/analysis"
)

// InitializeApp initializes the application dependency graph and returns
// the App instance.
func InitializeApp() (*App, error) {
	cfg, err := config.ProvideConfig()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	metricsStore := metrics.NewStore()

	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}

	locales, err := locale.NewTable()
	if err != nil {
		return nil, fmt.Errorf("locale table: %w", err)
	}

	geminiClient, err := gemini.NewClient(cfg, metricsStore)
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	tasteClient := qloo.NewClient(cfg.Qloo, metricsStore, logger)
	personaGenerator := persona.NewGenerator(geminiClient, cfg, locales, metricsStore, logger)
	cultureMapGenerator := culturemap.NewGenerator(geminiClient, cfg, locales, metricsStore, logger)
	analysisService := analysis.NewService(cfg, personaGenerator, cultureMapGenerator, tasteClient, locales, logger)

	analyzeHandler := handler.NewAnalyzeHandler(analysisService, logger)
	router := handler.NewRouter(cfg, logger, metricsStore, analyzeHandler)
	httpServer := server.NewHTTPServer(cfg, router)

	return NewApp(httpServer, logger, cfg, metricsStore), nil
}
