package di

import (
	"log/slog"
	"net/http"

	"github.com/culturalmind/persona-server/internal/config"
	"github.com/culturalmind/persona-server/internal/metrics"
)

// App bundles the application components.
type App struct {
	Server  *http.Server
	Logger  *slog.Logger
	Config  *config.Config
	Metrics *metrics.Store
}

// NewApp creates an App instance.
func NewApp(server *http.Server, logger *slog.Logger, cfg *config.Config, metricsStore *metrics.Store) *App {
	return &App{
		Server:  server,
		Logger:  logger,
		Config:  cfg,
		Metrics: metricsStore,
	}
}
