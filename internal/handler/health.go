package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/culturalmind/persona-server/internal/config"
	"github.com/culturalmind/persona-server/internal/health"
	"github.com/culturalmind/persona-server/internal/metrics"
)

// RegisterHealthRoutes registers the health and metrics routes.
func RegisterHealthRoutes(router *gin.Engine, cfg *config.Config, metricsStore *metrics.Store) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, health.Collect(cfg))
	})

	// Readiness mirrors liveness: a missing generation key degrades but
	// the fallback path still serves.
	router.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, health.Collect(cfg))
	})

	router.GET("/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, metricsStore.Snapshot())
	})
}
