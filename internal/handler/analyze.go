package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/culturalmind/persona-server/internal/usecase/analysis"
)

// AnalyzeRequest is the analysis request body.
type AnalyzeRequest struct {
	Movies     string `json:"movies" binding:"required"`
	Music      string `json:"music" binding:"required"`
	Brands     string `json:"brands" binding:"required"`
	Gender     string `json:"gender" binding:"required"`
	Language   string `json:"language"`
	RandomSeed *int   `json:"randomSeed"`
	Variation  int    `json:"variation"`
}

// AnalyzeHandler serves the analysis endpoint.
type AnalyzeHandler struct {
	service *analysis.Service
	logger  *slog.Logger
}

// NewAnalyzeHandler creates the analysis handler.
func NewAnalyzeHandler(service *analysis.Service, logger *slog.Logger) *AnalyzeHandler {
	return &AnalyzeHandler{service: service, logger: logger}
}

// RegisterRoutes registers the analysis route.
func (h *AnalyzeHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/analyze", h.analyze)
}

// analyze keeps the legacy error contract: every failure maps to a 500
// with a detail message.
func (h *AnalyzeHandler) analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, err)
		return
	}

	result, err := h.service.Analyze(c.Request.Context(), analysis.Request{
		Movies:         req.Movies,
		Music:          req.Music,
		Brands:         req.Brands,
		Gender:         req.Gender,
		Language:       req.Language,
		AcceptLanguage: c.GetHeader("Accept-Language"),
		RandomSeed:     req.RandomSeed,
		Variation:      req.Variation,
	})
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AnalyzeHandler) fail(c *gin.Context, err error) {
	h.logger.Error("analysis_failed", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"detail": fmt.Sprintf("Analysis failed: %s", err.Error()),
	})
}
