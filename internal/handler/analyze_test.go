package handler

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/culturalmind/persona-server/internal/config"
	"github.com/culturalmind/persona-server/internal/culturemap"
	"github.com/culturalmind/persona-server/internal/gemini"
	"github.com/culturalmind/persona-server/internal/locale"
	"github.com/culturalmind/persona-server/internal/metrics"
	"github.com/culturalmind/persona-server/internal/persona"
	"github.com/culturalmind/persona-server/internal/qloo"
	"github.com/culturalmind/persona-server/internal/usecase/analysis"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Gemini: config.GeminiConfig{
			Model:                  "gemini-2.0-flash",
			PersonaTemperature:     1.0,
			PersonaTopP:            0.9,
			PersonaMaxOutputTokens: 1200,
			MapTemperature:         0.7,
			MapMaxOutputTokens:     800,
			TimeoutSeconds:         60,
		},
		Persona: config.PersonaConfig{DefaultLanguage: "en"},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := metrics.NewStore()

	locales, err := locale.NewTable()
	if err != nil {
		t.Fatalf("load locales: %v", err)
	}
	llm, err := gemini.NewClient(cfg, store)
	if err != nil {
		t.Fatalf("create client: %v", err)
	}
	taste := qloo.NewClient(cfg.Qloo, store, logger)
	personas := persona.NewGenerator(llm, cfg, locales, store, logger)
	cultureMap := culturemap.NewGenerator(llm, cfg, locales, store, logger)
	service := analysis.NewService(cfg, personas, cultureMap, taste, locales, logger)

	return NewRouter(cfg, logger, store, NewAnalyzeHandler(service, logger))
}

func postAnalyze(t *testing.T, router *gin.Engine, body map[string]any, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	for key, value := range header {
		req.Header.Set(key, value)
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAnalyzeFallbackResponse(t *testing.T) {
	router := newTestRouter(t)

	seed := 123
	resp := postAnalyze(t, router, map[string]any{
		"movies":     "Inception",
		"music":      "acdc",
		"brands":     "Adidas",
		"gender":     "female",
		"language":   "tr",
		"randomSeed": seed,
	}, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Result          string                               `json:"result"`
		CulturalTwin    string                               `json:"culturalTwin"`
		CountryInsights map[string]culturemap.CountryInsight `json:"countryInsights"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if body.CulturalTwin != "Angus Young" {
		t.Fatalf("expected Angus Young twin, got %q", body.CulturalTwin)
	}
	if len(body.CountryInsights) != 4 {
		t.Fatalf("expected 4 fallback insights, got %d", len(body.CountryInsights))
	}
	if _, ok := body.CountryInsights["South Korea"]; !ok {
		t.Fatalf("expected South Korea insight, got %v", body.CountryInsights)
	}

	var record persona.Record
	if err := json.Unmarshal([]byte(body.Result), &record); err != nil {
		t.Fatalf("decode embedded persona: %v", err)
	}
	if record.PersonaName == "" {
		t.Fatal("expected persona name")
	}
	if record.CulturalTwin != body.CulturalTwin {
		t.Fatalf("twin mismatch: %q vs %q", record.CulturalTwin, body.CulturalTwin)
	}
	if record.Archetype.Name != "Kültürel Keşifçi" {
		t.Fatalf("expected Turkish archetype, got %q", record.Archetype.Name)
	}
	if record.CulturalDNAScore["Türkiye"] != "18%" {
		t.Fatalf("unexpected DNA score: %v", record.CulturalDNAScore)
	}
}

func TestAnalyzeAcceptLanguageFallback(t *testing.T) {
	router := newTestRouter(t)

	resp := postAnalyze(t, router, map[string]any{
		"movies":   "Inception",
		"music":    "jazz",
		"brands":   "Adidas",
		"gender":   "male",
		"language": "en",
	}, map[string]string{"Accept-Language": "tr-TR,tr;q=0.9,en;q=0.8"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var body struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	var record persona.Record
	if err := json.Unmarshal([]byte(body.Result), &record); err != nil {
		t.Fatalf("decode embedded persona: %v", err)
	}
	if record.Archetype.Name != "Kültürel Keşifçi" {
		t.Fatalf("expected Turkish persona via Accept-Language, got %q", record.Archetype.Name)
	}
}

func TestAnalyzeRejectsIncompleteBody(t *testing.T) {
	router := newTestRouter(t)

	resp := postAnalyze(t, router, map[string]any{
		"music":  "jazz",
		"brands": "Adidas",
		"gender": "male",
	}, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}

	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Detail == "" || !bytes.HasPrefix([]byte(body.Detail), []byte("Analysis failed:")) {
		t.Fatalf("expected failure detail, got %q", body.Detail)
	}
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	for _, path := range []string{"/health", "/health/ready"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusOK {
			t.Fatalf("expected 200 on %s, got %d", path, resp.Code)
		}

		var body struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode %s response: %v", path, err)
		}
		if body.Status != "degraded" {
			t.Fatalf("expected degraded without API key, got %q", body.Status)
		}
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	postAnalyze(t, router, map[string]any{
		"movies": "Inception", "music": "jazz", "brands": "Adidas", "gender": "male",
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var snapshot map[string]float64
	if err := json.Unmarshal(resp.Body.Bytes(), &snapshot); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snapshot["total_fallbacks"] < 1 {
		t.Fatalf("expected fallback recorded, got %v", snapshot)
	}
}
