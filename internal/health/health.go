package health

import (
	"time"

	"github.com/culturalmind/persona-server/internal/config"
)

var startTime = time.Now()

// Component is one health status entry.
type Component struct {
	Status string         `json:"status"`
	Detail map[string]any `json:"detail"`
}

// Response is the health endpoint body.
type Response struct {
	Status     string               `json:"status"`
	Components map[string]Component `json:"components"`
}

// Collect gathers the service health status. Generation without an API key
// still serves fallback personas, so a missing key degrades instead of
// failing.
func Collect(cfg *config.Config) Response {
	components := map[string]Component{
		"app":    buildAppStatus(),
		"gemini": buildGeminiStatus(cfg),
		"qloo":   buildQlooStatus(cfg),
	}

	overall := "ok"
	if components["gemini"].Status != "ok" {
		overall = "degraded"
	}

	return Response{
		Status:     overall,
		Components: components,
	}
}

func buildAppStatus() Component {
	return Component{
		Status: "ok",
		Detail: map[string]any{
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		},
	}
}

func buildGeminiStatus(cfg *config.Config) Component {
	apiKeyPresent := false
	model := ""
	timeoutSeconds := 0

	if cfg != nil {
		apiKeyPresent = cfg.Gemini.PrimaryKey() != ""
		model = cfg.Gemini.Model
		timeoutSeconds = cfg.Gemini.TimeoutSeconds
	}
	status := "ok"
	if !apiKeyPresent {
		status = "degraded"
	}

	return Component{
		Status: status,
		Detail: map[string]any{
			"api_key_present": apiKeyPresent,
			"model":           model,
			"timeout_seconds": timeoutSeconds,
		},
	}
}

// buildQlooStatus never degrades overall health: enrichment is optional.
func buildQlooStatus(cfg *config.Config) Component {
	enabled := false
	baseURL := ""
	if cfg != nil {
		enabled = cfg.Qloo.Enabled()
		baseURL = cfg.Qloo.BaseURL
	}

	return Component{
		Status: "ok",
		Detail: map[string]any{
			"enabled":  enabled,
			"base_url": baseURL,
		},
	}
}
