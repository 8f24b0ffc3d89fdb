package config

// GeminiConfig holds generation API settings.
type GeminiConfig struct {
	APIKeys []string
	Model   string

	// Persona generation favors diversity: high temperature plus nucleus
	// sampling, with the variation seed keeping structure reproducible.
	PersonaTemperature     float64
	PersonaTopP            float64
	PersonaMaxOutputTokens int

	// Cultural map generation runs at a moderate temperature with a
	// tighter output cap.
	MapTemperature     float64
	MapMaxOutputTokens int

	TimeoutSeconds int
}

// PrimaryKey returns the first configured API key.
func (g GeminiConfig) PrimaryKey() string {
	if len(g.APIKeys) == 0 {
		return ""
	}
	return g.APIKeys[0]
}

// QlooConfig holds taste-graph API settings.
type QlooConfig struct {
	BaseURL         string
	APIKey          string
	TimeoutSeconds  int
	CacheSize       int
	CacheTTLSeconds int
}

// Enabled reports whether a taste-graph credential is configured.
func (q QlooConfig) Enabled() bool {
	return q.APIKey != ""
}

// PersonaConfig holds persona pipeline settings.
type PersonaConfig struct {
	DefaultLanguage string
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level      string
	LogDir     string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// HTTPConfig holds HTTP server settings.
type HTTPConfig struct {
	Host         string
	Port         int
	HTTP2Enabled bool
}

// HTTPAuthConfig holds API key authentication settings.
type HTTPAuthConfig struct {
	APIKey string
}

// HTTPRateLimitConfig holds request throttling settings.
type HTTPRateLimitConfig struct {
	RequestsPerMinute int
	CacheSize         int
	CacheTTLSeconds   int
}

// Config is the full application configuration.
type Config struct {
	Gemini        GeminiConfig
	Qloo          QlooConfig
	Persona       PersonaConfig
	Logging       LoggingConfig
	HTTP          HTTPConfig
	HTTPAuth      HTTPAuthConfig
	HTTPRateLimit HTTPRateLimitConfig
}
