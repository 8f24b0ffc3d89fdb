package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"sync"

	"github.com/joho/godotenv"
)

var (
	configOnce  sync.Once
	configValue *Config
)

// Load reads configuration from the environment once per process.
func Load() *Config {
	configOnce.Do(func() {
		_ = godotenv.Load()
		configValue = buildConfig()
	})
	return configValue
}

// ProvideConfig loads and validates the configuration.
func ProvideConfig() (*Config, error) {
	cfg := Load()
	if cfg == nil {
		return nil, errors.New("config not initialized")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Gemini.Model == "" {
		return errors.New("gemini model required")
	}
	if c.Gemini.PersonaTemperature < 0 || c.Gemini.PersonaTemperature > 2 {
		return fmt.Errorf("persona temperature out of range: %v", c.Gemini.PersonaTemperature)
	}
	if c.Gemini.PersonaTopP <= 0 || c.Gemini.PersonaTopP > 1 {
		return fmt.Errorf("persona top_p out of range: %v", c.Gemini.PersonaTopP)
	}
	if c.Gemini.MapTemperature < 0 || c.Gemini.MapTemperature > 2 {
		return fmt.Errorf("map temperature out of range: %v", c.Gemini.MapTemperature)
	}
	if c.Gemini.TimeoutSeconds <= 0 {
		return fmt.Errorf("gemini timeout must be positive: %d", c.Gemini.TimeoutSeconds)
	}
	if _, err := url.Parse(c.Qloo.BaseURL); err != nil {
		return fmt.Errorf("qloo base url: %w", err)
	}
	return nil
}

// LogEnvStatus logs the effective environment configuration.
func LogEnvStatus(cfg *Config, logger *slog.Logger) {
	if logger == nil || cfg == nil {
		return
	}

	envFilePresent := fileExists(".env")
	logger.Debug(
		"env_status",
		"env_file", envFilePresent,
		"gemini_keys", len(cfg.Gemini.APIKeys),
		"primary_key", maskSecret(cfg.Gemini.PrimaryKey()),
		"model", cfg.Gemini.Model,
		"timeout", cfg.Gemini.TimeoutSeconds,
		"qloo_key", maskSecret(cfg.Qloo.APIKey),
		"qloo_url", cfg.Qloo.BaseURL,
		"default_language", cfg.Persona.DefaultLanguage,
	)

	if len(cfg.Gemini.APIKeys) == 0 {
		logger.Warn("env_missing_google_api_key_fallback_only")
	}
	if !cfg.Qloo.Enabled() {
		logger.Warn("env_missing_qloo_api_key_enrichment_disabled")
	}
}

func buildConfig() *Config {
	return &Config{
		Gemini: GeminiConfig{
			APIKeys:                parseAPIKeys(),
			Model:                  getEnvString("GEMINI_MODEL", "gemini-3-flash-preview"),
			PersonaTemperature:     getEnvFloat("PERSONA_TEMPERATURE", 1.0),
			PersonaTopP:            getEnvFloat("PERSONA_TOP_P", 0.9),
			PersonaMaxOutputTokens: getEnvInt("PERSONA_MAX_TOKENS", 1200),
			MapTemperature:         getEnvFloat("CULTURAL_MAP_TEMPERATURE", 0.7),
			MapMaxOutputTokens:     getEnvInt("CULTURAL_MAP_MAX_TOKENS", 800),
			TimeoutSeconds:         getEnvInt("GEMINI_TIMEOUT", 60),
		},
		Qloo: QlooConfig{
			BaseURL:         getEnvString("QLOO_API_URL", "https://hackathon.api.qloo.com"),
			APIKey:          getEnvString("QLOO_API_KEY", ""),
			TimeoutSeconds:  getEnvInt("QLOO_TIMEOUT", 5),
			CacheSize:       max(1, getEnvNonNegativeInt("QLOO_CACHE_SIZE", 1000)),
			CacheTTLSeconds: max(1, getEnvNonNegativeInt("QLOO_CACHE_TTL_SECONDS", 600)),
		},
		Persona: PersonaConfig{
			DefaultLanguage: getEnvString("DEFAULT_LANGUAGE", "en"),
		},
		Logging: LoggingConfig{
			Level:      getEnvString("LOG_LEVEL", "info"),
			LogDir:     getEnvString("LOG_DIR", ""),
			MaxSizeMB:  getEnvInt("LOG_FILE_MAX_SIZE_MB", 1),
			MaxBackups: getEnvInt("LOG_FILE_MAX_BACKUPS", 30),
			MaxAgeDays: getEnvInt("LOG_FILE_MAX_AGE_DAYS", 7),
			Compress:   getEnvBool("LOG_FILE_COMPRESS", true),
		},
		HTTP: HTTPConfig{
			Host:         getEnvString("HTTP_HOST", "0.0.0.0"),
			Port:         getEnvInt("HTTP_PORT", 8000),
			HTTP2Enabled: getEnvBool("HTTP2_ENABLED", true),
		},
		HTTPAuth: HTTPAuthConfig{
			APIKey: getEnvString("HTTP_API_KEY", ""),
		},
		HTTPRateLimit: HTTPRateLimitConfig{
			RequestsPerMinute: getEnvNonNegativeInt("HTTP_RATE_LIMIT_RPM", 0),
			CacheSize:         max(1, getEnvNonNegativeInt("HTTP_RATE_LIMIT_CACHE_SIZE", 10000)),
			CacheTTLSeconds:   max(1, getEnvNonNegativeInt("HTTP_RATE_LIMIT_CACHE_TTL_SECONDS", 120)),
		},
	}
}
