package qloo

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/culturalmind/persona-server/internal/cache"
	"github.com/culturalmind/persona-server/internal/config"
	"github.com/culturalmind/persona-server/internal/metrics"
)

// EntityTypeArtist and EntityTypeMovie are the taste-graph entity types
// used for preference enrichment.
const (
	EntityTypeArtist = "artist"
	EntityTypeMovie  = "movie"
	EntityTypeBrand  = "brand"
)

type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Client queries the Qloo taste graph. Without an API key every lookup is
// a no-op so the rest of the pipeline keeps working.
type Client struct {
	cfg     config.QlooConfig
	http    *http.Client
	cache   *cache.TTLCache[string, string]
	metrics *metrics.Store
	logger  *slog.Logger
	now     func() time.Time
}

// NewClient creates a taste-graph client.
func NewClient(cfg config.QlooConfig, metricsStore *metrics.Store, logger *slog.Logger) *Client {
	cacheSize := cfg.CacheSize
	if cacheSize <= 0 {
		cacheSize = 256
	}
	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		cache:   cache.NewTTLCache[string, string](cacheSize, cacheTTL),
		metrics: metricsStore,
		logger:  logger,
		now:     time.Now,
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.cfg.Enabled()
}

// SearchEntity resolves a free-text query to the first entity id whose type
// matches entityType. Returns an empty id when nothing matches or the
// client is disabled.
func (c *Client) SearchEntity(ctx context.Context, query string, entityType string) (string, error) {
	if !c.Enabled() || strings.TrimSpace(query) == "" {
		return "", nil
	}

	cacheKey := entityType + ":" + strings.ToLower(strings.TrimSpace(query))
	if id, ok := c.cache.Get(cacheKey); ok {
		return id, nil
	}

	endpoint := fmt.Sprintf("%s/search?query=%s", c.cfg.BaseURL, url.QueryEscape(query))
	var parsed searchResponse
	err := c.getJSON(ctx, endpoint, &parsed)
	c.metrics.RecordQlooLookup(err)
	if err != nil {
		c.logger.Warn("qloo_search_failed", "query", query, "error", err)
		return "", err
	}

	for _, result := range parsed.Results {
		if strings.Contains(strings.ToLower(result.Type), entityType) {
			c.cache.Set(cacheKey, result.ID)
			return result.ID, nil
		}
	}

	c.cache.Set(cacheKey, "")
	return "", nil
}

// Trending lists entity names trending against the given entity since the
// start of the year. Returns nil when disabled or the id is empty.
func (c *Client) Trending(ctx context.Context, entityID string, entityType string) ([]string, error) {
	if !c.Enabled() || entityID == "" {
		return nil, nil
	}

	today := c.now()
	startDate := fmt.Sprintf("%d-01-01", today.Year())
	endDate := today.Format("2006-01-02")

	endpoint := fmt.Sprintf(
		"%s/v2/insights?filter.start_date=%s&filter.end_date=%s&filter.type=urn:entity:%s&signal.interests.entities=%s",
		c.cfg.BaseURL,
		startDate,
		endDate,
		entityType,
		url.QueryEscape(entityID),
	)

	var parsed searchResponse
	err := c.getJSON(ctx, endpoint, &parsed)
	c.metrics.RecordQlooLookup(err)
	if err != nil {
		c.logger.Warn("qloo_trending_failed", "entity_id", entityID, "error", err)
		return nil, err
	}

	names := make([]string, 0, len(parsed.Results))
	for _, result := range parsed.Results {
		if result.Name != "" {
			names = append(names, result.Name)
		}
	}
	return names, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build qloo request: %w", err)
	}
	req.Header.Set("x-api-key", c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("qloo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("qloo status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode qloo response: %w", err)
	}
	return nil
}
