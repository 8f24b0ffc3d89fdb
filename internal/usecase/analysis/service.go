package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	"github.com/culturalmind/persona-server/internal/config"
	"github.com/culturalmind/persona-server/internal/culturemap"
	"github.com/culturalmind/persona-server/internal/locale"
	"github.com/culturalmind/persona-server/internal/persona"
	"github.com/culturalmind/persona-server/internal/qloo"
)

// sampleCountries is the canonical country list for the cultural map.
var sampleCountries = []string{
	"USA", "South Korea", "UK", "Japan", "Germany", "France", "Italy",
	"Spain", "Canada", "Australia", "Brazil", "India", "China", "Russia",
}

// Request is one analysis request after HTTP binding.
type Request struct {
	Movies         string
	Music          string
	Brands         string
	Gender         string
	Language       string
	AcceptLanguage string
	RandomSeed     *int
	Variation      int
}

// Result is the analysis response. Result carries the persona record as an
// embedded JSON string, which is the shape clients expect.
type Result struct {
	Result          string                               `json:"result"`
	CulturalTwin    string                               `json:"culturalTwin"`
	CountryInsights map[string]culturemap.CountryInsight `json:"countryInsights"`
}

// Service runs the full analysis pipeline: taste-graph enrichment, persona
// generation, and the per-country cultural map.
type Service struct {
	cfg        *config.Config
	personas   *persona.Generator
	cultureMap *culturemap.Generator
	taste      *qloo.Client
	locales    *locale.Table
	logger     *slog.Logger
}

// NewService creates the analysis service.
func NewService(
	cfg *config.Config,
	personas *persona.Generator,
	cultureMap *culturemap.Generator,
	taste *qloo.Client,
	locales *locale.Table,
	logger *slog.Logger,
) *Service {
	return &Service{
		cfg:        cfg,
		personas:   personas,
		cultureMap: cultureMap,
		taste:      taste,
		locales:    locales,
		logger:     logger,
	}
}

// Analyze builds the persona and cultural map for one request.
func (s *Service) Analyze(ctx context.Context, req Request) (*Result, error) {
	language := s.resolveLanguage(req.Language, req.AcceptLanguage)
	seed := chooseSeed(req)
	profile := persona.TasteProfile{
		Movies: req.Movies,
		Music:  req.Music,
		Brands: req.Brands,
		Gender: req.Gender,
	}

	suggestions := s.enrich(ctx, profile)
	if len(suggestions) > 0 {
		s.logger.Info("taste_graph_suggestions", "count", len(suggestions), "names", suggestions)
	}

	record := s.personas.Generate(ctx, profile, language, seed)
	insights := s.cultureMap.GenerateInsights(ctx, record, profile, sampleCountries, language)

	encoded, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encode persona: %w", err)
	}

	return &Result{
		Result:          string(encoded),
		CulturalTwin:    record.CulturalTwin,
		CountryInsights: insights,
	}, nil
}

// enrich resolves each preference against the taste graph and collects
// trending names. Lookup failures are logged by the client and never block
// the analysis.
func (s *Service) enrich(ctx context.Context, profile persona.TasteProfile) []string {
	lookups := []struct {
		query      string
		entityType string
	}{
		{profile.Music, qloo.EntityTypeArtist},
		{profile.Movies, qloo.EntityTypeMovie},
		{profile.Brands, qloo.EntityTypeBrand},
	}

	results := make([][]string, len(lookups))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, lookup := range lookups {
		group.Go(func() error {
			id, err := s.taste.SearchEntity(groupCtx, lookup.query, lookup.entityType)
			if err != nil || id == "" {
				return nil
			}
			names, err := s.taste.Trending(groupCtx, id, lookup.entityType)
			if err != nil {
				return nil
			}
			results[i] = names
			return nil
		})
	}
	_ = group.Wait()

	var suggestions []string
	for _, names := range results {
		suggestions = append(suggestions, names...)
	}
	return suggestions
}

// resolveLanguage picks the response language: an explicit supported body
// language wins; when the body language is absent or the configured
// default, the first Accept-Language tag is used if it names a supported
// language; anything unrecognized falls back to the configured default.
func (s *Service) resolveLanguage(bodyLanguage string, acceptLanguage string) string {
	defaultLanguage := s.defaultLanguage()
	language := strings.ToLower(strings.TrimSpace(bodyLanguage))
	if language == "" {
		language = defaultLanguage
	}

	if language == defaultLanguage && acceptLanguage != "" {
		first := strings.SplitN(acceptLanguage, ",", 2)[0]
		base := strings.TrimSpace(strings.SplitN(first, "-", 2)[0])
		if base != "" && s.supported(base) {
			language = base
		}
	}

	if !s.supported(language) {
		return defaultLanguage
	}
	return s.locales.Resolve(language)
}

func (s *Service) defaultLanguage() string {
	code := strings.ToLower(strings.TrimSpace(s.cfg.Persona.DefaultLanguage))
	if code == "" || !s.supported(code) {
		return locale.DefaultCode
	}
	return code
}

func (s *Service) supported(code string) bool {
	return s.locales.Resolve(code) == strings.ToLower(strings.TrimSpace(code))
}

// chooseSeed prefers an explicit randomSeed over the legacy variation field.
func chooseSeed(req Request) int {
	if req.RandomSeed != nil {
		return *req.RandomSeed
	}
	return req.Variation
}
