package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var bundleFS embed.FS

// DefaultCode is the language every unknown code resolves to.
const DefaultCode = "en"

// DNARegion is one region of the static cultural DNA breakdown. The final
// percentage is Base plus a seed-derived offset below Range.
type DNARegion struct {
	Name  string `yaml:"name"`
	Base  int    `yaml:"base"`
	Range int    `yaml:"range"`
}

// Archetype names the static personality archetype for a language.
type Archetype struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// CountryInsight is the static per-country recommendation block.
type CountryInsight struct {
	Country            string `yaml:"country"`
	CulturalInsight    string `yaml:"cultural_insight"`
	Recommendation     string `yaml:"recommendation"`
	Music              string `yaml:"music"`
	Movies             string `yaml:"movies"`
	PersonalizedReason string `yaml:"personalized_reason"`
}

// Bundle holds all localized static content for one language.
type Bundle struct {
	Code         string                    `yaml:"-"`
	DisplayName  string                    `yaml:"display_name"`
	PersonaNames []string                  `yaml:"persona_names"`
	Traits       []string                  `yaml:"traits"`
	Description  string                    `yaml:"description"`
	Interests    []string                  `yaml:"interests"`
	DNA          []DNARegion               `yaml:"dna"`
	Archetype    Archetype                 `yaml:"archetype"`
	Insights     map[string]CountryInsight `yaml:"insights"`
}

// Table is the full set of language bundles.
type Table struct {
	bundles map[string]*Bundle
}

// NewTable parses every embedded bundle. It fails if a bundle is malformed
// or the default language is missing.
func NewTable() (*Table, error) {
	entries, err := fs.Glob(bundleFS, "data/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("list locale bundles failed: %w", err)
	}

	bundles := make(map[string]*Bundle, len(entries))
	for _, path := range entries {
		raw, err := bundleFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read locale bundle %s failed: %w", path, err)
		}

		bundle := &Bundle{}
		if err := yaml.Unmarshal(raw, bundle); err != nil {
			return nil, fmt.Errorf("parse locale bundle %s failed: %w", path, err)
		}

		code := strings.TrimSuffix(filepath.Base(path), ".yaml")
		bundle.Code = code
		if err := validateBundle(bundle); err != nil {
			return nil, fmt.Errorf("invalid locale bundle %s: %w", path, err)
		}
		bundles[code] = bundle
	}

	if _, ok := bundles[DefaultCode]; !ok {
		return nil, fmt.Errorf("default locale bundle %q missing", DefaultCode)
	}

	return &Table{bundles: bundles}, nil
}

// Resolve normalizes a language code, falling back to the default for
// unknown codes.
func (t *Table) Resolve(code string) string {
	normalized := strings.ToLower(strings.TrimSpace(code))
	if _, ok := t.bundles[normalized]; ok {
		return normalized
	}
	return DefaultCode
}

// Bundle returns the bundle for a language code, falling back to the
// default bundle for unknown codes.
func (t *Table) Bundle(code string) *Bundle {
	return t.bundles[t.Resolve(code)]
}

// DisplayName returns the English name of a language, used to direct the
// model's output language.
func (t *Table) DisplayName(code string) string {
	return t.Bundle(code).DisplayName
}

// Codes lists all supported language codes in sorted order.
func (t *Table) Codes() []string {
	codes := make([]string, 0, len(t.bundles))
	for code := range t.bundles {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func validateBundle(bundle *Bundle) error {
	if bundle.DisplayName == "" {
		return fmt.Errorf("display_name required")
	}
	if len(bundle.PersonaNames) == 0 {
		return fmt.Errorf("persona_names required")
	}
	if len(bundle.Traits) == 0 {
		return fmt.Errorf("traits required")
	}
	if bundle.Description == "" {
		return fmt.Errorf("description required")
	}
	if len(bundle.Interests) == 0 {
		return fmt.Errorf("interests required")
	}
	if len(bundle.DNA) == 0 {
		return fmt.Errorf("dna regions required")
	}
	for _, region := range bundle.DNA {
		if region.Name == "" || region.Base <= 0 || region.Range <= 0 {
			return fmt.Errorf("invalid dna region %+v", region)
		}
	}
	if bundle.Archetype.Name == "" {
		return fmt.Errorf("archetype required")
	}
	if len(bundle.Insights) == 0 {
		return fmt.Errorf("insights required")
	}
	for country, insight := range bundle.Insights {
		if insight.Country != country {
			return fmt.Errorf("insight key %q does not match country %q", country, insight.Country)
		}
	}
	return nil
}
