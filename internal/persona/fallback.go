package persona

import (
	"fmt"
	"strings"

	"github.com/culturalmind/persona-server/internal/locale"
)

var twinCelebrities = []string{
	"Tom Hanks", "Beyoncé", "Leonardo DiCaprio", "Taylor Swift", "Brad Pitt",
	"Adele", "Johnny Depp", "Ed Sheeran", "Ariana Grande", "Drake",
}

// Fallback builds the deterministic persona served when generation is
// unavailable. The same bundle, profile, and seed always yield the same
// record.
func Fallback(bundle *locale.Bundle, profile TasteProfile, seed int) *Record {
	dna := make(map[string]string, len(bundle.DNA))
	for _, region := range bundle.DNA {
		dna[region.Name] = fmt.Sprintf("%d%%", region.Base+index(seed, region.Range))
	}

	return &Record{
		PersonaName:      bundle.PersonaNames[index(seed, len(bundle.PersonaNames))],
		Traits:           bundle.Traits,
		CulturalTwin:     pickTwin(profile, seed),
		Description:      bundle.Description,
		Interests:        bundle.Interests,
		CulturalDNAScore: dna,
		Archetype: Archetype{
			Name:        bundle.Archetype.Name,
			Description: bundle.Archetype.Description,
		},
	}
}

// pickTwin matches well-known preference keywords first, then falls back
// to a seed-selected celebrity.
func pickTwin(profile TasteProfile, seed int) string {
	movies := strings.ToLower(profile.Movies)
	music := strings.ToLower(profile.Music)
	brands := strings.ToLower(profile.Brands)

	switch {
	case strings.Contains(movies, "iron man") || strings.Contains(movies, "marvel"):
		return "Robert Downey Jr."
	case strings.Contains(music, "rock") || strings.Contains(music, "acdc"):
		return "Angus Young"
	case strings.Contains(brands, "nike"):
		return "Michael Jordan"
	default:
		return twinCelebrities[index(seed, len(twinCelebrities))]
	}
}
