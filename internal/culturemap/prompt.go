package culturemap

import (
	"fmt"
	"strings"

	"github.com/culturalmind/persona-server/internal/persona"
	"github.com/culturalmind/persona-server/internal/prompt"
)

const insightsTemplate = `CRITICAL INSTRUCTION: You MUST respond ENTIRELY in {target_language}.
ALL cultural insights and recommendations must be in {target_language}.

User Personality Analysis:
- Personality Name: {persona_name}
- Traits: {traits}
- Cultural Twin: {cultural_twin}
- Description: {description}

User Preferences:
- Favorite Movies: {movies}
- Favorite Music: {music}
- Favorite Brands: {brands}
- Gender: {gender}

Based on this user's personality analysis and preferences, provide personalized cultural recommendations for the following countries.

For each country, return a JSON array containing:
- country (string) - country name
- culturalInsight (2-3 sentences) - detailed explanation about the culture in {target_language}
- recommendation (string) - general recommendation (short summary)
- music (string) - music recommendations (artist - song format)
- movies (string) - movie recommendations (movie titles)
- personalizedReason (string) - 1-2 sentences explaining why this recommendation is suitable for the user

Countries: {countries}

IMPORTANT RULES:
- All descriptions must be in {target_language}
- Consider the user's favorite movies, music, and brands
- Provide DIFFERENT TYPES of recommendations for each country
- Connect with the user's culturalTwin
- USE SPECIFIC NAMES:
  * Music: "BTS - Dynamite", "BlackPink - How You Like That"
  * Movies: "Inception", "The Matrix", "Parasite", "Spirited Away"
- Provide 3-4 music and 3-4 movie recommendations for each country
- Only respond with valid JSON list`

// BuildPrompt renders the cultural map prompt for one request.
func BuildPrompt(
	record *persona.Record,
	profile persona.TasteProfile,
	countries []string,
	targetLanguage string,
) (persona.Payload, error) {
	user, err := prompt.FormatTemplate(insightsTemplate, map[string]string{
		"target_language": targetLanguage,
		"persona_name":    record.PersonaName,
		"traits":          strings.Join(record.Traits, ", "),
		"cultural_twin":   record.CulturalTwin,
		"description":     record.Description,
		"movies":          profile.Movies,
		"music":           profile.Music,
		"brands":          profile.Brands,
		"gender":          profile.Gender,
		"countries":       strings.Join(countries, ", "),
	})
	if err != nil {
		return persona.Payload{}, fmt.Errorf("render cultural map prompt: %w", err)
	}

	return persona.Payload{
		System: fmt.Sprintf("Respond only in %s.", targetLanguage),
		User:   user,
	}, nil
}
