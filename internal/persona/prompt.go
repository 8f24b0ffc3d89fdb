package persona

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/culturalmind/persona-server/internal/prompt"
)

const personaTemplate = `Analyze the user's taste preferences and create a detailed cultural persona.

CRITICAL LANGUAGE REQUIREMENT: You MUST respond ENTIRELY in {target_language}.
- All text in the JSON response MUST be in {target_language}
- personaName, traits, description, interests, and archetype MUST be in {target_language}
- culturalDNAScore region names can be in English (North America, Europe, etc.)

VARIATION SEED: {seed} (Use this to create different results each time)
ANALYSIS STYLE: {style}
APPROACH: {approach}
EMOTION: {emotion}
PERSPECTIVE: {perspective}
FOCUS: {focus}
ADDITIONAL INSTRUCTIONS: {instructions}

CELEBRITY SELECTION: Choose a REAL famous person as culturalTwin based on the user's preferences.
- The celebrity should match the user's movie, music, and brand preferences
- Choose someone who represents similar cultural values and lifestyle
- The celebrity should be well-known and recognizable

USER PREFERENCES ANALYSIS:
- Movies: {movies} (Analyze the user's movie preferences and what they reveal about personality)
- Music: {music} (Analyze the user's music taste and what it indicates about their cultural background)
- Brands: {brands} (Analyze the user's brand preferences and what they suggest about lifestyle and values)
- Gender: {gender} (Consider gender identity in cultural context)

Create a JSON response with the following structure (ALL TEXT VALUES MUST BE IN {target_language}):
{{
    "personaName": "Creative name in {target_language} based on preferences and variation seed {seed}",
    "traits": ["trait1", "trait2", "trait3", "trait4", "trait5"],
    "culturalTwin": "Choose a celebrity based on user preferences",
    "description": "2-3 sentence personality description that reflects the user's preferences",
    "interests": ["interest1", "interest2", "interest3"],
    "culturalDNAScore": {{
        "region1": "percentage%",
        "region2": "percentage%",
        "region3": "percentage%",
        "region4": "percentage%"
    }},
    "archetype": {{
        "name": "archetype name",
        "description": "1 sentence description"
    }}
}}

IMPORTANT FOR culturalDNAScore:
- Use REAL region/country names like: "North America", "Europe", "Asia", "Turkey", "USA", "UK", "Japan", "South Korea"
- DO NOT use generic terms like "Global", "Local", "Mixed"
- Total of all percentages should equal 100%
- Use 3-4 regions maximum

FINAL REMINDER:
- culturalTwin MUST be a REAL famous person's name
- DO NOT use "Unknown"
- ALL TEXT IN THE JSON RESPONSE MUST BE IN {target_language}
- CRITICAL: Each variation seed must produce a completely different result`

// Payload is a fully rendered generation request.
type Payload struct {
	System string
	User   string
}

// BuildPrompt renders the persona prompt for one request.
func BuildPrompt(profile TasteProfile, targetLanguage string, variation Variation) (Payload, error) {
	user, err := prompt.FormatTemplate(personaTemplate, map[string]string{
		"target_language": targetLanguage,
		"seed":            strconv.Itoa(variation.Seed),
		"style":           variation.Style,
		"approach":        variation.Approach,
		"emotion":         variation.Emotion,
		"perspective":     variation.Perspective,
		"focus":           variation.Focus,
		"instructions":    strings.Join(variation.Instructions, "; "),
		"movies":          profile.Movies,
		"music":           profile.Music,
		"brands":          profile.Brands,
		"gender":          profile.Gender,
	})
	if err != nil {
		return Payload{}, fmt.Errorf("render persona prompt: %w", err)
	}

	return Payload{
		System: fmt.Sprintf("Respond only in %s.", targetLanguage),
		User:   user,
	}, nil
}
