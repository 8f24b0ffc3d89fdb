package persona

import "fmt"

var (
	styles = []string{
		"creative", "analytical", "artistic", "scientific", "philosophical",
		"psychological", "sociological", "anthropological", "poetic",
		"narrative", "intuitive", "logical",
	}
	approaches = []string{
		"focus on personality", "emphasize cultural aspects", "highlight interests",
		"describe traits", "explore background", "analyze preferences",
		"examine choices", "interpret tastes", "delve into character",
		"uncover identity", "reveal essence", "capture spirit",
	}
	emotions = []string{
		"enthusiastic", "thoughtful", "curious", "passionate", "reflective",
		"inspired", "fascinated", "intrigued", "excited", "contemplative",
		"amazed", "delighted",
	}
	perspectives = []string{
		"modern", "traditional", "global", "local", "universal", "personal",
		"cultural", "social", "contemporary", "timeless", "progressive", "classic",
	}
	focuses = []string{
		"individual traits", "cultural connections", "personal interests",
		"social dynamics", "creative expression", "intellectual curiosity",
		"emotional depth", "spiritual awareness", "life philosophy", "worldview",
	}

	instructionTypes = []string{"metaphors", "analogies", "descriptions", "comparisons", "stories", "examples", "symbols", "archetypes"}
	aspectTypes      = []string{"emotional", "intellectual", "social", "creative", "spiritual", "practical", "artistic", "analytical"}
	influenceTypes   = []string{"modern", "traditional", "global", "local", "urban", "rural", "cosmopolitan", "authentic"}
	dimensionTypes   = []string{"personal", "cultural", "social", "artistic", "professional", "lifestyle", "values", "aspirations"}
	perspectiveTypes = []string{"positive", "neutral", "optimistic", "realistic", "idealistic", "pragmatic", "romantic"}
	toneTypes        = []string{"conversational", "formal", "poetic", "analytical", "narrative", "descriptive"}
)

// Variation is the seed-derived prompt conditioning. The same seed always
// yields the same variation.
type Variation struct {
	Seed         int
	Style        string
	Approach     string
	Emotion      string
	Perspective  string
	Focus        string
	Instructions []string
}

// DeriveVariation maps a seed onto the prompt option lists.
func DeriveVariation(seed int) Variation {
	return Variation{
		Seed:        seed,
		Style:       styles[index(seed, len(styles))],
		Approach:    approaches[index(seed, len(approaches))],
		Emotion:     emotions[index(seed, len(emotions))],
		Perspective: perspectives[index(seed, len(perspectives))],
		Focus:       focuses[index(seed, len(focuses))],
		Instructions: []string{
			fmt.Sprintf("Use %s to describe the personality", instructionTypes[index(seed, len(instructionTypes))]),
			fmt.Sprintf("Emphasize %s aspects", aspectTypes[index(seed, len(aspectTypes))]),
			fmt.Sprintf("Consider %s influences", influenceTypes[index(seed, len(influenceTypes))]),
			fmt.Sprintf("Focus on %s dimensions", dimensionTypes[index(seed, len(dimensionTypes))]),
			fmt.Sprintf("Approach from a %s perspective", perspectiveTypes[index(seed, len(perspectiveTypes))]),
			fmt.Sprintf("Write in a %s tone", toneTypes[index(seed, len(toneTypes))]),
		},
	}
}

// index wraps a seed onto a list index, staying non-negative for negative
// seeds.
func index(seed int, n int) int {
	i := seed % n
	if i < 0 {
		i += n
	}
	return i
}
