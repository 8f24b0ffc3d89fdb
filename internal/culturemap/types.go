package culturemap

import "github.com/culturalmind/persona-server/internal/locale"

// CountryInsight is one per-country recommendation block. The JSON field
// names are part of the client contract.
type CountryInsight struct {
	Country            string `json:"country"`
	CulturalInsight    string `json:"culturalInsight"`
	Recommendation     string `json:"recommendation"`
	Music              string `json:"music"`
	Movies             string `json:"movies"`
	PersonalizedReason string `json:"personalizedReason"`
}

// fromLocale converts a static locale insight into the response shape.
func fromLocale(insight locale.CountryInsight) CountryInsight {
	return CountryInsight{
		Country:            insight.Country,
		CulturalInsight:    insight.CulturalInsight,
		Recommendation:     insight.Recommendation,
		Music:              insight.Music,
		Movies:             insight.Movies,
		PersonalizedReason: insight.PersonalizedReason,
	}
}
