package persona

// TasteProfile is the user's raw preference input.
type TasteProfile struct {
	Movies string
	Music  string
	Brands string
	Gender string
}

// Archetype is the persona's personality archetype.
type Archetype struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Record is the generated cultural persona. The JSON field names are part
// of the client contract.
type Record struct {
	PersonaName      string            `json:"personaName"`
	Traits           []string          `json:"traits"`
	CulturalTwin     string            `json:"culturalTwin"`
	Description      string            `json:"description"`
	Interests        []string          `json:"interests"`
	CulturalDNAScore map[string]string `json:"culturalDNAScore"`
	Archetype        Archetype         `json:"archetype"`
}

// Complete reports whether the record has every field a client needs to
// render. Incomplete model output falls back to the static persona.
func (r *Record) Complete() bool {
	return r.PersonaName != "" &&
		len(r.Traits) > 0 &&
		r.CulturalTwin != "" &&
		r.Description != "" &&
		len(r.Interests) > 0 &&
		len(r.CulturalDNAScore) > 0 &&
		r.Archetype.Name != ""
}
