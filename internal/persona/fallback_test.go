package persona

import (
	"testing"

	"github.com/culturalmind/persona-server/internal/locale"
)

func testBundle(t *testing.T, code string) *locale.Bundle {
	t.Helper()
	table, err := locale.NewTable()
	if err != nil {
		t.Fatalf("load locale table: %v", err)
	}
	return table.Bundle(code)
}

func TestFallbackDeterministic(t *testing.T) {
	bundle := testBundle(t, "tr")
	profile := TasteProfile{Movies: "Inception", Music: "jazz", Brands: "Apple", Gender: "female"}

	first := Fallback(bundle, profile, 123)
	second := Fallback(bundle, profile, 123)

	if first.PersonaName != second.PersonaName {
		t.Fatalf("persona name not deterministic: %s vs %s", first.PersonaName, second.PersonaName)
	}
	if first.CulturalTwin != second.CulturalTwin {
		t.Fatalf("twin not deterministic")
	}
	for region, score := range first.CulturalDNAScore {
		if second.CulturalDNAScore[region] != score {
			t.Fatalf("dna not deterministic for %s", region)
		}
	}
}

func TestFallbackSeedSelectsName(t *testing.T) {
	bundle := testBundle(t, "en")
	profile := TasteProfile{}

	record := Fallback(bundle, profile, 16)
	if record.PersonaName != bundle.PersonaNames[1] {
		t.Fatalf("expected name index 1, got %s", record.PersonaName)
	}

	record = Fallback(bundle, profile, -1)
	if record.PersonaName != bundle.PersonaNames[14] {
		t.Fatalf("expected negative seed to wrap, got %s", record.PersonaName)
	}
}

func TestFallbackKeywordTwins(t *testing.T) {
	bundle := testBundle(t, "en")

	cases := []struct {
		profile TasteProfile
		want    string
	}{
		{TasteProfile{Movies: "Iron Man 3"}, "Robert Downey Jr."},
		{TasteProfile{Movies: "anything Marvel"}, "Robert Downey Jr."},
		{TasteProfile{Music: "classic rock"}, "Angus Young"},
		{TasteProfile{Music: "acdc"}, "Angus Young"},
		{TasteProfile{Brands: "Nike, Adidas"}, "Michael Jordan"},
	}
	for _, tc := range cases {
		record := Fallback(bundle, tc.profile, 0)
		if record.CulturalTwin != tc.want {
			t.Errorf("profile %+v: expected %s, got %s", tc.profile, tc.want, record.CulturalTwin)
		}
	}

	// No keyword match uses the seeded celebrity list.
	record := Fallback(bundle, TasteProfile{Music: "jazz"}, 3)
	if record.CulturalTwin != "Taylor Swift" {
		t.Errorf("expected seeded celebrity, got %s", record.CulturalTwin)
	}
}

func TestFallbackDNAWithinRange(t *testing.T) {
	bundle := testBundle(t, "tr")

	record := Fallback(bundle, TasteProfile{}, 123)
	if len(record.CulturalDNAScore) != 4 {
		t.Fatalf("expected 4 regions, got %d", len(record.CulturalDNAScore))
	}
	// seed 123: 30+(123%20)=33, 20+(123%15)=23, 25+(123%15)=28, 15+(123%10)=18
	expected := map[string]string{
		"Kuzey Amerika": "33%",
		"Avrupa":        "23%",
		"Asya":          "28%",
		"Türkiye":       "18%",
	}
	for region, want := range expected {
		if record.CulturalDNAScore[region] != want {
			t.Errorf("region %s: expected %s, got %s", region, want, record.CulturalDNAScore[region])
		}
	}
}

func TestDeriveVariationDeterministic(t *testing.T) {
	first := DeriveVariation(42)
	second := DeriveVariation(42)
	if first.Style != second.Style || first.Focus != second.Focus {
		t.Fatalf("variation not deterministic")
	}
	if len(first.Instructions) != 6 {
		t.Fatalf("expected 6 instructions, got %d", len(first.Instructions))
	}
}

func TestDeriveVariationNegativeSeed(t *testing.T) {
	variation := DeriveVariation(-5)
	if variation.Style == "" || variation.Approach == "" {
		t.Fatalf("expected negative seed to map onto option lists: %+v", variation)
	}
}
