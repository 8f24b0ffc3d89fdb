package locale

import "testing"

func TestNewTableLoadsAllBundles(t *testing.T) {
	table, err := NewTable()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"de", "en", "es", "fr", "hi", "it", "tr", "zh"}
	codes := table.Codes()
	if len(codes) != len(expected) {
		t.Fatalf("unexpected codes: %v", codes)
	}
	for i, code := range expected {
		if codes[i] != code {
			t.Fatalf("unexpected codes: %v", codes)
		}
	}
}

func TestBundleContent(t *testing.T) {
	table, err := NewTable()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, code := range table.Codes() {
		bundle := table.Bundle(code)
		if len(bundle.PersonaNames) != 15 {
			t.Errorf("%s: expected 15 persona names, got %d", code, len(bundle.PersonaNames))
		}
		if len(bundle.Traits) != 5 {
			t.Errorf("%s: expected 5 traits, got %d", code, len(bundle.Traits))
		}
		if len(bundle.DNA) != 4 {
			t.Errorf("%s: expected 4 dna regions, got %d", code, len(bundle.DNA))
		}
		if len(bundle.Insights) != 4 {
			t.Errorf("%s: expected 4 country insights, got %d", code, len(bundle.Insights))
		}
		for _, country := range []string{"USA", "South Korea", "UK", "Japan"} {
			if _, ok := bundle.Insights[country]; !ok {
				t.Errorf("%s: missing insight for %s", code, country)
			}
		}
	}
}

func TestResolveFallsBackToDefault(t *testing.T) {
	table, err := NewTable()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if table.Resolve("ko") != "en" {
		t.Fatalf("expected unknown code to resolve to en")
	}
	if table.Resolve(" TR ") != "tr" {
		t.Fatalf("expected normalization of ' TR '")
	}
	if table.Bundle("nope").Code != "en" {
		t.Fatalf("expected default bundle for unknown code")
	}
}

func TestDisplayName(t *testing.T) {
	table, err := NewTable()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if table.DisplayName("tr") != "Turkish" {
		t.Fatalf("unexpected display name: %s", table.DisplayName("tr"))
	}
	if table.DisplayName("xx") != "English" {
		t.Fatalf("expected English for unknown code")
	}
}
