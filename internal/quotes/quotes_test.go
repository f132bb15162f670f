package quotes

import (
	"testing"

	"feynread/internal/store"
)

func TestPresetsLanguageFallback(t *testing.T) {
	zh := Presets("zh")
	en := Presets("en")
	if len(zh) == 0 || len(en) == 0 {
		t.Fatal("preset lists must not be empty")
	}
	if zh[0].Text == en[0].Text {
		t.Error("zh and en presets are the same list")
	}

	fallback := Presets("fr")
	if len(fallback) != len(zh) || fallback[0].Text != zh[0].Text {
		t.Error("unknown language must fall back to zh presets")
	}

	for i, q := range zh {
		if q.ID == "" {
			t.Errorf("preset %d has empty id", i)
		}
		if !q.Preset {
			t.Errorf("preset %d not flagged Preset", i)
		}
	}
}

func TestSeedRunsOnce(t *testing.T) {
	settings := store.DefaultSettings()
	settings.Language = "en"
	settings.Quotes = []store.Quote{{ID: "mine", Text: "user quote"}}

	if !Seed(&settings) {
		t.Fatal("first Seed() = false, want true")
	}
	if !settings.QuotesInitialized {
		t.Error("QuotesInitialized not set")
	}
	if len(settings.Quotes) != len(Presets("en"))+1 {
		t.Fatalf("len(quotes) = %d", len(settings.Quotes))
	}
	// Presets go in front; the user's quote survives at the end.
	last := settings.Quotes[len(settings.Quotes)-1]
	if last.ID != "mine" {
		t.Errorf("user quote displaced: %+v", last)
	}

	before := len(settings.Quotes)
	if Seed(&settings) {
		t.Error("second Seed() = true, want false")
	}
	if len(settings.Quotes) != before {
		t.Error("second Seed() modified quotes")
	}
}
