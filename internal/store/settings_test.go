package store

import (
	"context"
	"path/filepath"
	"testing"

	"feynread/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	backend, err := storage.NewFileBackend(filepath.Join(t.TempDir(), "store.json"))
	if err != nil {
		t.Fatalf("NewFileBackend() error: %v", err)
	}
	return New(backend)
}

func TestSettingsDefaults(t *testing.T) {
	s := newTestStore(t)
	got := s.Settings(context.Background())

	if got.Language != "zh" {
		t.Errorf("language = %q, want zh", got.Language)
	}
	if got.Theme != "cyber" {
		t.Errorf("theme = %q, want cyber", got.Theme)
	}
	if got.APIKey != "" || got.HideAPIKeyAlert || got.QuotesInitialized {
		t.Errorf("unexpected non-zero defaults: %+v", got)
	}
	if got.Quotes == nil || len(got.Quotes) != 0 {
		t.Errorf("quotes = %v, want empty slice", got.Quotes)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	in := DefaultSettings()
	in.APIKey = "sk-test"
	in.Language = "en"
	in.Quotes = []Quote{{ID: "q1", Text: "hello"}}
	in.QuotesInitialized = true

	if err := s.SaveSettings(ctx, in); err != nil {
		t.Fatalf("SaveSettings() error: %v", err)
	}
	got := s.Settings(ctx)
	if got.APIKey != "sk-test" || got.Language != "en" || !got.QuotesInitialized {
		t.Errorf("Settings() = %+v", got)
	}
	if len(got.Quotes) != 1 || got.Quotes[0].Text != "hello" {
		t.Errorf("quotes = %v", got.Quotes)
	}
}

func TestSettingsCorruptBlobDegradesToDefaults(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if err := s.backend.Put(ctx, keySettings, []byte("{broken")); err != nil {
		t.Fatal(err)
	}
	got := s.Settings(ctx)
	if got.Language != "zh" || got.Theme != "cyber" {
		t.Errorf("corrupt settings did not fall back to defaults: %+v", got)
	}
}

func TestSettingsLegacyCustomQuotesField(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	legacy := []byte(`{"apiKey":"k","customQuotes":[{"id":"q1","text":"old home"}]}`)
	if err := s.backend.Put(ctx, keySettings, legacy); err != nil {
		t.Fatal(err)
	}

	got := s.Settings(ctx)
	if len(got.Quotes) != 1 || got.Quotes[0].Text != "old home" {
		t.Errorf("customQuotes not coerced into quotes: %+v", got.Quotes)
	}
	// Partial records keep their defaults for missing fields.
	if got.Language != "zh" {
		t.Errorf("language = %q, want default zh", got.Language)
	}
}
