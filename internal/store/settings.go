package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// Quote is one motivational quote shown on the bookshelf. Preset quotes are
// seeded once; user-added ones carry Preset=false.
type Quote struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author,omitempty"`
	Preset bool   `json:"preset"`
}

// AppSettings is the single global settings record.
type AppSettings struct {
	APIKey            string  `json:"apiKey"`
	Language          string  `json:"language"`
	Theme             string  `json:"theme"`
	HideAPIKeyAlert   bool    `json:"hideApiKeyAlert"`
	Quotes            []Quote `json:"quotes"`
	QuotesInitialized bool    `json:"quotesInitialized"`
}

// DefaultSettings returns the settings used when nothing is stored or the
// stored record cannot be read.
func DefaultSettings() AppSettings {
	return AppSettings{
		Language: "zh",
		Theme:    "cyber",
		Quotes:   []Quote{},
	}
}

// settingsDoc adds read-time compatibility for the legacy field layout,
// where user quotes lived under "customQuotes".
type settingsDoc struct {
	AppSettings
	CustomQuotes []Quote `json:"customQuotes,omitempty"`
}

// Settings returns the stored settings, or defaults when nothing is stored
// or the stored value fails to parse. It never fails toward the UI: a
// corrupt settings blob must not block the app from loading.
func (s *Store) Settings(ctx context.Context) AppSettings {
	raw, ok, err := s.backend.Get(ctx, keySettings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: read settings: %v\n", err)
		return DefaultSettings()
	}
	if !ok {
		return DefaultSettings()
	}

	doc := settingsDoc{AppSettings: DefaultSettings()}
	if err := json.Unmarshal(raw, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "warning: corrupt settings, using defaults: %v\n", err)
		return DefaultSettings()
	}

	// Legacy records stored user quotes under customQuotes.
	if len(doc.Quotes) == 0 && len(doc.CustomQuotes) > 0 {
		doc.Quotes = doc.CustomQuotes
	}
	if doc.Quotes == nil {
		doc.Quotes = []Quote{}
	}
	return doc.AppSettings
}

// SaveSettings overwrites the whole settings record. There is no partial
// merge at this layer; callers read-modify-write.
func (s *Store) SaveSettings(ctx context.Context, settings AppSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := s.backend.Put(ctx, keySettings, raw); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
