package store

import (
	"context"
	"encoding/json"
	"fmt"

	"feynread/internal/book"
	"feynread/internal/storage"
)

// MigrationResult reports the outcome of a legacy-store migration. Partial
// failures are collected here rather than thrown; the caller decides
// whether to warn the user.
type MigrationResult struct {
	Success       bool
	MigratedBooks int
	Skipped       bool
	Errors        []string
}

// Migrate copies every book and the settings record from the legacy file
// backend into this store's backend, best-effort. It is idempotent: a
// persisted flag is checked before any copying, so re-running after a
// completed migration is a no-op even if the destination already holds
// data (a destination-empty check could duplicate books after a partial
// re-run). The flag is only set when the run collected no errors, so a
// user who repairs a broken legacy store can run the migration again;
// the whole-collection overwrite makes that retry duplication-safe.
func (s *Store) Migrate(ctx context.Context, legacy *storage.FileBackend) (*MigrationResult, error) {
	res := &MigrationResult{}

	raw, ok, err := s.backend.Get(ctx, keyMigrated)
	if err != nil {
		return nil, fmt.Errorf("check migration flag: %w", err)
	}
	if ok && string(raw) == "true" {
		res.Success = true
		res.Skipped = true
		return res, nil
	}

	empty, err := legacy.Empty()
	if err != nil {
		return nil, fmt.Errorf("inspect legacy store: %w", err)
	}
	if empty {
		// Nothing to carry over. Mark done so we never look again.
		res.Success = true
		return res, s.finishMigration(ctx, false)
	}

	src := New(legacy)

	// Books are decoded one by one so a single corrupt record costs only
	// itself, not the whole migration.
	books := []book.Book{}
	if rawBooks, ok, err := legacy.Get(ctx, keyBooks); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("read legacy books: %v", err))
	} else if ok {
		var items []json.RawMessage
		if err := json.Unmarshal(rawBooks, &items); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("parse legacy book collection: %v", err))
		} else {
			for i, item := range items {
				var b book.Book
				if err := json.Unmarshal(item, &b); err != nil {
					res.Errors = append(res.Errors, fmt.Sprintf("book %d: %v", i, err))
					continue
				}
				books = append(books, b)
			}
		}
	}

	if len(books) > 0 {
		if err := s.saveBooks(ctx, books); err != nil {
			res.Errors = append(res.Errors, fmt.Sprintf("write books: %v", err))
		} else {
			res.MigratedBooks = len(books)
		}
	}

	if err := s.SaveSettings(ctx, src.Settings(ctx)); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("write settings: %v", err))
	}

	res.Success = len(res.Errors) == 0
	if !res.Success {
		// Flag stays unset so the next run retries instead of skipping.
		return res, nil
	}
	if err := s.finishMigration(ctx, true); err != nil {
		return res, err
	}
	return res, nil
}

// finishMigration sets the persisted done flag and, when data was actually
// moved, the transient just-migrated flag the UI consumes once.
func (s *Store) finishMigration(ctx context.Context, migrated bool) error {
	if err := s.backend.Put(ctx, keyMigrated, []byte("true")); err != nil {
		return fmt.Errorf("set migration flag: %w", err)
	}
	if migrated {
		if err := s.backend.Put(ctx, keyJustMigrated, []byte("true")); err != nil {
			return fmt.Errorf("set just-migrated flag: %w", err)
		}
	}
	return nil
}

// ConsumeJustMigrated reports whether a migration just completed, clearing
// the flag so the one-time notice shows exactly once.
func (s *Store) ConsumeJustMigrated(ctx context.Context) bool {
	raw, ok, err := s.backend.Get(ctx, keyJustMigrated)
	if err != nil || !ok || string(raw) != "true" {
		return false
	}
	if err := s.backend.Delete(ctx, keyJustMigrated); err != nil {
		return false
	}
	return true
}
