package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feynread/internal/book"
	"feynread/internal/storage"
)

func newLegacyBackend(t *testing.T) *storage.FileBackend {
	t.Helper()
	legacy, err := storage.NewFileBackend(filepath.Join(t.TempDir(), "legacy.json"))
	require.NoError(t, err)
	return legacy
}

func TestMigrateCopiesBooksAndSettings(t *testing.T) {
	ctx := context.Background()
	legacy := newLegacyBackend(t)

	src := New(legacy)
	_, err := src.AddBook(ctx, "Legacy One", book.Meta{Author: "A"})
	require.NoError(t, err)
	_, err = src.AddBook(ctx, "Legacy Two", book.Meta{})
	require.NoError(t, err)

	settings := DefaultSettings()
	settings.APIKey = "sk-legacy"
	require.NoError(t, src.SaveSettings(ctx, settings))

	dst := newTestStore(t)
	res, err := dst.Migrate(ctx, legacy)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.False(t, res.Skipped)
	assert.Equal(t, 2, res.MigratedBooks)
	assert.Empty(t, res.Errors)

	books := dst.Books(ctx)
	require.Len(t, books, 2)
	assert.Equal(t, "Legacy Two", books[0].Title)
	assert.Equal(t, "sk-legacy", dst.Settings(ctx).APIKey)
}

func TestMigrateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	legacy := newLegacyBackend(t)

	src := New(legacy)
	_, err := src.AddBook(ctx, "Only Once", book.Meta{})
	require.NoError(t, err)

	dst := newTestStore(t)
	res, err := dst.Migrate(ctx, legacy)
	require.NoError(t, err)
	require.Equal(t, 1, res.MigratedBooks)

	// A second run must not touch the destination even though the legacy
	// store still holds data.
	res, err = dst.Migrate(ctx, legacy)
	require.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.True(t, res.Success)
	assert.Equal(t, 0, res.MigratedBooks)
	assert.Len(t, dst.Books(ctx), 1)
}

func TestMigrateEmptyLegacyStore(t *testing.T) {
	ctx := context.Background()
	legacy := newLegacyBackend(t)

	dst := newTestStore(t)
	res, err := dst.Migrate(ctx, legacy)
	require.NoError(t, err)

	assert.True(t, res.Success)
	assert.Equal(t, 0, res.MigratedBooks)

	// Marked done, but no just-migrated notice for a no-op migration.
	assert.False(t, dst.ConsumeJustMigrated(ctx))
	res, err = dst.Migrate(ctx, legacy)
	require.NoError(t, err)
	assert.True(t, res.Skipped)
}

func TestMigrateCollectsPerBookErrors(t *testing.T) {
	ctx := context.Background()
	legacy := newLegacyBackend(t)

	// One well-formed book and one record that is not an object.
	raw := `[{"id":"good","title":"Good","practiceRecords":[],"qaPracticeRecords":[]}, 42]`
	require.NoError(t, legacy.Put(ctx, "books", []byte(raw)))

	dst := newTestStore(t)
	res, err := dst.Migrate(ctx, legacy)
	require.NoError(t, err)

	assert.False(t, res.Success)
	assert.Equal(t, 1, res.MigratedBooks)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "book 1")

	books := dst.Books(ctx)
	require.Len(t, books, 1)
	assert.Equal(t, "good", books[0].ID)
}

func TestMigrateRetriesAfterLegacyRepair(t *testing.T) {
	ctx := context.Background()
	legacy := newLegacyBackend(t)

	// Every record in the legacy collection is broken.
	require.NoError(t, legacy.Put(ctx, "books", []byte(`[42]`)))

	dst := newTestStore(t)
	res, err := dst.Migrate(ctx, legacy)
	require.NoError(t, err)
	require.False(t, res.Success)
	require.Equal(t, 0, res.MigratedBooks)

	// A failed run must not latch the done flag; once the legacy data is
	// repaired the next run migrates for real instead of skipping.
	good := `[{"id":"fixed","title":"Fixed","practiceRecords":[],"qaPracticeRecords":[]}]`
	require.NoError(t, legacy.Put(ctx, "books", []byte(good)))

	res, err = dst.Migrate(ctx, legacy)
	require.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.True(t, res.Success)
	assert.Equal(t, 1, res.MigratedBooks)

	books := dst.Books(ctx)
	require.Len(t, books, 1)
	assert.Equal(t, "fixed", books[0].ID)
}

func TestConsumeJustMigratedFiresOnce(t *testing.T) {
	ctx := context.Background()
	legacy := newLegacyBackend(t)

	src := New(legacy)
	_, err := src.AddBook(ctx, "Moved", book.Meta{})
	require.NoError(t, err)

	dst := newTestStore(t)
	_, err = dst.Migrate(ctx, legacy)
	require.NoError(t, err)

	assert.True(t, dst.ConsumeJustMigrated(ctx))
	assert.False(t, dst.ConsumeJustMigrated(ctx), "notice must show exactly once")
}
