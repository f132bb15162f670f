// Package store is the typed persistence layer and the sole mutation
// surface for books and practice records. It layers three things on the
// storage.Backend port: JSON (de)serialization with corrupt-data
// degradation, whole-collection read-modify-write for books, and the
// score/status recomputation that keeps every book's derived fields honest.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"feynread/internal/book"
	"feynread/internal/storage"
)

// Top-level keys in the backend.
const (
	keySettings     = "settings"
	keyBooks        = "books"
	keyMigrated     = "migrated"
	keyJustMigrated = "just_migrated"
)

// Store provides settings and book persistence over a storage backend.
type Store struct {
	backend storage.Backend

	// locks serializes mutating operations per book id. The backend's
	// whole-collection overwrite pattern would otherwise let two in-flight
	// mutations of the same book clobber each other.
	locks sync.Map // book id -> *sync.Mutex
}

// New creates a Store over the given backend.
func New(backend storage.Backend) *Store {
	return &Store{backend: backend}
}

// Backend returns the underlying backend.
func (s *Store) Backend() storage.Backend {
	return s.backend
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// Books returns the full book collection, newest first. Missing or corrupt
// data degrades to an empty list; this method never fails toward the UI.
func (s *Store) Books(ctx context.Context) []book.Book {
	raw, ok, err := s.backend.Get(ctx, keyBooks)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: read books: %v\n", err)
		return []book.Book{}
	}
	if !ok {
		return []book.Book{}
	}

	var books []book.Book
	if err := json.Unmarshal(raw, &books); err != nil {
		fmt.Fprintf(os.Stderr, "warning: corrupt book collection, starting empty: %v\n", err)
		return []book.Book{}
	}
	return books
}

// saveBooks overwrites the whole book collection.
func (s *Store) saveBooks(ctx context.Context, books []book.Book) error {
	raw, err := json.Marshal(books)
	if err != nil {
		return fmt.Errorf("marshal books: %w", err)
	}
	if err := s.backend.Put(ctx, keyBooks, raw); err != nil {
		return fmt.Errorf("save books: %w", err)
	}
	return nil
}

// bookLock returns the mutex serializing mutations for one book id.
func (s *Store) bookLock(id string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// Reset deletes every record this store manages, including the migration
// flags. The next run starts from a blank slate.
func (s *Store) Reset(ctx context.Context) error {
	for _, key := range []string{keyBooks, keySettings, keyMigrated, keyJustMigrated} {
		if err := s.backend.Delete(ctx, key); err != nil {
			return fmt.Errorf("delete %s: %w", key, err)
		}
	}
	return nil
}
