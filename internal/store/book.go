package store

import (
	"context"
	"errors"
	"fmt"
	"os"

	"feynread/internal/book"
	"feynread/internal/feynman"
)

// ErrBookNotFound is returned when a practice record is created against a
// book id that doesn't resolve. It signals a caller-side integrity bug, not
// a user-facing condition.
var ErrBookNotFound = errors.New("book not found")

// AddBook creates a book and prepends it to the collection. Newest-first
// ordering is part of the listing contract.
func (s *Store) AddBook(ctx context.Context, title string, meta book.Meta) (*book.Book, error) {
	b := book.New(title, meta)

	mu := s.bookLock(b.ID)
	mu.Lock()
	defer mu.Unlock()

	books := append([]book.Book{*b}, s.Books(ctx)...)
	if err := s.saveBooks(ctx, books); err != nil {
		return nil, err
	}
	return b, nil
}

// Book returns the book with the given id.
func (s *Store) Book(ctx context.Context, id string) (*book.Book, bool) {
	for _, b := range s.Books(ctx) {
		if b.ID == id {
			return &b, true
		}
	}
	return nil, false
}

// UpdateBook merges the patch into the book and refreshes its UpdatedAt.
// A missing id is a logged no-op so a stale UI reference can't crash the
// caller. Derived fields are unreachable through Patch by construction.
func (s *Store) UpdateBook(ctx context.Context, id string, p book.Patch) error {
	mu := s.bookLock(id)
	mu.Lock()
	defer mu.Unlock()

	books := s.Books(ctx)
	for i := range books {
		if books[i].ID == id {
			p.Apply(&books[i])
			return s.saveBooks(ctx, books)
		}
	}
	fmt.Fprintf(os.Stderr, "error: update of unknown book %s ignored\n", id)
	return nil
}

// DeleteBook removes the book by id. An absent id is a silent no-op.
func (s *Store) DeleteBook(ctx context.Context, id string) error {
	mu := s.bookLock(id)
	mu.Lock()
	defer mu.Unlock()

	books := s.Books(ctx)
	for i := range books {
		if books[i].ID == id {
			books = append(books[:i], books[i+1:]...)
			return s.saveBooks(ctx, books)
		}
	}
	return nil
}

// StartReading applies the one-way unread → reading nudge fired when the
// user first engages with a book. It reports whether the status changed.
func (s *Store) StartReading(ctx context.Context, id string) (bool, error) {
	mu := s.bookLock(id)
	mu.Lock()
	defer mu.Unlock()

	books := s.Books(ctx)
	for i := range books {
		if books[i].ID == id {
			if !feynman.StartReading(&books[i]) {
				return false, nil
			}
			return true, s.saveBooks(ctx, books)
		}
	}
	return false, nil
}
