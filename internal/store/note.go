package store

import (
	"context"
	"fmt"
	"os"
	"time"

	"feynread/internal/book"
)

// AddNote appends a free-text note to the book and returns the stored
// record. A missing book id is a hard error, matching the practice add
// paths. Notes never touch the book's score or status.
func (s *Store) AddNote(ctx context.Context, bookID, content string) (*book.Note, error) {
	now := time.Now()
	note := book.Note{
		ID:        book.NewID(),
		BookID:    bookID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.mutateNotes(ctx, bookID, func(b *book.Book) {
		b.Notes = append(b.Notes, note)
	})
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// UpdateNote replaces a note's content and bumps its UpdatedAt. A missing
// note id inside an existing book is a logged no-op.
func (s *Store) UpdateNote(ctx context.Context, bookID, noteID, content string) error {
	err := s.mutateNotes(ctx, bookID, func(b *book.Book) {
		for i := range b.Notes {
			if b.Notes[i].ID == noteID {
				b.Notes[i].Content = content
				b.Notes[i].UpdatedAt = time.Now()
				return
			}
		}
		fmt.Fprintf(os.Stderr, "error: update of unknown note %s ignored\n", noteID)
	})
	return ignoreMissingBook(err)
}

// DeleteNote removes one note. Either id being absent is a silent no-op.
func (s *Store) DeleteNote(ctx context.Context, bookID, noteID string) error {
	err := s.mutateNotes(ctx, bookID, func(b *book.Book) {
		for i := range b.Notes {
			if b.Notes[i].ID == noteID {
				b.Notes = append(b.Notes[:i], b.Notes[i+1:]...)
				return
			}
		}
	})
	return ignoreMissingBook(err)
}

// mutateNotes runs fn against the named book under its writer lock. Unlike
// mutatePractice it leaves BestScore and Status alone: notes are not a
// scoring input.
func (s *Store) mutateNotes(ctx context.Context, bookID string, fn func(*book.Book)) error {
	mu := s.bookLock(bookID)
	mu.Lock()
	defer mu.Unlock()

	books := s.Books(ctx)
	for i := range books {
		if books[i].ID != bookID {
			continue
		}
		fn(&books[i])
		books[i].UpdatedAt = time.Now()
		return s.saveBooks(ctx, books)
	}
	return fmt.Errorf("%w: %s", ErrBookNotFound, bookID)
}
