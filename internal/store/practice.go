package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"feynread/internal/book"
	"feynread/internal/feynman"
)

// TeachingInput is the payload the AI collaborator produces for one
// teaching attempt. Passed is stored as supplied (a display cache); the
// completion logic re-derives pass state from Scores alone.
type TeachingInput struct {
	Content  string
	AIReview string
	Scores   book.ScoreSet
	Passed   bool
}

// QASessionInput is the payload for a freshly generated QA session.
type QASessionInput struct {
	Questions []book.PersonaQuestion
	AllPassed bool
}

// mutatePractice runs fn against the named book under its writer lock, then
// recomputes the derived fields in the mandated order: best score first,
// status second, both from the post-mutation collections. Returns
// ErrBookNotFound when the id doesn't resolve.
func (s *Store) mutatePractice(ctx context.Context, bookID string, fn func(*book.Book)) error {
	mu := s.bookLock(bookID)
	mu.Lock()
	defer mu.Unlock()

	books := s.Books(ctx)
	for i := range books {
		if books[i].ID != bookID {
			continue
		}
		b := &books[i]
		fn(b)
		b.BestScore = feynman.BestScore(b)
		b.Status = feynman.NextStatus(b)
		b.UpdatedAt = time.Now()
		return s.saveBooks(ctx, books)
	}
	return fmt.Errorf("%w: %s", ErrBookNotFound, bookID)
}

// AddTeachingRecord appends a teaching attempt and returns the stored
// record. Unlike the delete paths, a missing book id here is a hard error:
// proceeding silently would corrupt referential integrity.
func (s *Store) AddTeachingRecord(ctx context.Context, bookID string, in TeachingInput) (*book.TeachingRecord, error) {
	rec := book.TeachingRecord{
		ID:        book.NewID(),
		BookID:    bookID,
		Content:   in.Content,
		AIReview:  in.AIReview,
		Scores:    in.Scores,
		Passed:    in.Passed,
		CreatedAt: time.Now(),
	}

	err := s.mutatePractice(ctx, bookID, func(b *book.Book) {
		b.PracticeRecords = append(b.PracticeRecords, rec)
	})
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// DeleteTeachingRecord removes one teaching attempt. Either id being absent
// is a silent no-op; a deletion can demote a finished book back to reading.
func (s *Store) DeleteTeachingRecord(ctx context.Context, bookID, recordID string) error {
	err := s.mutatePractice(ctx, bookID, func(b *book.Book) {
		for i := range b.PracticeRecords {
			if b.PracticeRecords[i].ID == recordID {
				b.PracticeRecords = append(b.PracticeRecords[:i], b.PracticeRecords[i+1:]...)
				return
			}
		}
	})
	return ignoreMissingBook(err)
}

// AddQASession appends a persona Q&A session and returns the stored record.
// Errors on a missing book id, matching AddTeachingRecord.
func (s *Store) AddQASession(ctx context.Context, bookID string, in QASessionInput) (*book.QASession, error) {
	now := time.Now()
	session := book.QASession{
		ID:        book.NewID(),
		BookID:    bookID,
		Questions: in.Questions,
		AllPassed: in.AllPassed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.mutatePractice(ctx, bookID, func(b *book.Book) {
		b.QAPracticeRecords = append(b.QAPracticeRecords, session)
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// UpdateQASession merges the patch into the session (typically an updated
// question list plus a recomputed AllPassed), bumps its UpdatedAt, and
// re-derives the book's score and status exactly as the add path does.
// A missing session id inside an existing book is a logged no-op.
func (s *Store) UpdateQASession(ctx context.Context, bookID, sessionID string, p book.QASessionPatch) error {
	err := s.mutatePractice(ctx, bookID, func(b *book.Book) {
		for i := range b.QAPracticeRecords {
			if b.QAPracticeRecords[i].ID == sessionID {
				p.Apply(&b.QAPracticeRecords[i])
				return
			}
		}
		fmt.Fprintf(os.Stderr, "error: update of unknown QA session %s ignored\n", sessionID)
	})
	return ignoreMissingBook(err)
}

// DeleteQASession removes one whole session. Either id being absent is a
// silent no-op.
func (s *Store) DeleteQASession(ctx context.Context, bookID, sessionID string) error {
	err := s.mutatePractice(ctx, bookID, func(b *book.Book) {
		for i := range b.QAPracticeRecords {
			if b.QAPracticeRecords[i].ID == sessionID {
				b.QAPracticeRecords = append(b.QAPracticeRecords[:i], b.QAPracticeRecords[i+1:]...)
				return
			}
		}
	})
	return ignoreMissingBook(err)
}

// ignoreMissingBook downgrades ErrBookNotFound to a logged no-op for the
// update/delete paths, which must stay resilient to stale references.
func ignoreMissingBook(err error) error {
	if errors.Is(err, ErrBookNotFound) {
		fmt.Fprintf(os.Stderr, "error: %v, ignored\n", err)
		return nil
	}
	return err
}
