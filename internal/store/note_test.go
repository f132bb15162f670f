package store

import (
	"context"
	"errors"
	"testing"

	"feynread/internal/book"
)

func TestAddNote(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	b := addBookWith(t, s, ctx)

	note, err := s.AddNote(ctx, b.ID, "chapter 2 contradicts chapter 5")
	if err != nil {
		t.Fatalf("AddNote() error: %v", err)
	}
	if note.ID == "" || note.BookID != b.ID {
		t.Errorf("note = %+v", note)
	}

	got, _ := s.Book(ctx, b.ID)
	if len(got.Notes) != 1 || got.Notes[0].Content != "chapter 2 contradicts chapter 5" {
		t.Errorf("notes = %+v", got.Notes)
	}

	if _, err := s.AddNote(ctx, "ghost", "x"); !errors.Is(err, ErrBookNotFound) {
		t.Errorf("AddNote(missing book) err = %v, want ErrBookNotFound", err)
	}
}

func TestNotesDoNotAffectScoreOrStatus(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	b := addBookWith(t, s, ctx)

	if _, err := s.AddNote(ctx, b.ID, "just a thought"); err != nil {
		t.Fatal(err)
	}
	got, _ := s.Book(ctx, b.ID)
	if got.BestScore != 0 || got.Status != book.StatusUnread {
		t.Errorf("note mutation changed derived fields: score=%d status=%s",
			got.BestScore, got.Status)
	}
}

func TestUpdateNote(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	b := addBookWith(t, s, ctx)

	note, _ := s.AddNote(ctx, b.ID, "draft")
	if err := s.UpdateNote(ctx, b.ID, note.ID, "final"); err != nil {
		t.Fatalf("UpdateNote() error: %v", err)
	}

	got, _ := s.Book(ctx, b.ID)
	if got.Notes[0].Content != "final" {
		t.Errorf("content = %q", got.Notes[0].Content)
	}
	if !got.Notes[0].UpdatedAt.After(got.Notes[0].CreatedAt) {
		t.Error("UpdatedAt not bumped")
	}

	// Missing ids are logged no-ops, not errors.
	if err := s.UpdateNote(ctx, b.ID, "ghost", "x"); err != nil {
		t.Errorf("UpdateNote(unknown note) error: %v", err)
	}
	if err := s.UpdateNote(ctx, "ghost", note.ID, "x"); err != nil {
		t.Errorf("UpdateNote(unknown book) error: %v", err)
	}
}

func TestDeleteNote(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	b := addBookWith(t, s, ctx)

	note, _ := s.AddNote(ctx, b.ID, "doomed")
	if err := s.DeleteNote(ctx, b.ID, note.ID); err != nil {
		t.Fatalf("DeleteNote() error: %v", err)
	}
	got, _ := s.Book(ctx, b.ID)
	if len(got.Notes) != 0 {
		t.Error("note survived deletion")
	}
	if err := s.DeleteNote(ctx, b.ID, note.ID); err != nil {
		t.Errorf("DeleteNote(absent) error: %v", err)
	}
}
