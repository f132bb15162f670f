package store

import (
	"context"
	"testing"

	"feynread/internal/book"
)

func TestAddBookPrependsNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first, err := s.AddBook(ctx, "First", book.Meta{})
	if err != nil {
		t.Fatalf("AddBook() error: %v", err)
	}
	second, err := s.AddBook(ctx, "Second", book.Meta{})
	if err != nil {
		t.Fatalf("AddBook() error: %v", err)
	}

	books := s.Books(ctx)
	if len(books) != 2 {
		t.Fatalf("len(Books()) = %d, want 2", len(books))
	}
	if books[0].ID != second.ID || books[1].ID != first.ID {
		t.Errorf("ordering = [%s, %s], want newest first", books[0].Title, books[1].Title)
	}
	if books[0].Status != book.StatusUnread {
		t.Errorf("new book status = %s, want unread", books[0].Status)
	}
}

func TestBookLookup(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	added, _ := s.AddBook(ctx, "Findable", book.Meta{Author: "A"})

	got, ok := s.Book(ctx, added.ID)
	if !ok || got.Title != "Findable" {
		t.Fatalf("Book() = %+v, ok=%v", got, ok)
	}
	if _, ok := s.Book(ctx, "nope"); ok {
		t.Error("Book(unknown) = ok")
	}
}

func TestUpdateBook(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	added, _ := s.AddBook(ctx, "Old Title", book.Meta{})

	title := "New Title"
	if err := s.UpdateBook(ctx, added.ID, book.Patch{Title: &title}); err != nil {
		t.Fatalf("UpdateBook() error: %v", err)
	}
	got, _ := s.Book(ctx, added.ID)
	if got.Title != "New Title" {
		t.Errorf("title = %q", got.Title)
	}

	// Unknown id is a logged no-op, not an error.
	if err := s.UpdateBook(ctx, "ghost", book.Patch{Title: &title}); err != nil {
		t.Errorf("UpdateBook(unknown) error: %v", err)
	}
}

func TestDeleteBook(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	added, _ := s.AddBook(ctx, "Doomed", book.Meta{})
	if err := s.DeleteBook(ctx, added.ID); err != nil {
		t.Fatalf("DeleteBook() error: %v", err)
	}
	if len(s.Books(ctx)) != 0 {
		t.Error("book survived deletion")
	}
	// Deleting again is silent.
	if err := s.DeleteBook(ctx, added.ID); err != nil {
		t.Errorf("DeleteBook(absent) error: %v", err)
	}
}

func TestStartReading(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	added, _ := s.AddBook(ctx, "Fresh", book.Meta{})

	changed, err := s.StartReading(ctx, added.ID)
	if err != nil || !changed {
		t.Fatalf("StartReading() = %v, %v, want change", changed, err)
	}
	got, _ := s.Book(ctx, added.ID)
	if got.Status != book.StatusReading {
		t.Fatalf("status = %s, want reading", got.Status)
	}

	changed, err = s.StartReading(ctx, added.ID)
	if err != nil || changed {
		t.Errorf("second StartReading() = %v, %v, want no change", changed, err)
	}

	changed, err = s.StartReading(ctx, "ghost")
	if err != nil || changed {
		t.Errorf("StartReading(unknown) = %v, %v, want no change", changed, err)
	}
}

func TestBooksCorruptCollectionDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	if err := s.backend.Put(ctx, keyBooks, []byte("[broken")); err != nil {
		t.Fatal(err)
	}
	if got := s.Books(ctx); len(got) != 0 {
		t.Errorf("Books() on corrupt data = %v, want empty", got)
	}
}
