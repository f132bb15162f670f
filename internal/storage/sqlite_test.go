package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestSQLiteBackend(t *testing.T) *SQLiteBackend {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteBackendRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestSQLiteBackend(t)

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want absent", ok, err)
	}

	if err := s.Put(ctx, "books", []byte(`[]`)); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	v, ok, err := s.Get(ctx, "books")
	if err != nil || !ok || string(v) != `[]` {
		t.Fatalf("Get() = %s, ok=%v, err=%v", v, ok, err)
	}

	// Put on an existing key upserts.
	if err := s.Put(ctx, "books", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatal(err)
	}
	v, _, _ = s.Get(ctx, "books")
	if string(v) != `[{"id":"1"}]` {
		t.Errorf("Get() after upsert = %s", v)
	}

	if err := s.Delete(ctx, "books"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if _, ok, _ := s.Get(ctx, "books"); ok {
		t.Error("key survived Delete()")
	}
	if err := s.Delete(ctx, "books"); err != nil {
		t.Errorf("Delete(absent) error: %v", err)
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	s1, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s1.Put(ctx, "settings", []byte(`{"theme":"cyber"}`)); err != nil {
		t.Fatal(err)
	}
	if err := s1.Close(); err != nil {
		t.Fatal(err)
	}

	s2, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()

	v, ok, err := s2.Get(ctx, "settings")
	if err != nil || !ok || string(v) != `{"theme":"cyber"}` {
		t.Errorf("Get() after reopen = %s, ok=%v, err=%v", v, ok, err)
	}
}
