package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileBackend stores all keys in one JSON file. Reads and writes are
// immediate and synchronous. It is the legacy backend: small capacity,
// trivially inspectable, and the source side of the migration into the
// SQLite backend.
type FileBackend struct {
	mu   sync.Mutex
	path string
}

// NewFileBackend creates a file backend at path. The file is created lazily
// on first Put; a missing file reads as empty.
func NewFileBackend(path string) (*FileBackend, error) {
	if err := EnsureDir(path); err != nil {
		return nil, fmt.Errorf("ensure data dir: %w", err)
	}
	return &FileBackend{path: path}, nil
}

func (f *FileBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return nil, false, err
	}
	v, ok := data[key]
	if !ok {
		return nil, false, nil
	}
	return v, true, nil
}

func (f *FileBackend) Put(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return err
	}
	data[key] = json.RawMessage(value)
	return f.flush(data)
}

func (f *FileBackend) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)
	return f.flush(data)
}

func (f *FileBackend) Close() error { return nil }

// Path returns the backing file path.
func (f *FileBackend) Path() string { return f.path }

// Empty reports whether the backend holds no keys at all. The migration
// layer uses this to detect absence of legacy data.
func (f *FileBackend) Empty() (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := f.load()
	if err != nil {
		return false, err
	}
	return len(data) == 0, nil
}

func (f *FileBackend) load() (map[string]json.RawMessage, error) {
	raw, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.path, err)
	}

	data := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &data); err != nil {
		// A corrupt file must not wedge the app. Treat it as empty; the
		// typed layer logs and degrades per key anyway.
		fmt.Fprintf(os.Stderr, "warning: corrupt store file %s, treating as empty: %v\n", f.path, err)
		return map[string]json.RawMessage{}, nil
	}
	return data, nil
}

// flush writes atomically via a temp file rename so a crash mid-write never
// leaves a half-written store.
func (f *FileBackend) flush(data map[string]json.RawMessage) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
