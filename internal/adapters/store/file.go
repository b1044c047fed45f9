package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jsamuelsen/daily-quote/internal/domain"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// File persists entries as a single JSON object on disk so the cache
// survives restarts. The file is re-read on every access, which keeps
// several processes (widget and server) sharing one path consistent.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile returns a store backed by path, creating its directory.
func NewFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("store path is required")
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	return &File{path: path}, nil
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// Get implements ports.QuoteStore.
func (f *File) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return nil, err
	}

	v, ok := entries[key]
	if !ok {
		return nil, domain.NewNotFoundError("cache entry", key)
	}

	return []byte(v), nil
}

// Set implements ports.QuoteStore.
func (f *File) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		// A corrupt file is replaced rather than blocking every future write.
		entries = make(map[string]string)
	}

	entries[key] = string(value)

	return f.save(entries)
}

// Name implements ports.HealthChecker.
func (f *File) Name() string {
	return "quote-store"
}

// Check implements ports.HealthChecker by verifying the directory is writable.
func (f *File) Check(_ context.Context) error {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".tmp-*")
	if err != nil {
		return domain.NewUnavailableError(f.Name(), err.Error())
	}

	name := tmp.Name()
	_ = tmp.Close()
	_ = os.Remove(name)

	return nil
}

// load must be called with mu held.
func (f *File) load() (map[string]string, error) {
	b, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("reading store: %w", err)
	}

	entries := make(map[string]string)
	if len(b) == 0 {
		return entries, nil
	}

	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("decoding store: %w", err)
	}

	return entries, nil
}

// save writes to a temp file and renames it into place. Must be called with mu held.
func (f *File) save(entries map[string]string) error {
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing store: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing store: %w", err)
	}

	if err := os.Chmod(tmpName, filePerm); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("setting store permissions: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("replacing store: %w", err)
	}

	return nil
}
