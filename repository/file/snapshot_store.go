// Package file stores the catalog snapshot as a JSON document on disk.
package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fastygo/catalog/domain"
	"github.com/fastygo/catalog/repository"
)

type snapshotStore struct {
	path string

	// mu orders bootstrap writes against saves made by this process.
	mu sync.Mutex

	write func(w io.Writer, data []byte) error
}

// Store is the file-backed snapshot store.
type Store interface {
	repository.SnapshotStore
	repository.HealthChecker
}

// NewSnapshotStore returns a store backed by the document at path. The
// parent directory is created on first write.
func NewSnapshotStore(path string) Store {
	return &snapshotStore{
		path:  path,
		write: writeAll,
	}
}

func (s *snapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapshot, err := s.read()
	if err == nil {
		return snapshot, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another caller may have bootstrapped or saved while we waited.
	snapshot, err = s.read()
	if !errors.Is(err, fs.ErrNotExist) {
		return snapshot, err
	}

	snapshot = domain.NewSnapshot()
	if err := s.replace(snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (s *snapshotStore) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replace(snapshot)
}

// Ping checks that the document's directory is reachable.
func (s *snapshotStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		// Created lazily by the first save.
		return nil
	}
	if err != nil {
		return fmt.Errorf("file store: stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("file store: %s is not a directory", dir)
	}
	return nil
}

func (s *snapshotStore) read() (*domain.Snapshot, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	snapshot, err := repository.DecodeSnapshot(raw)
	if err != nil {
		return nil, fmt.Errorf("file store: %s: %w", s.path, err)
	}
	return snapshot, nil
}

// replace writes the snapshot to a temporary file in the target directory
// and renames it over the document, so readers never see a partial write.
func (s *snapshotStore) replace(snapshot *domain.Snapshot) error {
	data, err := repository.EncodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("file store: create dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("file store: create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	if err := s.write(tmp, data); err != nil {
		tmp.Close()
		return fmt.Errorf("file store: write temp file: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("file store: chmod temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("file store: sync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("file store: close: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("file store: rename: %w", err)
	}
	committed = true
	return nil
}

func writeAll(w io.Writer, data []byte) error {
	_, err := w.Write(data)
	return err
}
