// Package boltdb keeps the catalog snapshot under a single BoltDB key.
package boltdb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/fastygo/catalog/domain"
	"github.com/fastygo/catalog/repository"
)

const defaultBucket = "catalog"

// Store wraps BoltDB. Every save is one read-write transaction, so a
// reader sees either the previous or the new document.
type Store struct {
	db     *bolt.DB
	bucket []byte
	key    []byte
}

// Open initializes the BoltDB file and ensures the bucket exists.
func Open(path, bucket, key string) (*Store, error) {
	if bucket == "" {
		bucket = defaultBucket
	}
	if key == "" {
		key = "snapshot"
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucket))
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{
		db:     db,
		bucket: []byte(bucket),
		key:    []byte(key),
	}, nil
}

func (s *Store) Load(ctx context.Context) (*domain.Snapshot, error) {
	if s == nil || s.db == nil {
		return nil, bolt.ErrDatabaseNotOpen
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var raw []byte
	if err := s.db.View(func(tx *bolt.Tx) error {
		raw = copyBytes(tx.Bucket(s.bucket).Get(s.key))
		return nil
	}); err != nil {
		return nil, err
	}
	if raw != nil {
		return s.decode(raw)
	}

	// Bootstrap inside a write transaction; writers are serialized by Bolt,
	// so only the first caller stores the empty document.
	if err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(s.bucket)
		if existing := b.Get(s.key); existing != nil {
			raw = copyBytes(existing)
			return nil
		}
		data, err := repository.EncodeSnapshot(domain.NewSnapshot())
		if err != nil {
			return err
		}
		raw = data
		return b.Put(s.key, data)
	}); err != nil {
		return nil, err
	}
	return s.decode(raw)
}

func (s *Store) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := repository.EncodeSnapshot(snapshot)
	if err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put(s.key, data)
	})
}

// Ping runs an empty read transaction.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return bolt.ErrDatabaseNotOpen
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(s.bucket) == nil {
			return fmt.Errorf("bolt store: bucket %q missing", s.bucket)
		}
		return nil
	})
}

// Close closes the Bolt database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) decode(raw []byte) (*domain.Snapshot, error) {
	snapshot, err := repository.DecodeSnapshot(raw)
	if err != nil {
		return nil, fmt.Errorf("bolt store: %w", err)
	}
	return snapshot, nil
}

// copyBytes detaches a value from the transaction's mmap.
func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}

var (
	_ repository.SnapshotStore = (*Store)(nil)
	_ repository.HealthChecker = (*Store)(nil)
)
