// Package badger keeps the catalog snapshot under a single Badger key.
package badger

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"

	"github.com/fastygo/catalog/domain"
	"github.com/fastygo/catalog/repository"
)

var errClosed = errors.New("badger store: database closed")

// Options configures Open.
type Options struct {
	// Dir is the Badger directory; ignored when InMemory is set.
	Dir      string
	InMemory bool
	Key      string
	Logger   *zap.Logger
}

// Store persists the snapshot in one Badger transaction per save.
type Store struct {
	db  *badger.DB
	key []byte
}

// Open opens (or creates) the Badger database.
func Open(opts Options) (*Store, error) {
	if opts.Key == "" {
		opts.Key = "catalog:snapshot"
	}
	dir := opts.Dir
	if opts.InMemory {
		dir = ""
	}
	bopts := badger.DefaultOptions(dir).WithInMemory(opts.InMemory).WithLogger(nil)
	if opts.Logger != nil {
		bopts = bopts.WithLogger(newLogger(opts.Logger))
	}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("badger store: open: %w", err)
	}
	return NewStore(db, opts.Key), nil
}

// NewStore wraps an already opened database.
func NewStore(db *badger.DB, key string) *Store {
	return &Store{db: db, key: []byte(key)}
}

func (s *Store) Load(ctx context.Context) (*domain.Snapshot, error) {
	if err := s.ready(ctx); err != nil {
		return nil, err
	}

	raw, err := s.get()
	if err == nil {
		return s.decode(raw)
	}
	if !errors.Is(err, badger.ErrKeyNotFound) {
		return nil, err
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(s.key); err == nil {
			return nil
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		data, err := repository.EncodeSnapshot(domain.NewSnapshot())
		if err != nil {
			return err
		}
		return txn.Set(s.key, data)
	})
	// A conflict means a concurrent transaction wrote the key first.
	if err != nil && !errors.Is(err, badger.ErrConflict) {
		return nil, err
	}

	raw, err = s.get()
	if err != nil {
		return nil, err
	}
	return s.decode(raw)
}

func (s *Store) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	if err := s.ready(ctx); err != nil {
		return err
	}
	data, err := repository.EncodeSnapshot(snapshot)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(s.key, data)
	})
}

func (s *Store) Ping(ctx context.Context) error {
	return s.ready(ctx)
}

func (s *Store) Close() error {
	if s == nil || s.db == nil || s.db.IsClosed() {
		return nil
	}
	return s.db.Close()
}

func (s *Store) ready(ctx context.Context) error {
	if s == nil || s.db == nil || s.db.IsClosed() {
		return errClosed
	}
	return ctx.Err()
}

func (s *Store) get() ([]byte, error) {
	var raw []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(s.key)
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	return raw, err
}

func (s *Store) decode(raw []byte) (*domain.Snapshot, error) {
	snapshot, err := repository.DecodeSnapshot(raw)
	if err != nil {
		return nil, fmt.Errorf("badger store: %w", err)
	}
	return snapshot, nil
}

var (
	_ repository.SnapshotStore = (*Store)(nil)
	_ repository.HealthChecker = (*Store)(nil)
)
