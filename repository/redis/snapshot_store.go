package redis

import (
	"context"
	"errors"
	"fmt"

	redislib "github.com/redis/go-redis/v9"

	"github.com/fastygo/catalog/domain"
	"github.com/fastygo/catalog/repository"
)

type snapshotStore struct {
	client *redislib.Client
	key    string
}

// Store is the Redis-backed snapshot store.
type Store interface {
	repository.SnapshotStore
	repository.HealthChecker
}

// NewSnapshotStore keeps the snapshot document in one Redis string key.
func NewSnapshotStore(client *redislib.Client, key string) Store {
	if key == "" {
		key = "catalog:snapshot"
	}
	return &snapshotStore{
		client: client,
		key:    key,
	}
}

func (r *snapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if err == nil {
		return r.decode(raw)
	}
	if !errors.Is(err, redislib.Nil) {
		return nil, err
	}

	empty, err := repository.EncodeSnapshot(domain.NewSnapshot())
	if err != nil {
		return nil, err
	}
	// SETNX keeps bootstrap idempotent across concurrent first loads.
	if err := r.client.SetNX(ctx, r.key, empty, 0).Err(); err != nil {
		return nil, err
	}

	raw, err = r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		return nil, err
	}
	return r.decode(raw)
}

func (r *snapshotStore) Save(ctx context.Context, snapshot *domain.Snapshot) error {
	payload, err := repository.EncodeSnapshot(snapshot)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key, payload, 0).Err()
}

func (r *snapshotStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *snapshotStore) decode(raw []byte) (*domain.Snapshot, error) {
	snapshot, err := repository.DecodeSnapshot(raw)
	if err != nil {
		return nil, fmt.Errorf("redis store: key %s: %w", r.key, err)
	}
	return snapshot, nil
}
