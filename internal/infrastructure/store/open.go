// Package store builds the configured snapshot store driver.
package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/fastygo/catalog/internal/config"
	redisInfra "github.com/fastygo/catalog/internal/infrastructure/redis"
	"github.com/fastygo/catalog/repository"
	badgerStore "github.com/fastygo/catalog/repository/badger"
	"github.com/fastygo/catalog/repository/boltdb"
	"github.com/fastygo/catalog/repository/file"
	redisStore "github.com/fastygo/catalog/repository/redis"
)

// Backend is an opened snapshot store plus the hooks the server needs.
type Backend interface {
	repository.SnapshotStore
	repository.HealthChecker
}

// CloseFunc releases the driver's resources.
type CloseFunc func(ctx context.Context) error

// Open returns the driver selected by cfg.Store.Driver.
func Open(cfg *config.Config, logger *zap.Logger) (Backend, CloseFunc, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	noop := func(context.Context) error { return nil }

	switch cfg.Store.Driver {
	case config.DriverFile, "":
		logger.Info("using file snapshot store", zap.String("path", cfg.Store.Path))
		return file.NewSnapshotStore(cfg.Store.Path), noop, nil

	case config.DriverBolt:
		s, err := boltdb.Open(cfg.Store.BoltPath, "catalog", cfg.Store.Key)
		if err != nil {
			return nil, nil, fmt.Errorf("open bolt store: %w", err)
		}
		logger.Info("using bolt snapshot store", zap.String("path", cfg.Store.BoltPath))
		return s, func(context.Context) error { return s.Close() }, nil

	case config.DriverBadger:
		s, err := badgerStore.Open(badgerStore.Options{
			Dir:    cfg.Store.BadgerPath,
			Key:    cfg.Store.Key,
			Logger: logger,
		})
		if err != nil {
			return nil, nil, err
		}
		logger.Info("using badger snapshot store", zap.String("dir", cfg.Store.BadgerPath))
		return s, func(context.Context) error { return s.Close() }, nil

	case config.DriverRedis:
		client, err := redisInfra.NewClient(cfg.Redis)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		logger.Info("using redis snapshot store", zap.String("key", cfg.Store.Key))
		return redisStore.NewSnapshotStore(client, cfg.Store.Key), func(context.Context) error { return client.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
