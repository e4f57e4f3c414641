package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/catalog/domain"
	"github.com/fastygo/catalog/internal/config"
)

func testConfig(t *testing.T, driver string) *config.Config {
	dir := t.TempDir()
	return &config.Config{
		Store: config.StoreConfig{
			Driver:     driver,
			Path:       filepath.Join(dir, "data.json"),
			BoltPath:   filepath.Join(dir, "catalog.db"),
			BadgerPath: filepath.Join(dir, "badger"),
			Key:        "catalog:snapshot",
		},
	}
}

func TestOpen_Drivers(t *testing.T) {
	server := miniredis.RunT(t)

	for _, driver := range []string{config.DriverFile, config.DriverBolt, config.DriverBadger, config.DriverRedis} {
		t.Run(driver, func(t *testing.T) {
			cfg := testConfig(t, driver)
			cfg.Redis.URL = "redis://" + server.Addr()

			backend, closeFn, err := Open(cfg, nil)
			require.NoError(t, err)
			defer func() { require.NoError(t, closeFn(context.Background())) }()

			ctx := context.Background()
			require.NoError(t, backend.Ping(ctx))
			snapshot, err := backend.Load(ctx)
			require.NoError(t, err)
			require.Equal(t, domain.NewSnapshot(), snapshot)
		})
	}
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, _, err := Open(testConfig(t, "mongo"), nil)
	require.ErrorContains(t, err, "mongo")
}
