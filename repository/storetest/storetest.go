// Package storetest holds the behaviour every SnapshotStore driver must share.
package storetest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fastygo/catalog/domain"
	"github.com/fastygo/catalog/repository"
)

// Factory opens a fresh, empty store for one subtest.
type Factory func(t *testing.T) repository.SnapshotStore

// Run exercises the SnapshotStore contract against stores built by open.
func Run(t *testing.T, open Factory) {
	t.Helper()

	t.Run("load bootstraps an empty snapshot idempotently", func(t *testing.T) {
		store := open(t)
		ctx := context.Background()

		first, err := store.Load(ctx)
		require.NoError(t, err)
		second, err := store.Load(ctx)
		require.NoError(t, err)

		require.Equal(t, domain.NewSnapshot(), first)
		require.Equal(t, first, second)
	})

	t.Run("save replaces the snapshot in full", func(t *testing.T) {
		store := open(t)
		ctx := context.Background()

		initial := Sample()
		require.NoError(t, store.Save(ctx, initial))

		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		require.Equal(t, initial, loaded)

		replacement := domain.NewSnapshot()
		replacement.Restaurants = append(replacement.Restaurants, domain.Restaurant{ID: "other", Name: "Other", CreatedAt: 7})
		require.NoError(t, store.Save(ctx, replacement))

		loaded, err = store.Load(ctx)
		require.NoError(t, err)
		require.Equal(t, replacement, loaded)
	})

	t.Run("bootstrap never overwrites stored data", func(t *testing.T) {
		store := open(t)
		ctx := context.Background()

		require.NoError(t, store.Save(ctx, Sample()))
		loaded, err := store.Load(ctx)
		require.NoError(t, err)
		require.Len(t, loaded.Restaurants, 1)
		require.Len(t, loaded.Dishes, 2)
	})

	t.Run("save rejects a nil snapshot", func(t *testing.T) {
		store := open(t)
		require.ErrorIs(t, store.Save(context.Background(), nil), repository.ErrNilSnapshot)
	})

	t.Run("ping", func(t *testing.T) {
		store := open(t)
		checker, ok := store.(repository.HealthChecker)
		if !ok {
			t.Skip("store does not report health")
		}
		require.NoError(t, checker.Ping(context.Background()))
	})
}

// Sample returns a small populated snapshot.
func Sample() *domain.Snapshot {
	snapshot := domain.NewSnapshot()
	snapshot.Restaurants = append(snapshot.Restaurants, domain.Restaurant{ID: "r1", Name: "Casa Lucio", CreatedAt: 100})
	snapshot.Dishes = append(snapshot.Dishes,
		domain.Dish{ID: "d1", Name: "Huevos rotos", Price: 14.5, RestaurantID: "r1", CreatedAt: 101},
		domain.Dish{ID: "d2", Name: "Flan", Price: 0, RestaurantID: "r1", CreatedAt: 102},
	)
	return snapshot
}
