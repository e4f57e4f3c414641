package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	redislib "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/catalog/repository"
	"github.com/fastygo/catalog/repository/storetest"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *redislib.Client) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redislib.NewClient(&redislib.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return server, client
}

func TestSnapshotStore_Contract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) repository.SnapshotStore {
		_, client := newTestClient(t)
		return NewSnapshotStore(client, "")
	})
}

func TestSnapshotStore_UsesConfiguredKey(t *testing.T) {
	server, client := newTestClient(t)
	store := NewSnapshotStore(client, "test:catalog")

	_, err := store.Load(context.Background())
	require.NoError(t, err)

	raw, err := server.Get("test:catalog")
	require.NoError(t, err)
	require.JSONEq(t, `{"restaurants":[],"dishes":[]}`, raw)
}

func TestSnapshotStore_MalformedDocument(t *testing.T) {
	server, client := newTestClient(t)
	require.NoError(t, server.Set("catalog:snapshot", "{"))

	_, err := NewSnapshotStore(client, "").Load(context.Background())
	require.ErrorContains(t, err, "catalog:snapshot")
}

func TestSnapshotStore_Unreachable(t *testing.T) {
	server, client := newTestClient(t)
	store := NewSnapshotStore(client, "")
	server.Close()

	_, err := store.Load(context.Background())
	require.Error(t, err)
	require.Error(t, store.Ping(context.Background()))
}
