package redis

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/catalog/internal/config"
)

func TestNewClient(t *testing.T) {
	server := miniredis.RunT(t)

	client, err := NewClient(config.RedisConfig{URL: "redis://" + server.Addr(), DB: 2})
	require.NoError(t, err)
	defer client.Close()
	require.Equal(t, 2, client.Options().DB)
}

func TestNewClient_Errors(t *testing.T) {
	_, err := NewClient(config.RedisConfig{URL: "not-a-url"})
	require.ErrorContains(t, err, "parse redis url")

	server := miniredis.RunT(t)
	addr := server.Addr()
	server.Close()
	_, err = NewClient(config.RedisConfig{URL: "redis://" + addr})
	require.ErrorContains(t, err, "ping redis")
}
