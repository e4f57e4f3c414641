package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "0.0.0.0:3000", cfg.Address())
	require.Equal(t, DriverFile, cfg.Store.Driver)
	require.Equal(t, "./data/data.json", cfg.Store.Path)
	require.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	require.Equal(t, 5*time.Second, cfg.Context.RequestTimeout)
	require.Equal(t, "0.0.0.0:8080", cfg.FrontendAddress())
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "4000")
	t.Setenv("STORE_DRIVER", "Bolt")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "3")
	t.Setenv("MONITOR_INTERVAL", "1m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:8080, https://menu.example.com ,")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "4000", cfg.HTTP.Port)
	require.Equal(t, DriverBolt, cfg.Store.Driver)
	require.Equal(t, 3*time.Second, cfg.Context.RequestTimeout)
	require.Equal(t, time.Minute, cfg.Monitor.Interval)
	require.Equal(t, []string{"http://localhost:8080", "https://menu.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_ServerPortWinsOverPort(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "4000")
	t.Setenv("SERVER_PORT", "5000")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "5000", cfg.HTTP.Port)
}

func TestLoad_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Setenv("STORE_DRIVER", "postgres")
	_, err := Load()
	require.ErrorContains(t, err, "STORE_DRIVER")

	t.Setenv("STORE_DRIVER", "file")
	t.Setenv("SERVER_PORT", "http")
	_, err = Load()
	require.ErrorContains(t, err, "port")
}
