package lifecycle

import (
	"context"
	"errors"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestManager_ShutdownRunsHooksInReverse(t *testing.T) {
	m := New(time.Second, nil)

	var order []string
	for _, name := range []string{"store", "monitor", "http_server"} {
		m.Register(name, func(context.Context) error {
			order = append(order, name)
			return nil
		})
	}
	m.Register("ignored", nil)

	require.NoError(t, m.Shutdown(context.Background()))
	require.Equal(t, []string{"http_server", "monitor", "store"}, order)

	// Hooks run once.
	require.NoError(t, m.Shutdown(context.Background()))
	require.Len(t, order, 3)
}

func TestManager_ShutdownJoinsErrors(t *testing.T) {
	m := New(time.Second, nil)
	boom := errors.New("boom")
	ran := false

	m.Register("store", func(context.Context) error {
		ran = true
		return nil
	})
	m.Register("redis", func(context.Context) error { return boom })

	err := m.Shutdown(context.Background())
	require.ErrorIs(t, err, boom)
	require.ErrorContains(t, err, "redis")
	require.True(t, ran, "later hooks still run after a failure")
}

func TestManager_ShutdownHonoursTimeout(t *testing.T) {
	m := New(20*time.Millisecond, nil)
	m.Register("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	err := m.Shutdown(context.Background())
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestManager_RegisterAfterShutdown(t *testing.T) {
	m := New(time.Second, nil)
	require.NoError(t, m.Shutdown(context.Background()))

	called := false
	m.Register("late", func(context.Context) error {
		called = true
		return nil
	})
	require.NoError(t, m.Shutdown(context.Background()))
	require.False(t, called)
}

func TestManager_ListenCancelsOnSignal(t *testing.T) {
	m := New(time.Second, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stop := m.Listen(cancel)
	defer stop()

	require.NoError(t, syscall.Kill(syscall.Getpid(), syscall.SIGTERM))

	select {
	case <-ctx.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("context was not cancelled by SIGTERM")
	}
}
