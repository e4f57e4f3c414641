package monitor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/fastygo/catalog/repository"
	"github.com/fastygo/catalog/repository/mocks"
)

func newMonitor(t *testing.T, checker repository.HealthChecker, driver string, interval time.Duration) *Monitor {
	t.Helper()
	m, err := New(checker, driver, interval, nil)
	require.NoError(t, err)
	return m
}

func TestMonitor_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mocks.NewMockHealthChecker(ctrl)

	gomock.InOrder(
		checker.EXPECT().Ping(gomock.Any()).Return(nil),
		checker.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused")),
	)

	m := newMonitor(t, checker, "redis", time.Minute)
	require.False(t, m.GetStatus().Store, "no check has run yet")

	m.Refresh()
	status := m.GetStatus()
	require.True(t, status.Store)
	require.Equal(t, "redis", status.Driver)
	require.Empty(t, status.Error)
	require.False(t, status.LastCheck.IsZero())

	m.Refresh()
	status = m.GetStatus()
	require.False(t, status.Store)
	require.Equal(t, "connection refused", status.Error)
}

func TestMonitor_Schedule(t *testing.T) {
	for _, tt := range []struct {
		interval time.Duration
		want     time.Duration
	}{
		{time.Minute, time.Minute},
		{90 * time.Second, 90 * time.Second},
		{0, 10 * time.Second},
		{500 * time.Millisecond, 10 * time.Second},
	} {
		m := newMonitor(t, nil, "file", tt.interval)
		entries := m.cron.Entries()
		require.Len(t, entries, 1)

		schedule, ok := entries[0].Schedule.(cron.ConstantDelaySchedule)
		require.True(t, ok)
		require.Equal(t, tt.want, schedule.Delay, "interval %s", tt.interval)
	}
}

func TestMonitor_StartStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	checker := mocks.NewMockHealthChecker(ctrl)
	checker.EXPECT().Ping(gomock.Any()).Return(nil).MinTimes(1)

	m := newMonitor(t, checker, "file", time.Hour)
	m.Start()
	require.True(t, m.GetStatus().Store)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	m.Stop(ctx)
}

func TestMonitor_NoStore(t *testing.T) {
	m, err := New(nil, "file", 0, nil)
	require.NoError(t, err)
	m.Refresh()
	require.False(t, m.GetStatus().Store)
	require.NotEmpty(t, m.GetStatus().Error)
}
