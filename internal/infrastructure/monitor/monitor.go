package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/fastygo/catalog/repository"
)

// Monitor periodically pings the snapshot store and caches the result for
// the health endpoint.
type Monitor struct {
	store  repository.HealthChecker
	driver string

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	cron     *cron.Cron
	logger   *zap.Logger
}

func New(store repository.HealthChecker, driver string, interval time.Duration, logger *zap.Logger) (*Monitor, error) {
	if interval < time.Second {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Monitor{
		store:    store,
		driver:   driver,
		interval: interval,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger,
	}

	schedule := fmt.Sprintf("@every %ds", int(interval.Seconds()))
	if _, err := m.cron.AddFunc(schedule, m.Refresh); err != nil {
		return nil, fmt.Errorf("schedule store health check %q: %w", schedule, err)
	}
	return m, nil
}

// Start runs one check immediately and then schedules the rest.
func (m *Monitor) Start() {
	m.Refresh()
	m.cron.Start()
	m.logger.Info("store monitor started", zap.Duration("interval", m.interval))
}

// Stop waits for a running check to finish or ctx to expire.
func (m *Monitor) Stop(ctx context.Context) {
	stopCtx := m.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	m.logger.Info("store monitor stopped")
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// Refresh pings the store now.
func (m *Monitor) Refresh() {
	status := Status{
		Driver:    m.driver,
		LastCheck: time.Now(),
	}
	if err := m.ping(); err != nil {
		status.Error = err.Error()
		m.logger.Warn("store health check failed", zap.String("driver", m.driver), zap.Error(err))
	} else {
		status.Store = true
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}

func (m *Monitor) ping() error {
	if m.store == nil {
		return fmt.Errorf("no store configured")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return m.store.Ping(ctx)
}
