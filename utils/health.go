package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Pinger is anything whose reachability can be probed.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RedisPinger adapts a redis client to Pinger.
type RedisPinger struct {
	Client *redis.Client
}

func (p RedisPinger) Ping(ctx context.Context) error {
	return p.Client.Ping(ctx).Err()
}

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Store     bool      `json:"store"`
	Cache     *bool     `json:"cache,omitempty"` // nil when no cache is configured
	CheckedAt time.Time `json:"checkedAt"`
}

// HealthMonitor probes the record store (and the optional cache) and keeps the
// latest snapshot.
type HealthMonitor struct {
	store   Pinger
	cache   Pinger
	timeout time.Duration
	logger  *zap.Logger

	mu      sync.RWMutex
	current HealthStatus
	checked bool
}

func NewHealthMonitor(store, cache Pinger, logger *zap.Logger) *HealthMonitor {
	return &HealthMonitor{
		store:   store,
		cache:   cache,
		timeout: 2 * time.Second,
		logger:  logger,
	}
}

// Current returns latest stored health snapshot.
func (m *HealthMonitor) Current() HealthStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Check probes every dependency now and records the result. Store state
// transitions are logged.
func (m *HealthMonitor) Check(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	status := HealthStatus{CheckedAt: time.Now()}
	if m.store != nil {
		err := m.store.Ping(ctx)
		status.Store = err == nil
		if err != nil {
			m.logger.Debug("store ping failed", zap.Error(err))
		}
	}
	if m.cache != nil {
		ok := m.cache.Ping(ctx) == nil
		status.Cache = &ok
	}

	m.mu.Lock()
	prev, hadPrev := m.current, m.checked
	m.current = status
	m.checked = true
	m.mu.Unlock()

	if hadPrev && prev.Store != status.Store {
		if status.Store {
			m.logger.Info("record store reconnected")
		} else {
			m.logger.Warn("record store disconnected")
		}
	}
	return status
}

// Start performs periodic health checks until ctx is cancelled.
func (m *HealthMonitor) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		m.Check(ctx)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.Check(ctx)
			}
		}
	}()
}
