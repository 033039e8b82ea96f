package ratelimiter

import (
	"sync"
	"time"

	"github.com/nis6tech/certify/internal/config"
	"go.uber.org/zap"
)

type window struct {
	count   int
	resetAt time.Time
}

// FixedWindowRateLimiter counts requests per client in fixed time windows.
// A window starts on the client's first request after the previous window
// expired, so counters need no background sweeper.
type FixedWindowRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*window
	limit   int
	frame   time.Duration
	Enabled bool
	logger  *zap.SugaredLogger
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		clients: make(map[string]*window),
		limit:   cfg.RequestsPerTimeFrame,
		frame:   cfg.TimeFrame,
		Enabled: cfg.Enabled,
		logger:  logger,
	}
}

// Allow reports whether the client may proceed and, when denied, for how
// long it should wait.
func (rl *FixedWindowRateLimiter) Allow(clientID string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.clients[clientID]
	if !ok || now.After(w.resetAt) {
		rl.clients[clientID] = &window{count: 1, resetAt: now.Add(rl.frame)}
		return true, 0
	}

	if w.count >= rl.limit {
		rl.logger.Debugf("Rate limit exceeded for client: %s", clientID)
		return false, time.Until(w.resetAt)
	}

	w.count++
	return true, 0
}
