package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/benuhq/benubot/core/logger"
	"github.com/benuhq/benubot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

type rateLimiter struct {
	mu       sync.Mutex
	lastSeen map[int64]time.Time
	interval time.Duration
}

func (rl *rateLimiter) allow(userID int64) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := time.Now()
	if last, ok := rl.lastSeen[userID]; ok && now.Sub(last) < rl.interval {
		return false
	}
	rl.lastSeen[userID] = now
	return true
}

func (rl *rateLimiter) sweep(maxAge time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	cutoff := time.Now().Add(-maxAge)
	for id, seen := range rl.lastSeen {
		if seen.Before(cutoff) {
			delete(rl.lastSeen, id)
		}
	}
}

// RateLimit drops updates from users who send faster than the configured
// per-user interval. Update types listed in excludeUpdates ("callback",
// "message") bypass the limiter; excluding callbacks keeps multi-step
// button flows responsive.
func RateLimit(intervalMS int, excludeUpdates []string) tele.MiddlewareFunc {
	interval := time.Duration(intervalMS) * time.Millisecond
	rl := &rateLimiter{
		lastSeen: make(map[int64]time.Time),
		interval: interval,
	}
	excluded := make(map[string]bool, len(excludeUpdates))
	for _, kind := range excludeUpdates {
		excluded[kind] = true
	}

	go func() {
		ticker := time.NewTicker(10 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			rl.sweep(time.Hour)
		}
	}()

	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			if interval <= 0 {
				return next(c)
			}
			if c.Callback() != nil && excluded["callback"] {
				return next(c)
			}
			if c.Callback() == nil && c.Message() != nil && excluded["message"] {
				return next(c)
			}
			sender := c.Sender()
			if sender == nil {
				return next(c)
			}
			if !rl.allow(sender.ID) {
				logger.TG.LogAttrs(helpers.Ctx(c), slog.LevelDebug, "update.rate_limited",
					slog.Int64("user_id", sender.ID),
				)
				return nil
			}
			return next(c)
		}
	}
}
