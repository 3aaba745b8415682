package middleware

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/benuhq/benubot/core/logger"
	"github.com/benuhq/benubot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

type updateDedup struct {
	mu   sync.Mutex
	seen map[int]time.Time
}

func (d *updateDedup) markSeen(id int) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	now := time.Now()
	if _, dup := d.seen[id]; dup {
		return false
	}
	if len(d.seen) > 4096 {
		cutoff := now.Add(-10 * time.Minute)
		for k, t := range d.seen {
			if t.Before(cutoff) {
				delete(d.seen, k)
			}
		}
	}
	d.seen[id] = now
	return true
}

// Logging attaches a correlated request context to every update and logs
// its receipt. Updates redelivered by Telegram with the same ID are
// dropped before reaching handlers.
func Logging() tele.MiddlewareFunc {
	dedup := &updateDedup{seen: make(map[int]time.Time)}

	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			update := c.Update()
			if !dedup.markSeen(update.ID) {
				logger.TG.LogAttrs(context.Background(), slog.LevelDebug, "update.duplicate",
					slog.Int("update_id", update.ID),
				)
				return nil
			}

			var chatID, userID int64
			if chat := c.Chat(); chat != nil {
				chatID = chat.ID
			}
			if sender := c.Sender(); sender != nil {
				userID = sender.ID
			}

			ctx := logger.WithUpdateMeta(context.Background(), update.ID, userID, chatID)
			ctx = logger.WithRID(ctx, logger.BuildRID(update.ID, chatID, userID))
			helpers.SetCtx(c, ctx)

			if logger.ShouldSampleDebug() {
				logger.TG.LogAttrs(ctx, slog.LevelDebug, "update.received",
					slog.String("kind", updateKind(c)),
				)
			}
			return next(c)
		}
	}
}

func updateKind(c tele.Context) string {
	switch {
	case c.Callback() != nil:
		return "callback"
	case c.Message() != nil:
		return "message"
	default:
		return "other"
	}
}
