package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/benuhq/benubot/core/logger"
	"github.com/benuhq/benubot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// Recover converts handler panics into logged errors so a single bad
// update cannot take the poller down.
func Recover() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			defer func() {
				if r := recover(); r != nil {
					ctx := helpers.Ctx(c)
					logger.TG.LogAttrs(ctx, slog.LevelError, "handler.panic",
						slog.Any("panic", r),
						slog.String("handler", logger.HandlerFrom(ctx)),
						slog.String("stack", string(debug.Stack())),
					)
				}
			}()
			return next(c)
		}
	}
}
