package router

import (
	"log/slog"
	"time"

	"github.com/benuhq/benubot/core/logger"
	"github.com/benuhq/benubot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// wrap names the handler on the request context and logs a one-line
// summary with outcome and duration after it returns.
func wrap(name string, next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		ctx := helpers.WithHandlerName(c, name)
		start := time.Now()

		err := next(c)

		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		attrs := []slog.Attr{
			slog.String("status", logger.Status(err)),
			slog.Duration("duration", logger.Took(start)),
		}
		if err != nil {
			attrs = append(attrs, slog.String("err", err.Error()))
		}
		logger.TG.LogAttrs(ctx, level, "handler.done", attrs...)
		return err
	}
}
