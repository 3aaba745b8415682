package middleware

import (
	"log/slog"

	"github.com/benuhq/benubot/core/logger"
	"github.com/benuhq/benubot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// ManagerOnly restricts a handler to the configured manager chat. Other
// users receive no reply; the attempt is logged.
func ManagerOnly(managerChatID int64, next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		chat := c.Chat()
		if chat == nil || chat.ID != managerChatID {
			logger.TG.LogAttrs(helpers.Ctx(c), slog.LevelWarn, "access.denied",
				slog.Int64("chat_id", chatIDOf(c)),
				slog.String("handler", logger.HandlerFrom(helpers.Ctx(c))),
			)
			if c.Callback() != nil {
				helpers.Answer(c, "Not authorized")
			}
			return nil
		}
		return next(c)
	}
}

func chatIDOf(c tele.Context) int64 {
	if chat := c.Chat(); chat != nil {
		return chat.ID
	}
	return 0
}
