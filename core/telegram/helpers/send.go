package helpers

import (
	"log/slog"

	"github.com/benuhq/benubot/core/logger"

	tele "gopkg.in/telebot.v4"
)

// Answer acknowledges a callback query, optionally with a toast message.
func Answer(c tele.Context, text string) {
	if c == nil || c.Callback() == nil {
		return
	}
	resp := &tele.CallbackResponse{}
	if text != "" {
		resp.Text = text
	}
	if err := c.Respond(resp); err != nil {
		logger.TG.LogAttrs(Ctx(c), slog.LevelDebug, "callback.respond.failed",
			slog.String("err", err.Error()),
		)
	}
}

// EditOrSend edits the originating message when the update is a callback,
// otherwise sends a new message.
func EditOrSend(c tele.Context, text string, opts ...interface{}) error {
	if c == nil {
		return nil
	}
	if c.Callback() != nil {
		if err := c.Edit(text, opts...); err == nil {
			return nil
		}
	}
	return c.Send(text, opts...)
}
