package telegram

import (
	"context"
	"log/slog"
	"time"

	"github.com/benuhq/benubot/core/config"
	"github.com/benuhq/benubot/core/logger"

	tele "gopkg.in/telebot.v4"
)

// BuildBot constructs the telebot instance from core configuration with
// the tuned HTTP client and poller.
func BuildBot(cfg *config.Config) (*tele.Bot, error) {
	poller := BuildPoller(PollerOptions{
		RunMode:                cfg.Telegram.RunMode,
		LongPollTimeoutSeconds: cfg.Telegram.LongPollTimeoutSeconds,
		Webhook: WebhookOptions{
			Listen: cfg.Webhook.Listen,
			Port:   cfg.Webhook.Port,
			URL:    cfg.Webhook.URL,
		},
	})

	bot, err := tele.NewBot(tele.Settings{
		Token:   cfg.Telegram.Token,
		Poller:  poller,
		Client:  BuildHTTPClient(),
		OnError: onBotError,
	})
	if err != nil {
		return nil, err
	}
	return bot, nil
}

// Run starts the bot and blocks until the context is cancelled, then
// stops the poller gracefully.
func Run(ctx context.Context, bot *tele.Bot) {
	go func() {
		<-ctx.Done()
		logger.TG.LogAttrs(context.Background(), slog.LevelInfo, "bot.stopping")
		bot.Stop()
	}()

	logger.TG.LogAttrs(ctx, slog.LevelInfo, "bot.started",
		slog.String("username", bot.Me.Username),
		slog.Int64("bot_id", bot.Me.ID),
	)
	start := time.Now()
	bot.Start()
	logger.TG.LogAttrs(context.Background(), slog.LevelInfo, "bot.stopped",
		slog.Duration("uptime", logger.RoundMS(time.Since(start))),
	)
}

func onBotError(err error, c tele.Context) {
	if err == nil {
		return
	}
	attrs := []slog.Attr{slog.String("err", err.Error())}
	if c != nil {
		if chat := c.Chat(); chat != nil {
			attrs = append(attrs, slog.Int64("chat_id", chat.ID))
		}
	}
	logger.TG.LogAttrs(context.Background(), slog.LevelError, "bot.handler_error", attrs...)
}
