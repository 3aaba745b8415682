// Package bootstrap assembles the shared transport runtime for a bot
// binary: logger, telebot instance, middleware chain, registry, and the
// outbound dispatcher.
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/benuhq/benubot/core/config"
	"github.com/benuhq/benubot/core/logger"
	"github.com/benuhq/benubot/core/telegram"
	"github.com/benuhq/benubot/core/telegram/middleware"
	"github.com/benuhq/benubot/core/telegram/router"
	"github.com/benuhq/benubot/core/telegram/sender"

	tele "gopkg.in/telebot.v4"
)

// Runtime holds the transport pieces an application wires its handlers
// into.
type Runtime struct {
	Bot        *tele.Bot
	Registry   *telegram.Registry
	Dispatcher *sender.Dispatcher
	Counters   *middleware.Counters
}

// Setup initializes the logger and builds the bot runtime from core
// configuration. Handlers are registered by the caller before Start.
func Setup(cfg *config.Config) (*Runtime, error) {
	if err := logger.InitLogger(cfg); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	bot, err := telegram.BuildBot(cfg)
	if err != nil {
		return nil, fmt.Errorf("build bot: %w", err)
	}

	counters := &middleware.Counters{}
	telegram.ApplyMiddlewares(bot, telegram.MiddlewareOptions{
		RateLimitIntervalMS: cfg.RateLimit.IntervalMS,
		RateLimitExcludes:   cfg.RateLimit.ExcludeUpdates,
		Counters:            counters,
	})

	return &Runtime{
		Bot:        bot,
		Registry:   telegram.NewRegistry(),
		Dispatcher: sender.New(bot, cfg.Telegram.Token, 0),
		Counters:   counters,
	}, nil
}

// Start attaches the registry to the bot and runs the poller until the
// context is cancelled, then drains the dispatcher.
func (rt *Runtime) Start(ctx context.Context) {
	router.New(rt.Bot, rt.Registry).Attach()
	telegram.SetupCommands(rt.Bot, rt.Registry)

	telegram.Run(ctx, rt.Bot)

	drainCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	rt.Dispatcher.Shutdown(drainCtx)
}
