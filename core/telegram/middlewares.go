package telegram

import (
	"github.com/benuhq/benubot/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// MiddlewareOptions configures the default middleware chain.
type MiddlewareOptions struct {
	RateLimitIntervalMS int
	RateLimitExcludes   []string
	Counters            *middleware.Counters
}

// ApplyMiddlewares installs the standard chain on the bot. Order
// matters: recover outermost, then logging, metrics, rate limiting.
func ApplyMiddlewares(bot *tele.Bot, opts MiddlewareOptions) {
	bot.Use(middleware.Recover())
	bot.Use(middleware.Logging())
	if opts.Counters != nil {
		bot.Use(middleware.Metrics(opts.Counters))
	}
	if opts.RateLimitIntervalMS > 0 {
		bot.Use(middleware.RateLimit(opts.RateLimitIntervalMS, opts.RateLimitExcludes))
	}
}
