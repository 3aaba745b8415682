// Package router attaches registered commands, callbacks, and text
// handlers to a telebot instance with uniform wrapping.
package router

import (
	"github.com/benuhq/benubot/core/telegram"
	"github.com/benuhq/benubot/core/telegram/callbacks"
	"github.com/benuhq/benubot/core/telegram/helpers"

	tele "gopkg.in/telebot.v4"
)

// Router binds a Registry to a bot.
type Router struct {
	bot      *tele.Bot
	registry *telegram.Registry
}

// New creates a Router for the given bot and registry.
func New(bot *tele.Bot, registry *telegram.Registry) *Router {
	return &Router{bot: bot, registry: registry}
}

// Attach wires every registered command, the callback dispatcher, and
// the text fallback onto the bot.
func (r *Router) Attach() {
	for name, cmd := range r.registry.Commands() {
		name, cmd := name, cmd
		r.bot.Handle(name, wrap("cmd"+name, cmd.Handler))
		for _, alias := range cmd.Aliases {
			r.bot.Handle(alias, wrap("cmd"+name, cmd.Handler))
		}
	}

	r.bot.Handle(tele.OnCallback, wrap("callback", r.dispatchCallback))

	if fallback := r.registry.TextFallback(); fallback != nil {
		r.bot.Handle(tele.OnText, wrap("text", fallback))
	}
}

// dispatchCallback routes a callback update to the handler registered
// for its namespace key.
func (r *Router) dispatchCallback(c tele.Context) error {
	parsed, ok := callbacks.Parse(c.Callback())
	if !ok {
		return r.registry.CallbackNotFound()(c)
	}
	handler, found := r.registry.GetCallback(parsed.Key)
	if !found {
		return r.registry.CallbackNotFound()(c)
	}
	helpers.WithHandlerName(c, "cb:"+parsed.Key)
	return handler(c)
}
