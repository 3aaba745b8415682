package helpers

import (
	"context"

	"github.com/benuhq/benubot/core/logger"

	tele "gopkg.in/telebot.v4"
)

// Ctx extracts the request context stored on a telebot context, falling
// back to context.Background when middleware has not attached one.
func Ctx(c tele.Context) context.Context {
	if c == nil {
		return context.Background()
	}
	if v := c.Get("ctx"); v != nil {
		if ctx, ok := v.(context.Context); ok {
			return ctx
		}
	}
	return context.Background()
}

// SetCtx stores a request context on the telebot context for downstream
// handlers and middleware.
func SetCtx(c tele.Context, ctx context.Context) {
	if c == nil || ctx == nil {
		return
	}
	c.Set("ctx", ctx)
}

// WithHandlerName annotates the request context with the handler name and
// re-stores it on the telebot context.
func WithHandlerName(c tele.Context, name string) context.Context {
	ctx := logger.WithHandler(Ctx(c), name)
	SetCtx(c, ctx)
	return ctx
}
