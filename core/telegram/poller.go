package telegram

import (
	"fmt"
	"strings"
	"time"

	tele "gopkg.in/telebot.v4"
)

const (
	RunModeWebhook  = "webhook"
	RunModeLongpoll = "longpoll"
)

const defaultLongPollTimeout = 10 * time.Second

// WebhookOptions declares where the webhook listener binds and the
// public URL Telegram should deliver to.
type WebhookOptions struct {
	Listen string
	Port   int
	URL    string
}

// PollerOptions configures BuildPoller.
type PollerOptions struct {
	RunMode                string
	LongPollTimeoutSeconds int
	Webhook                WebhookOptions
}

// BuildPoller returns the update source for the configured run mode.
// Anything other than webhook falls back to long polling.
func BuildPoller(opts PollerOptions) tele.Poller {
	switch strings.ToLower(strings.TrimSpace(opts.RunMode)) {
	case RunModeWebhook:
		return &tele.Webhook{
			Listen:   fmt.Sprintf("%s:%d", opts.Webhook.Listen, opts.Webhook.Port),
			Endpoint: &tele.WebhookEndpoint{PublicURL: opts.Webhook.URL},
		}
	default:
		timeout := time.Duration(opts.LongPollTimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = defaultLongPollTimeout
		}
		return &tele.LongPoller{Timeout: timeout}
	}
}
