// Package sender delivers outbound messages through a small worker pool
// so slow Telegram API calls never block update handling.
package sender

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/benuhq/benubot/core/logger"
	"github.com/benuhq/benubot/core/telegram/netutil"

	tele "gopkg.in/telebot.v4"
)

const (
	defaultWorkers   = 4
	defaultQueueSize = 256
	defaultAttempts  = 3
	retryBackoff     = time.Second
)

// Job is one outbound message.
type Job struct {
	To   tele.Recipient
	Text string
	Opts []interface{}
}

// Dispatcher queues outbound messages and sends them asynchronously.
type Dispatcher struct {
	bot     *tele.Bot
	token   string
	jobs    chan Job
	wg      sync.WaitGroup
	closed  chan struct{}
	closeMu sync.Once
}

// New starts a Dispatcher with the given worker count. A count below 1
// uses the default.
func New(bot *tele.Bot, token string, workers int) *Dispatcher {
	if workers < 1 {
		workers = defaultWorkers
	}
	d := &Dispatcher{
		bot:    bot,
		token:  token,
		jobs:   make(chan Job, defaultQueueSize),
		closed: make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	return d
}

// Enqueue queues a message for delivery. It returns false when the
// queue is full or the dispatcher is shut down.
func (d *Dispatcher) Enqueue(job Job) bool {
	select {
	case <-d.closed:
		return false
	default:
	}
	select {
	case d.jobs <- job:
		return true
	default:
		logger.TG.LogAttrs(context.Background(), slog.LevelWarn, "send.queue_full",
			slog.Int("queue_cap", cap(d.jobs)),
		)
		return false
	}
}

// Shutdown stops accepting jobs and waits for in-flight sends, up to the
// context deadline.
func (d *Dispatcher) Shutdown(ctx context.Context) {
	d.closeMu.Do(func() {
		close(d.closed)
		close(d.jobs)
	})

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		logger.TG.LogAttrs(ctx, slog.LevelWarn, "send.shutdown_timeout", slog.Int("pending", len(d.jobs)))
	}
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()
	for job := range d.jobs {
		d.deliver(job)
	}
}

func (d *Dispatcher) deliver(job Job) {
	var lastErr error
	for attempt := 1; attempt <= defaultAttempts; attempt++ {
		_, err := d.bot.Send(job.To, job.Text, job.Opts...)
		if err == nil {
			return
		}
		lastErr = err
		if !netutil.ShouldRetry(err) {
			break
		}
		time.Sleep(retryBackoff * time.Duration(attempt))
	}
	logger.TG.LogAttrs(context.Background(), slog.LevelError, "send.failed",
		slog.String("recipient", job.To.Recipient()),
		slog.String("err", d.redact(lastErr)),
	)
}

// redact strips the bot token from error text before it reaches logs.
func (d *Dispatcher) redact(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if d.token != "" {
		msg = strings.ReplaceAll(msg, d.token, "[REDACTED]")
	}
	return msg
}
