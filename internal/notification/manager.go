// Package notification dispatches best-effort messages to external channels.
// Dispatch is fire-and-forget: events are queued and delivered by background
// workers after the triggering operation has already completed, and delivery
// failures never reach that operation's caller.
package notification

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"techstore/internal/config"
)

const deliveryTimeout = 10 * time.Second

type emailSender interface {
	Send(ctx context.Context, to string, content Rendered) error
}

type telegramSender interface {
	SendMessage(ctx context.Context, chatID, text string) error
}

// Manager owns the dispatch queue and the channel clients
type Manager struct {
	config   config.NotificationsConfig
	logger   *slog.Logger
	strict   bool // development mode: unknown template ids fail instead of degrading
	email    emailSender
	telegram telegramSender
	limiters map[string]*rate.Limiter
	queue    chan Event
	wg       sync.WaitGroup
}

// NewManager creates a notification manager with the real channel clients
func NewManager(cfg config.NotificationsConfig, debug bool, logger *slog.Logger) *Manager {
	m := &Manager{
		config:   cfg,
		logger:   logger,
		strict:   debug,
		limiters: make(map[string]*rate.Limiter),
		queue:    make(chan Event, cfg.QueueSize),
	}

	if cfg.Email.Enabled {
		m.email = NewEmailClient(cfg.Email, logger)
	}
	if cfg.Telegram.Enabled {
		m.telegram = NewTelegramClient(cfg.Telegram, logger)
	}

	if cfg.Email.RateLimit.Enabled {
		m.limiters[ChannelEmail] = rate.NewLimiter(
			rate.Limit(cfg.Email.RateLimit.RequestsPerMinute)/60,
			cfg.Email.RateLimit.Burst,
		)
	}
	if cfg.Telegram.RateLimit.Enabled {
		m.limiters[ChannelTelegram] = rate.NewLimiter(
			rate.Limit(cfg.Telegram.RateLimit.RequestsPerMinute)/60,
			cfg.Telegram.RateLimit.Burst,
		)
	}

	return m
}

// Start launches the delivery workers
func (m *Manager) Start() {
	workers := m.config.WorkerCount
	if workers < 1 {
		workers = 1
	}
	m.logger.Info("starting notification workers", "count", workers)
	for i := 0; i < workers; i++ {
		m.wg.Add(1)
		go m.worker()
	}
}

// Stop drains the queue and waits for in-flight deliveries
func (m *Manager) Stop() {
	close(m.queue)
	m.wg.Wait()
	m.logger.Info("notification manager stopped")
}

// Dispatch enqueues an event and returns immediately. It never blocks the
// request path: when the queue is full the event is dropped, logged and
// counted.
func (m *Manager) Dispatch(event Event) {
	select {
	case m.queue <- event:
	default:
		notificationsDroppedTotal.Inc()
		m.logger.Warn("notification queue full, event dropped",
			"template", event.Template,
			"channel", event.Channel)
	}
}

func (m *Manager) worker() {
	defer m.wg.Done()
	for event := range m.queue {
		// Delivery runs detached from the request that triggered it.
		ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
		if err := m.deliver(ctx, event); err != nil {
			notificationsFailedTotal.WithLabelValues(event.Channel).Inc()
			m.logger.Error("notification delivery failed",
				"template", event.Template,
				"channel", event.Channel,
				"error", err)
		} else {
			notificationsSentTotal.WithLabelValues(event.Channel).Inc()
		}
		cancel()
	}
}

func (m *Manager) deliver(ctx context.Context, event Event) error {
	if limiter, ok := m.limiters[event.Channel]; ok && !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for channel %s", event.Channel)
	}

	content, err := Render(event.Template, event.Language, event.Params, m.strict)
	if err != nil {
		return err
	}

	switch event.Channel {
	case ChannelEmail:
		if m.email == nil {
			return fmt.Errorf("email channel not configured")
		}
		return m.email.Send(ctx, event.Recipient, content)
	case ChannelTelegram:
		if m.telegram == nil {
			return fmt.Errorf("telegram channel not configured")
		}
		chatID := event.Recipient
		if chatID == "" {
			chatID = m.config.Telegram.ChatID
		}
		return m.telegram.SendMessage(ctx, chatID, content.Text)
	default:
		return fmt.Errorf("unsupported notification channel: %s", event.Channel)
	}
}
