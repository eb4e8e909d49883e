package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/bagdasarian/team-tasks/internal/repository"
	"github.com/rs/zerolog"
)

const notificationWriteTimeout = 5 * time.Second

// NotificationDispatcher записывает уведомления в фоне одним воркером.
// Publish никогда не блокирует: при полной очереди уведомление отбрасывается.
// Ошибки записи только логируются.
type NotificationDispatcher struct {
	repo   repository.NotificationRepository
	logger zerolog.Logger

	mu     sync.RWMutex
	closed bool
	queue  chan *domain.Notification
	done   chan struct{}

	dropped atomic.Uint64
}

// NewNotificationDispatcher создает диспетчер и запускает воркер
func NewNotificationDispatcher(repo repository.NotificationRepository, queueSize int, logger zerolog.Logger) *NotificationDispatcher {
	if queueSize <= 0 {
		queueSize = 1
	}

	d := &NotificationDispatcher{
		repo:   repo,
		logger: logger.With().Str("component", "notification_dispatcher").Logger(),
		queue:  make(chan *domain.Notification, queueSize),
		done:   make(chan struct{}),
	}

	go d.run()

	return d
}

// Publish ставит уведомление в очередь; false, если оно отброшено
func (d *NotificationDispatcher) Publish(notification *domain.Notification) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(notification, "dispatcher closed")
		return false
	}

	select {
	case d.queue <- notification:
		return true
	default:
		d.drop(notification, "queue full")
		return false
	}
}

// Dropped возвращает число отброшенных уведомлений
func (d *NotificationDispatcher) Dropped() uint64 {
	return d.dropped.Load()
}

// Close перестает принимать уведомления и ждет, пока воркер запишет очередь.
// Если ctx истекает раньше, оставшиеся уведомления теряются.
func (d *NotificationDispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *NotificationDispatcher) run() {
	defer close(d.done)

	for notification := range d.queue {
		d.persist(notification)
	}
}

func (d *NotificationDispatcher) persist(notification *domain.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), notificationWriteTimeout)
	defer cancel()

	if err := d.repo.Create(ctx, notification); err != nil {
		d.logger.Error().
			Err(err).
			Str("user_id", notification.UserID).
			Str("message", notification.Message).
			Msg("failed to persist notification")
		return
	}

	d.logger.Debug().
		Str("notification_id", notification.ID).
		Str("user_id", notification.UserID).
		Msg("notification persisted")
}

func (d *NotificationDispatcher) drop(notification *domain.Notification, reason string) {
	d.dropped.Add(1)
	d.logger.Warn().
		Str("user_id", notification.UserID).
		Str("reason", reason).
		Msg("notification dropped")
}
