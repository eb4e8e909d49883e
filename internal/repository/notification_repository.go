package repository

import (
	"context"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, notification *domain.Notification) error
	ListByUserID(ctx context.Context, userID string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, userID string, ids []string) (int64, error)
}
