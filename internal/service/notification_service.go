package service

import (
	"context"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type NotificationService interface {
	// ListMine возвращает уведомления пользователя, новые первыми
	ListMine(ctx context.Context, userID string) ([]*domain.Notification, error)

	// MarkRead помечает непрочитанные уведомления пользователя прочитанными.
	// Пустой ids означает все уведомления. Возвращает число измененных.
	MarkRead(ctx context.Context, userID string, ids []string) (int64, error)
}
