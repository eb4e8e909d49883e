package service

import (
	"context"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/bagdasarian/team-tasks/internal/repository"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
}

func NewNotificationService(notificationRepo repository.NotificationRepository) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
	}
}

func (s *notificationService) ListMine(ctx context.Context, userID string) ([]*domain.Notification, error) {
	return s.notificationRepo.ListByUserID(ctx, userID)
}

func (s *notificationService) MarkRead(ctx context.Context, userID string, ids []string) (int64, error) {
	return s.notificationRepo.MarkRead(ctx, userID, ids)
}
