package service

import (
	"context"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type TaskService interface {
	// CreateTask создает задачу в команде пользователя
	CreateTask(ctx context.Context, userID string, task *domain.Task) (*domain.Task, error)

	// ListTasks возвращает задачи по фильтрам, новые первыми
	ListTasks(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error)

	GetTask(ctx context.Context, taskID, userID string) (*domain.Task, error)

	// UpdateTask частично обновляет задачу и уведомляет исполнителя о смене статуса
	UpdateTask(ctx context.Context, taskID, userID string, update domain.TaskUpdate) (*domain.Task, error)

	DeleteTask(ctx context.Context, taskID, userID string) error
}

// NotificationPublisher принимает уведомление к асинхронной записи
type NotificationPublisher interface {
	Publish(notification *domain.Notification) bool
}
