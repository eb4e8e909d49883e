package repository

import (
	"context"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error)
	Update(ctx context.Context, id string, update domain.TaskUpdate) error
	Delete(ctx context.Context, id string) error
}
