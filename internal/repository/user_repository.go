package repository

import (
	"context"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	SetPlan(ctx context.Context, userID string, planID string) error
}
