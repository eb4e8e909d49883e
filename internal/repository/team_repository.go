package repository

import (
	"context"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id string) (*domain.Team, error)
	List(ctx context.Context) ([]*domain.Team, error)
	Update(ctx context.Context, id string, update domain.TeamUpdate) error
	Delete(ctx context.Context, id string) error
}
