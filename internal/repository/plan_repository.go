package repository

import (
	"context"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type PlanRepository interface {
	List(ctx context.Context) ([]*domain.Plan, error)
	GetByID(ctx context.Context, id string) (*domain.Plan, error)
	Upsert(ctx context.Context, plan *domain.Plan) error
}
