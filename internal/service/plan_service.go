package service

import (
	"context"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type PlanService interface {
	ListPlans(ctx context.Context) ([]*domain.Plan, error)

	// SelectPlan назначает пользователю план и возвращает пользователя вместе с планом
	SelectPlan(ctx context.Context, userID, planID string) (*domain.User, error)
}
