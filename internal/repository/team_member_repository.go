package repository

import (
	"context"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type TeamMemberRepository interface {
	Add(ctx context.Context, member *domain.TeamMember) error
	Exists(ctx context.Context, teamID string, userID string) (bool, error)
	Remove(ctx context.Context, teamID string, userID string) (bool, error)
	ListByTeamID(ctx context.Context, teamID string) ([]domain.TeamMember, error)
}
