package service

import (
	"context"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type TeamService interface {
	// CreateTeam создает команду, создатель становится владельцем и первым участником
	CreateTeam(ctx context.Context, ownerID, name string, description *string) (*domain.Team, error)

	// ListTeams возвращает все команды с участниками и количеством задач
	ListTeams(ctx context.Context) ([]*domain.Team, error)

	// GetTeam возвращает команду с участниками и задачами, только для участников
	GetTeam(ctx context.Context, teamID, userID string) (*domain.Team, error)

	// UpdateTeam частично обновляет команду, только для владельца
	UpdateTeam(ctx context.Context, teamID, userID string, update domain.TeamUpdate) (*domain.Team, error)

	// DeleteTeam удаляет команду вместе с участниками и задачами, только для владельца
	DeleteTeam(ctx context.Context, teamID, userID string) error

	AddMember(ctx context.Context, teamID, actorID, email string) (*domain.TeamMember, error)
	ListMembers(ctx context.Context, teamID, userID string) ([]domain.TeamMember, error)

	// RequestMembership сразу добавляет пользователя в существующую команду
	RequestMembership(ctx context.Context, teamID, userID string) (*domain.TeamMember, error)

	RemoveMember(ctx context.Context, teamID, actorID, memberUserID string) error
}
