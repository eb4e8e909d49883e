package service

import (
	"context"
	"errors"

	"github.com/bagdasarian/team-tasks/internal/repository"
)

// AccessControl - проверки прав пользователя на ресурсы команды.
// Членство дает чтение и запись задач и участников, владение - изменение и удаление самой команды.
type AccessControl interface {
	IsMember(ctx context.Context, teamID string, userID string) (bool, error)
	IsOwner(ctx context.Context, teamID string, userID string) (bool, error)
}

type accessControl struct {
	teamRepo   repository.TeamRepository
	memberRepo repository.TeamMemberRepository
}

func NewAccessControl(teamRepo repository.TeamRepository, memberRepo repository.TeamMemberRepository) AccessControl {
	return &accessControl{
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
	}
}

func (a *accessControl) IsMember(ctx context.Context, teamID string, userID string) (bool, error) {
	return a.memberRepo.Exists(ctx, teamID, userID)
}

func (a *accessControl) IsOwner(ctx context.Context, teamID string, userID string) (bool, error) {
	team, err := a.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	return team.OwnerID == userID, nil
}

// requireMember возвращает notFound, если пользователь не состоит в команде
func requireMember(ctx context.Context, access AccessControl, teamID, userID string, notFound error) error {
	ok, err := access.IsMember(ctx, teamID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return notFound
	}
	return nil
}

// requireOwner возвращает notFound, если пользователь не владелец команды
func requireOwner(ctx context.Context, access AccessControl, teamID, userID string, notFound error) error {
	ok, err := access.IsOwner(ctx, teamID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return notFound
	}
	return nil
}
