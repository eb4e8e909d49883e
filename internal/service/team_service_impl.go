package service

import (
	"context"
	"errors"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/bagdasarian/team-tasks/internal/repository"
)

// errTeamNotFound одинаков для отсутствующей команды и для команды без доступа
var errTeamNotFound = domain.NewNotFoundError("team")

type teamService struct {
	teamRepo   repository.TeamRepository
	memberRepo repository.TeamMemberRepository
	userRepo   repository.UserRepository
	taskRepo   repository.TaskRepository
	access     AccessControl
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(
	teamRepo repository.TeamRepository,
	memberRepo repository.TeamMemberRepository,
	userRepo repository.UserRepository,
	taskRepo repository.TaskRepository,
	access AccessControl,
) TeamService {
	return &teamService{
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		userRepo:   userRepo,
		taskRepo:   taskRepo,
		access:     access,
	}
}

func (s *teamService) CreateTeam(ctx context.Context, ownerID, name string, description *string) (*domain.Team, error) {
	team := &domain.Team{
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
	}

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	members, err := s.memberRepo.ListByTeamID(ctx, team.ID)
	if err != nil {
		return nil, err
	}
	team.Members = members

	return team, nil
}

func (s *teamService) ListTeams(ctx context.Context) ([]*domain.Team, error) {
	return s.teamRepo.List(ctx)
}

func (s *teamService) GetTeam(ctx context.Context, teamID, userID string) (*domain.Team, error) {
	if err := requireMember(ctx, s.access, teamID, userID, errTeamNotFound); err != nil {
		return nil, err
	}

	team, err := s.loadTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.taskRepo.List(ctx, domain.TaskFilter{TeamID: teamID})
	if err != nil {
		return nil, err
	}
	team.Tasks = tasks
	team.TaskCount = len(tasks)

	return team, nil
}

func (s *teamService) UpdateTeam(ctx context.Context, teamID, userID string, update domain.TeamUpdate) (*domain.Team, error) {
	if err := requireOwner(ctx, s.access, teamID, userID, errTeamNotFound); err != nil {
		return nil, err
	}

	if err := s.teamRepo.Update(ctx, teamID, update); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errTeamNotFound
		}
		return nil, err
	}

	return s.loadTeam(ctx, teamID)
}

func (s *teamService) DeleteTeam(ctx context.Context, teamID, userID string) error {
	if err := requireOwner(ctx, s.access, teamID, userID, errTeamNotFound); err != nil {
		return err
	}

	if err := s.teamRepo.Delete(ctx, teamID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errTeamNotFound
		}
		return err
	}

	return nil
}

func (s *teamService) AddMember(ctx context.Context, teamID, actorID, email string) (*domain.TeamMember, error) {
	if err := requireMember(ctx, s.access, teamID, actorID, errTeamNotFound); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return s.join(ctx, teamID, user)
}

func (s *teamService) ListMembers(ctx context.Context, teamID, userID string) ([]domain.TeamMember, error) {
	if err := requireMember(ctx, s.access, teamID, userID, errTeamNotFound); err != nil {
		return nil, err
	}

	return s.memberRepo.ListByTeamID(ctx, teamID)
}

func (s *teamService) RequestMembership(ctx context.Context, teamID, userID string) (*domain.TeamMember, error) {
	if _, err := s.teamRepo.GetByID(ctx, teamID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errTeamNotFound
		}
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	return s.join(ctx, teamID, user)
}

func (s *teamService) RemoveMember(ctx context.Context, teamID, actorID, memberUserID string) error {
	if err := requireMember(ctx, s.access, teamID, actorID, errTeamNotFound); err != nil {
		return err
	}

	removed, err := s.memberRepo.Remove(ctx, teamID, memberUserID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrMemberNotFound
	}

	return nil
}

// join добавляет пользователя в команду, повторное членство - ALREADY_MEMBER
func (s *teamService) join(ctx context.Context, teamID string, user *domain.User) (*domain.TeamMember, error) {
	exists, err := s.memberRepo.Exists(ctx, teamID, user.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrAlreadyMember
	}

	member := &domain.TeamMember{
		TeamID: teamID,
		UserID: user.ID,
		User:   user.Summary(),
	}

	if err := s.memberRepo.Add(ctx, member); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, domain.ErrAlreadyMember
		}
		return nil, err
	}

	return member, nil
}

func (s *teamService) loadTeam(ctx context.Context, teamID string) (*domain.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errTeamNotFound
		}
		return nil, err
	}

	members, err := s.memberRepo.ListByTeamID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	team.Members = members

	return team, nil
}
