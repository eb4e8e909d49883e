package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/bagdasarian/team-tasks/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type teamServiceMocks struct {
	teams   *MockTeamRepository
	members *MockTeamMemberRepository
	users   *MockUserRepository
	tasks   *MockTaskRepository
}

func (m teamServiceMocks) assertExpectations(t *testing.T) {
	m.teams.AssertExpectations(t)
	m.members.AssertExpectations(t)
	m.users.AssertExpectations(t)
	m.tasks.AssertExpectations(t)
}

func setupTeamService() (TeamService, teamServiceMocks) {
	m := teamServiceMocks{
		teams:   new(MockTeamRepository),
		members: new(MockTeamMemberRepository),
		users:   new(MockUserRepository),
		tasks:   new(MockTaskRepository),
	}
	access := NewAccessControl(m.teams, m.members)
	return NewTeamService(m.teams, m.members, m.users, m.tasks, access), m
}

func TestTeamService_CreateTeam(t *testing.T) {
	t.Run("успешное создание команды", func(t *testing.T) {
		service, m := setupTeamService()
		ctx := context.Background()

		m.teams.On("Create", mock.Anything, mock.MatchedBy(func(team *domain.Team) bool {
			return team.Name == "Eng" && team.OwnerID == "alice"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Team).ID = "team-1"
		}).Return(nil).Once()
		m.members.On("ListByTeamID", mock.Anything, "team-1").Return([]domain.TeamMember{
			{TeamID: "team-1", UserID: "alice", User: domain.UserSummary{ID: "alice", Name: "Alice"}},
		}, nil).Once()

		team, err := service.CreateTeam(ctx, "alice", "Eng", nil)

		require.NoError(t, err)
		assert.Equal(t, "team-1", team.ID)
		assert.Equal(t, "alice", team.OwnerID)
		require.Len(t, team.Members, 1)
		assert.Equal(t, "Alice", team.Members[0].User.Name)
		m.assertExpectations(t)
	})

	t.Run("ошибка репозитория", func(t *testing.T) {
		service, m := setupTeamService()

		expectedError := errors.New("database error")
		m.teams.On("Create", mock.Anything, mock.Anything).Return(expectedError).Once()

		team, err := service.CreateTeam(context.Background(), "alice", "Eng", nil)

		assert.Nil(t, team)
		assert.Equal(t, expectedError, err)
	})
}

func TestTeamService_GetTeam(t *testing.T) {
	t.Run("участник получает команду с участниками и задачами", func(t *testing.T) {
		service, m := setupTeamService()
		ctx := context.Background()

		m.members.On("Exists", mock.Anything, "team-1", "alice").Return(true, nil).Once()
		m.teams.On("GetByID", mock.Anything, "team-1").Return(&domain.Team{ID: "team-1", Name: "Eng", OwnerID: "alice"}, nil).Once()
		m.members.On("ListByTeamID", mock.Anything, "team-1").Return([]domain.TeamMember{{UserID: "alice"}}, nil).Once()
		m.tasks.On("List", mock.Anything, domain.TaskFilter{TeamID: "team-1"}).Return([]*domain.Task{
			{ID: "task-2", TeamID: "team-1"},
			{ID: "task-1", TeamID: "team-1"},
		}, nil).Once()

		team, err := service.GetTeam(ctx, "team-1", "alice")

		require.NoError(t, err)
		assert.Len(t, team.Members, 1)
		require.Len(t, team.Tasks, 2)
		assert.Equal(t, "task-2", team.Tasks[0].ID)
		assert.Equal(t, 2, team.TaskCount)
		m.assertExpectations(t)
	})

	t.Run("не участник получает 404, а не отказ в доступе", func(t *testing.T) {
		service, m := setupTeamService()

		m.members.On("Exists", mock.Anything, "team-1", "carol").Return(false, nil).Once()

		team, err := service.GetTeam(context.Background(), "team-1", "carol")

		assert.Nil(t, team)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.Equal(t, "team not found", err.Error())
		m.teams.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("несуществующая команда неотличима от чужой", func(t *testing.T) {
		service, m := setupTeamService()

		m.members.On("Exists", mock.Anything, "missing", "alice").Return(false, nil).Once()
		m.members.On("Exists", mock.Anything, "team-1", "carol").Return(false, nil).Once()

		_, errMissing := service.GetTeam(context.Background(), "missing", "alice")
		_, errForeign := service.GetTeam(context.Background(), "team-1", "carol")

		assert.Equal(t, errMissing, errForeign)
	})
}

func TestTeamService_UpdateTeam(t *testing.T) {
	name := "Platform"
	update := domain.TeamUpdate{Name: &name}

	t.Run("владелец обновляет команду", func(t *testing.T) {
		service, m := setupTeamService()

		m.teams.On("GetByID", mock.Anything, "team-1").Return(&domain.Team{ID: "team-1", OwnerID: "alice"}, nil).Once()
		m.teams.On("Update", mock.Anything, "team-1", update).Return(nil).Once()
		m.teams.On("GetByID", mock.Anything, "team-1").Return(&domain.Team{ID: "team-1", Name: "Platform", OwnerID: "alice"}, nil).Once()
		m.members.On("ListByTeamID", mock.Anything, "team-1").Return([]domain.TeamMember{}, nil).Once()

		team, err := service.UpdateTeam(context.Background(), "team-1", "alice", update)

		require.NoError(t, err)
		assert.Equal(t, "Platform", team.Name)
		m.assertExpectations(t)
	})

	t.Run("участник, но не владелец, получает 404", func(t *testing.T) {
		service, m := setupTeamService()

		m.teams.On("GetByID", mock.Anything, "team-1").Return(&domain.Team{ID: "team-1", OwnerID: "alice"}, nil).Once()

		team, err := service.UpdateTeam(context.Background(), "team-1", "bob", update)

		assert.Nil(t, team)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		m.teams.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("команда не существует", func(t *testing.T) {
		service, m := setupTeamService()

		m.teams.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound).Once()

		_, err := service.UpdateTeam(context.Background(), "missing", "alice", update)

		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestTeamService_DeleteTeam(t *testing.T) {
	t.Run("владелец удаляет команду", func(t *testing.T) {
		service, m := setupTeamService()

		m.teams.On("GetByID", mock.Anything, "team-1").Return(&domain.Team{ID: "team-1", OwnerID: "alice"}, nil).Once()
		m.teams.On("Delete", mock.Anything, "team-1").Return(nil).Once()

		require.NoError(t, service.DeleteTeam(context.Background(), "team-1", "alice"))
		m.assertExpectations(t)
	})

	t.Run("не владелец получает 404", func(t *testing.T) {
		service, m := setupTeamService()

		m.teams.On("GetByID", mock.Anything, "team-1").Return(&domain.Team{ID: "team-1", OwnerID: "alice"}, nil).Once()

		err := service.DeleteTeam(context.Background(), "team-1", "bob")

		assert.True(t, errors.Is(err, domain.ErrNotFound))
		m.teams.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestTeamService_AddMember(t *testing.T) {
	bob := &domain.User{ID: "bob", Name: "Bob", Email: "bob@x.com"}

	t.Run("участник добавляет пользователя по email", func(t *testing.T) {
		service, m := setupTeamService()
		joinedAt := time.Now()

		m.members.On("Exists", mock.Anything, "team-1", "alice").Return(true, nil).Once()
		m.users.On("GetByEmail", mock.Anything, "bob@x.com").Return(bob, nil).Once()
		m.members.On("Exists", mock.Anything, "team-1", "bob").Return(false, nil).Once()
		m.members.On("Add", mock.Anything, mock.MatchedBy(func(member *domain.TeamMember) bool {
			return member.TeamID == "team-1" && member.UserID == "bob"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.TeamMember).JoinedAt = joinedAt
		}).Return(nil).Once()

		member, err := service.AddMember(context.Background(), "team-1", "alice", "Bob@X.com")

		require.NoError(t, err)
		assert.Equal(t, domain.UserSummary{ID: "bob", Name: "Bob", Email: "bob@x.com"}, member.User)
		assert.Equal(t, joinedAt, member.JoinedAt)
		m.assertExpectations(t)
	})

	t.Run("ошибка: пользователь с таким email не найден", func(t *testing.T) {
		service, m := setupTeamService()

		m.members.On("Exists", mock.Anything, "team-1", "alice").Return(true, nil).Once()
		m.users.On("GetByEmail", mock.Anything, "nobody@x.com").Return(nil, repository.ErrNotFound).Once()

		_, err := service.AddMember(context.Background(), "team-1", "alice", "nobody@x.com")

		assert.True(t, errors.Is(err, domain.ErrUserNotFound))
	})

	t.Run("ошибка: уже участник", func(t *testing.T) {
		service, m := setupTeamService()

		m.members.On("Exists", mock.Anything, "team-1", "alice").Return(true, nil).Once()
		m.users.On("GetByEmail", mock.Anything, "bob@x.com").Return(bob, nil).Once()
		m.members.On("Exists", mock.Anything, "team-1", "bob").Return(true, nil).Once()

		_, err := service.AddMember(context.Background(), "team-1", "alice", "bob@x.com")

		assert.True(t, errors.Is(err, domain.ErrAlreadyMember))
		m.members.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})

	t.Run("ошибка: гонка при вставке превращается в ALREADY_MEMBER", func(t *testing.T) {
		service, m := setupTeamService()

		m.members.On("Exists", mock.Anything, "team-1", "alice").Return(true, nil).Once()
		m.users.On("GetByEmail", mock.Anything, "bob@x.com").Return(bob, nil).Once()
		m.members.On("Exists", mock.Anything, "team-1", "bob").Return(false, nil).Once()
		m.members.On("Add", mock.Anything, mock.Anything).Return(repository.ErrConflict).Once()

		_, err := service.AddMember(context.Background(), "team-1", "alice", "bob@x.com")

		assert.True(t, errors.Is(err, domain.ErrAlreadyMember))
	})

	t.Run("не участник получает 404", func(t *testing.T) {
		service, m := setupTeamService()

		m.members.On("Exists", mock.Anything, "team-1", "carol").Return(false, nil).Once()

		_, err := service.AddMember(context.Background(), "team-1", "carol", "bob@x.com")

		assert.True(t, errors.Is(err, domain.ErrNotFound))
		m.users.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
	})
}

func TestTeamService_RequestMembership(t *testing.T) {
	t.Run("пользователь сразу вступает в команду", func(t *testing.T) {
		service, m := setupTeamService()

		m.teams.On("GetByID", mock.Anything, "team-1").Return(&domain.Team{ID: "team-1"}, nil).Once()
		m.users.On("GetByID", mock.Anything, "carol").Return(&domain.User{ID: "carol", Name: "Carol"}, nil).Once()
		m.members.On("Exists", mock.Anything, "team-1", "carol").Return(false, nil).Once()
		m.members.On("Add", mock.Anything, mock.Anything).Return(nil).Once()

		member, err := service.RequestMembership(context.Background(), "team-1", "carol")

		require.NoError(t, err)
		assert.Equal(t, "carol", member.UserID)
		assert.Equal(t, "Carol", member.User.Name)
		m.assertExpectations(t)
	})

	t.Run("ошибка: команда не найдена", func(t *testing.T) {
		service, m := setupTeamService()

		m.teams.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound).Once()

		_, err := service.RequestMembership(context.Background(), "missing", "carol")

		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("ошибка: уже участник", func(t *testing.T) {
		service, m := setupTeamService()

		m.teams.On("GetByID", mock.Anything, "team-1").Return(&domain.Team{ID: "team-1"}, nil).Once()
		m.users.On("GetByID", mock.Anything, "alice").Return(&domain.User{ID: "alice"}, nil).Once()
		m.members.On("Exists", mock.Anything, "team-1", "alice").Return(true, nil).Once()

		_, err := service.RequestMembership(context.Background(), "team-1", "alice")

		assert.True(t, errors.Is(err, domain.ErrAlreadyMember))
	})
}

func TestTeamService_ListMembers(t *testing.T) {
	service, m := setupTeamService()

	members := []domain.TeamMember{{TeamID: "team-1", UserID: "alice"}, {TeamID: "team-1", UserID: "bob"}}
	m.members.On("Exists", mock.Anything, "team-1", "bob").Return(true, nil).Once()
	m.members.On("ListByTeamID", mock.Anything, "team-1").Return(members, nil).Once()

	result, err := service.ListMembers(context.Background(), "team-1", "bob")

	require.NoError(t, err)
	assert.Equal(t, members, result)
}

func TestTeamService_RemoveMember(t *testing.T) {
	t.Run("участник удаляет другого участника", func(t *testing.T) {
		service, m := setupTeamService()

		m.members.On("Exists", mock.Anything, "team-1", "bob").Return(true, nil).Once()
		m.members.On("Remove", mock.Anything, "team-1", "alice").Return(true, nil).Once()

		require.NoError(t, service.RemoveMember(context.Background(), "team-1", "bob", "alice"))
		m.assertExpectations(t)
	})

	t.Run("ошибка: участник не найден", func(t *testing.T) {
		service, m := setupTeamService()

		m.members.On("Exists", mock.Anything, "team-1", "alice").Return(true, nil).Once()
		m.members.On("Remove", mock.Anything, "team-1", "ghost").Return(false, nil).Once()

		err := service.RemoveMember(context.Background(), "team-1", "alice", "ghost")

		assert.True(t, errors.Is(err, domain.ErrMemberNotFound))
	})

	t.Run("не участник получает 404", func(t *testing.T) {
		service, m := setupTeamService()

		m.members.On("Exists", mock.Anything, "team-1", "carol").Return(false, nil).Once()

		err := service.RemoveMember(context.Background(), "team-1", "carol", "alice")

		assert.True(t, errors.Is(err, domain.ErrNotFound))
		m.members.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAccessControl(t *testing.T) {
	teams := new(MockTeamRepository)
	members := new(MockTeamMemberRepository)
	access := NewAccessControl(teams, members)
	ctx := context.Background()

	teams.On("GetByID", mock.Anything, "team-1").Return(&domain.Team{ID: "team-1", OwnerID: "alice"}, nil)
	teams.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)
	members.On("Exists", mock.Anything, "team-1", "bob").Return(true, nil)

	isOwner, err := access.IsOwner(ctx, "team-1", "alice")
	require.NoError(t, err)
	assert.True(t, isOwner)

	isOwner, err = access.IsOwner(ctx, "team-1", "bob")
	require.NoError(t, err)
	assert.False(t, isOwner, "членство не дает прав владельца")

	isMember, err := access.IsMember(ctx, "team-1", "bob")
	require.NoError(t, err)
	assert.True(t, isMember)

	isOwner, err = access.IsOwner(ctx, "missing", "alice")
	require.NoError(t, err)
	assert.False(t, isOwner)
}
