package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/bagdasarian/team-tasks/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlanService_ListPlans(t *testing.T) {
	mockPlanRepo := new(MockPlanRepository)
	service := NewPlanService(mockPlanRepo, new(MockUserRepository))

	plans := []*domain.Plan{
		{ID: "p1", Name: "Monthly Plan", Price: 9.99, Duration: domain.DurationMonthly},
		{ID: "p2", Name: "Annual Plan", Price: 99.99, Duration: domain.DurationAnnual},
	}
	mockPlanRepo.On("List", mock.Anything).Return(plans, nil).Once()

	result, err := service.ListPlans(context.Background())

	require.NoError(t, err)
	assert.Equal(t, plans, result)
}

func TestPlanService_SelectPlan(t *testing.T) {
	plan := &domain.Plan{ID: "p1", Name: "Monthly Plan", Price: 9.99, Duration: domain.DurationMonthly}

	t.Run("успешный выбор плана", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		mockUserRepo := new(MockUserRepository)
		service := NewPlanService(mockPlanRepo, mockUserRepo)

		planID := "p1"
		mockPlanRepo.On("GetByID", mock.Anything, "p1").Return(plan, nil).Once()
		mockUserRepo.On("SetPlan", mock.Anything, "u1", "p1").Return(nil).Once()
		mockUserRepo.On("GetByID", mock.Anything, "u1").Return(&domain.User{ID: "u1", PlanID: &planID, Plan: plan}, nil).Once()

		user, err := service.SelectPlan(context.Background(), "u1", "p1")

		require.NoError(t, err)
		assert.Equal(t, plan, user.Plan)
		mockPlanRepo.AssertExpectations(t)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("ошибка: план не найден", func(t *testing.T) {
		mockPlanRepo := new(MockPlanRepository)
		mockUserRepo := new(MockUserRepository)
		service := NewPlanService(mockPlanRepo, mockUserRepo)

		mockPlanRepo.On("GetByID", mock.Anything, "p404").Return(nil, repository.ErrNotFound).Once()

		user, err := service.SelectPlan(context.Background(), "u1", "p404")

		assert.Nil(t, user)
		assert.True(t, errors.Is(err, domain.ErrPlanNotFound))
		mockUserRepo.AssertNotCalled(t, "SetPlan", mock.Anything, mock.Anything, mock.Anything)
	})
}
