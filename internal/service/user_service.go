package service

import (
	"context"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type UserService interface {
	// ListUsers возвращает всех пользователей, отсортированных по имени
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
