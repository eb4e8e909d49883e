package service

import (
	"context"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

type AuthService interface {
	// Register создает пользователя и выдает ему токен
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)

	// Login проверяет пароль и выдает новый токен
	Login(ctx context.Context, email, password string) (*domain.User, string, error)

	Profile(ctx context.Context, userID string) (*domain.User, error)

	// Authenticate проверяет токен и возвращает его владельца
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}
