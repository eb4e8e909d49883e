package domain

import "time"

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	PlanID       *string
	Plan         *Plan
	CreatedAt    time.Time
}

// UserSummary - публичные поля пользователя, которые видят другие участники
type UserSummary struct {
	ID    string
	Name  string
	Email string
}

func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}
