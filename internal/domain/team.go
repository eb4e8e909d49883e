package domain

import "time"

type Team struct {
	ID          string
	Name        string
	Description *string
	OwnerID     string
	Members     []TeamMember
	Tasks       []*Task
	TaskCount   int
	CreatedAt   time.Time
}

type TeamMember struct {
	TeamID   string
	UserID   string
	User     UserSummary
	JoinedAt time.Time
}

// TeamUpdate - частичное обновление команды: nil означает "поле не передано"
type TeamUpdate struct {
	Name        *string
	Description *string
}

func (u TeamUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil
}
