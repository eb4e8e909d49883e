package domain

import "time"

type Task struct {
	ID           string
	Title        string
	Description  string
	TeamID       string
	Team         *TeamSummary
	AssignedToID *string
	AssignedTo   *UserSummary
	Status       Status
	Priority     Priority
	DueDate      *time.Time
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

type TeamSummary struct {
	ID   string
	Name string
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// TaskUpdate - частичное обновление задачи.
// AssigneeSet отличает явный null (снять исполнителя) от отсутствующего поля.
type TaskUpdate struct {
	Title        *string
	Description  *string
	Status       *Status
	AssigneeSet  bool
	AssignedToID *string
}

// TaskFilter - фильтры списка задач; пустые поля не ограничивают выборку
type TaskFilter struct {
	TeamID       string
	Status       Status
	AssignedToID string
}
