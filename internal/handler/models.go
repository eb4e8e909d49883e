package handler

import "time"

type ErrorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Error   string            `json:"error,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Auth

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Token   string       `json:"token"`
}

type UserResponse struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	PlanID    *string       `json:"planId"`
	Plan      *PlanResponse `json:"plan,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
}

type UserSummaryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ProfileResponse struct {
	User UserResponse `json:"user"`
}

type ListUsersResponse struct {
	Users []UserSummaryResponse `json:"users"`
}

// Teams

type CreateTeamRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description" validate:"omitnil,max=500"`
}

type UpdateTeamRequest struct {
	Name        *string `json:"name" validate:"omitnil,min=2,max=100"`
	Description *string `json:"description" validate:"omitnil,max=500"`
}

type AddMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type MemberResponse struct {
	TeamID   string              `json:"teamId"`
	UserID   string              `json:"userId"`
	JoinedAt time.Time           `json:"joinedAt"`
	User     UserSummaryResponse `json:"user"`
}

type TeamResponse struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	OwnerID     string           `json:"ownerId"`
	CreatedAt   time.Time        `json:"createdAt"`
	Members     []MemberResponse `json:"members"`
	TaskCount   int              `json:"taskCount"`
}

type TeamDetailResponse struct {
	TeamResponse
	Tasks []TaskResponse `json:"tasks"`
}

type TeamEnvelope struct {
	Message string `json:"message,omitempty"`
	Team    any    `json:"team"`
}

type ListTeamsResponse struct {
	Teams []TeamResponse `json:"teams"`
}

type MemberEnvelope struct {
	Message string         `json:"message"`
	Member  MemberResponse `json:"member"`
}

type ListMembersResponse struct {
	Members []MemberResponse `json:"members"`
}

// Tasks

type CreateTaskRequest struct {
	Title        string  `json:"title" validate:"required,min=2,max=200"`
	Description  string  `json:"description" validate:"required,min=5,max=1000"`
	TeamID       string  `json:"teamId" validate:"required,uuid"`
	AssignedToID *string `json:"assignedToId" validate:"omitnil,uuid"`
	DueDate      *string `json:"dueDate"`
	Priority     string  `json:"priority" validate:"omitempty,oneof=low medium high"`
}

type UpdateTaskRequest struct {
	Title        *string        `json:"title" validate:"omitnil,min=2,max=200"`
	Description  *string        `json:"description" validate:"omitnil,min=5,max=1000"`
	Status       *string        `json:"status" validate:"omitnil,oneof=pending in_progress done"`
	AssignedToID optionalString `json:"assignedToId"`
}

type ListTasksQuery struct {
	TeamID       string `json:"teamId" validate:"omitempty,uuid"`
	Status       string `json:"status" validate:"omitempty,oneof=pending in_progress done"`
	AssignedToMe bool   `json:"assignedToMe"`
}

type TaskResponse struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	Description  string               `json:"description"`
	Status       string               `json:"status"`
	Priority     string               `json:"priority"`
	DueDate      *time.Time           `json:"dueDate"`
	TeamID       string               `json:"teamId"`
	AssignedToID *string              `json:"assignedToId"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    *time.Time           `json:"updatedAt"`
	AssignedTo   *UserSummaryResponse `json:"assignedTo"`
	Team         *TeamSummaryResponse `json:"team,omitempty"`
}

type TeamSummaryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TaskEnvelope struct {
	Message string       `json:"message,omitempty"`
	Task    TaskResponse `json:"task"`
}

type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// Plans

type SelectPlanRequest struct {
	PlanID string `json:"planId" validate:"required"`
}

type PlanResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration string  `json:"duration"`
}

type ListPlansResponse struct {
	Plans []PlanResponse `json:"plans"`
}

type SelectPlanResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// Notifications

type MarkReadRequest struct {
	NotificationIDs []string `json:"notificationIds" validate:"omitempty,dive,uuid"`
}

type NotificationResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

type ListNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
}

type MarkReadResponse struct {
	Message string `json:"message"`
	Count   int64  `json:"count"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
