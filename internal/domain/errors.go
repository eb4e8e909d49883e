package domain

import "fmt"

const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeAlreadyMember      = "ALREADY_MEMBER"
	CodeAssigneeNotMember  = "ASSIGNEE_NOT_MEMBER"
	CodeUnauthenticated    = "UNAUTHENTICATED"
	CodeInvalidToken       = "INVALID_TOKEN"
	CodeTokenExpired       = "TOKEN_EXPIRED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeNotFound           = "NOT_FOUND"
	CodeMemberNotFound     = "MEMBER_NOT_FOUND"
	CodePlanNotFound       = "PLAN_NOT_FOUND"
	CodeRouteNotFound      = "ROUTE_NOT_FOUND"
	CodeInternal           = "INTERNAL_ERROR"
)

type DomainError struct {
	Code    string
	Message string
	Details map[string]string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Is сравнивает ошибки по коду, чтобы работал errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrNotFound - ресурс не найден или недоступен текущему пользователю
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "resource not found",
	}

	ErrEmailExists = &DomainError{
		Code:    CodeEmailExists,
		Message: "a user with this email already exists",
	}

	ErrAlreadyMember = &DomainError{
		Code:    CodeAlreadyMember,
		Message: "user is already a member of this team",
	}

	ErrAssigneeNotMember = &DomainError{
		Code:    CodeAssigneeNotMember,
		Message: "assigned user is not a team member",
	}

	ErrUnauthenticated = &DomainError{
		Code:    CodeUnauthenticated,
		Message: "access token required",
	}

	ErrInvalidToken = &DomainError{
		Code:    CodeInvalidToken,
		Message: "invalid token",
	}

	ErrTokenExpired = &DomainError{
		Code:    CodeTokenExpired,
		Message: "token expired",
	}

	ErrInvalidCredentials = &DomainError{
		Code:    CodeInvalidCredentials,
		Message: "invalid credentials",
	}

	ErrUserNotFound = &DomainError{
		Code:    CodeUserNotFound,
		Message: "user not found",
	}

	ErrMemberNotFound = &DomainError{
		Code:    CodeMemberNotFound,
		Message: "member not found in this team",
	}

	ErrPlanNotFound = &DomainError{
		Code:    CodePlanNotFound,
		Message: "plan not found",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewValidationError создает ошибку VALIDATION_ERROR с описанием полей
func NewValidationError(message string, details map[string]string) *DomainError {
	return &DomainError{
		Code:    CodeValidation,
		Message: message,
		Details: details,
	}
}
