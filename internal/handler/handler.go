package handler

import (
	"github.com/bagdasarian/team-tasks/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Services - зависимости обработчиков
type Services struct {
	Auth          service.AuthService
	Users         service.UserService
	Teams         service.TeamService
	Tasks         service.TaskService
	Plans         service.PlanService
	Notifications service.NotificationService
}

type Handler struct {
	authService         service.AuthService
	userService         service.UserService
	teamService         service.TeamService
	taskService         service.TaskService
	planService         service.PlanService
	notificationService service.NotificationService

	validate *validator.Validate
	logger   zerolog.Logger

	// exposeErrors добавляет текст внутренних ошибок в ответ 500
	exposeErrors bool
}

func NewHandler(services Services, logger zerolog.Logger, exposeErrors bool) *Handler {
	return &Handler{
		authService:         services.Auth,
		userService:         services.Users,
		teamService:         services.Teams,
		taskService:         services.Tasks,
		planService:         services.Plans,
		notificationService: services.Notifications,
		validate:            newValidator(),
		logger:              logger,
		exposeErrors:        exposeErrors,
	}
}
