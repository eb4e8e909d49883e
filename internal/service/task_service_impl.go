package service

import (
	"context"
	"errors"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/bagdasarian/team-tasks/internal/repository"
)

var errTaskNotFound = domain.NewNotFoundError("task")

type taskService struct {
	taskRepo  repository.TaskRepository
	access    AccessControl
	publisher NotificationPublisher
}

// NewTaskService создает новый экземпляр TaskService
func NewTaskService(taskRepo repository.TaskRepository, access AccessControl, publisher NotificationPublisher) TaskService {
	return &taskService{
		taskRepo:  taskRepo,
		access:    access,
		publisher: publisher,
	}
}

func (s *taskService) CreateTask(ctx context.Context, userID string, task *domain.Task) (*domain.Task, error) {
	if err := requireMember(ctx, s.access, task.TeamID, userID, errTeamNotFound); err != nil {
		return nil, err
	}

	if task.Status == "" {
		task.Status = domain.StatusPending
	}
	if task.Priority == "" {
		task.Priority = domain.PriorityMedium
	}
	if !task.Status.IsValid() || !task.Priority.IsValid() {
		return nil, domain.NewValidationError("invalid status or priority", nil)
	}

	if task.AssignedToID != nil {
		if err := s.checkAssignee(ctx, task.TeamID, *task.AssignedToID); err != nil {
			return nil, err
		}
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	return s.getTask(ctx, task.ID)
}

func (s *taskService) ListTasks(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error) {
	return s.taskRepo.List(ctx, filter)
}

func (s *taskService) GetTask(ctx context.Context, taskID, userID string) (*domain.Task, error) {
	task, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	if err := requireMember(ctx, s.access, task.TeamID, userID, errTaskNotFound); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *taskService) UpdateTask(ctx context.Context, taskID, userID string, update domain.TaskUpdate) (*domain.Task, error) {
	existing, err := s.GetTask(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	if update.Status != nil && !update.Status.IsValid() {
		return nil, domain.NewValidationError("invalid status", map[string]string{"status": "must be one of pending, in_progress, done"})
	}

	if update.AssigneeSet && update.AssignedToID != nil {
		if err := s.checkAssignee(ctx, existing.TeamID, *update.AssignedToID); err != nil {
			return nil, err
		}
	}

	if err := s.taskRepo.Update(ctx, taskID, update); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errTaskNotFound
		}
		return nil, err
	}

	updated, err := s.getTask(ctx, taskID)
	if err != nil {
		return nil, err
	}

	// задача уже сохранена, уведомление пишется отдельно и может потеряться
	if update.Status != nil && *update.Status != existing.Status && updated.AssignedToID != nil {
		s.publisher.Publish(&domain.Notification{
			UserID:  *updated.AssignedToID,
			Message: domain.TaskStatusChangedMessage(updated.Title, updated.Status),
		})
	}

	return updated, nil
}

func (s *taskService) DeleteTask(ctx context.Context, taskID, userID string) error {
	if _, err := s.GetTask(ctx, taskID, userID); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return errTaskNotFound
		}
		return err
	}

	return nil
}

func (s *taskService) checkAssignee(ctx context.Context, teamID, assigneeID string) error {
	ok, err := s.access.IsMember(ctx, teamID, assigneeID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrAssigneeNotMember
	}
	return nil
}

func (s *taskService) getTask(ctx context.Context, taskID string) (*domain.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, errTaskNotFound
		}
		return nil, err
	}
	return task, nil
}
