package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/bagdasarian/team-tasks/internal/repository"
	"github.com/google/uuid"
)

type taskRepository struct {
	executor DBExecutor
}

func NewTaskRepository(db *sql.DB) *taskRepository {
	return &taskRepository{executor: db}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}

	query := `
		INSERT INTO tasks (id, title, description, team_id, assigned_to_id, status, priority, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING created_at
	`

	var dueDate sql.NullTime
	if task.DueDate != nil {
		dueDate = sql.NullTime{Time: *task.DueDate, Valid: true}
	}

	return r.executor.QueryRowContext(
		ctx,
		query,
		task.ID,
		task.Title,
		task.Description,
		task.TeamID,
		nullableString(task.AssignedToID),
		string(task.Status),
		string(task.Priority),
		dueDate,
		time.Now().UTC(),
	).Scan(&task.CreatedAt)
}

const selectTask = `
	SELECT t.id, t.title, t.description, t.team_id, tm.name,
	       t.assigned_to_id, u.name, u.email,
	       t.status, t.priority, t.due_date, t.created_at, t.updated_at
	FROM tasks t
	JOIN teams tm ON t.team_id = tm.id
	LEFT JOIN users u ON t.assigned_to_id = u.id
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	task := &domain.Task{Team: &domain.TeamSummary{}}
	var assignedToID, assigneeName, assigneeEmail sql.NullString
	var status, priority string
	var dueDate, updatedAt sql.NullTime

	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.TeamID,
		&task.Team.Name,
		&assignedToID,
		&assigneeName,
		&assigneeEmail,
		&status,
		&priority,
		&dueDate,
		&task.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Team.ID = task.TeamID
	task.Status = domain.Status(status)
	task.Priority = domain.Priority(priority)

	if assignedToID.Valid {
		task.AssignedToID = stringPtr(assignedToID)
		task.AssignedTo = &domain.UserSummary{
			ID:    assignedToID.String,
			Name:  assigneeName.String,
			Email: assigneeEmail.String,
		}
	}
	if dueDate.Valid {
		task.DueDate = &dueDate.Time
	}
	if updatedAt.Valid {
		task.UpdatedAt = &updatedAt.Time
	}

	return task, nil
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	task, err := scanTask(r.executor.QueryRowContext(ctx, selectTask+" WHERE t.id = $1", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return task, nil
}

// List применяет только переданные фильтры, новые задачи первыми
func (r *taskRepository) List(ctx context.Context, filter domain.TaskFilter) ([]*domain.Task, error) {
	conditions := make([]string, 0, 3)
	args := make([]any, 0, 3)

	if filter.TeamID != "" {
		args = append(args, filter.TeamID)
		conditions = append(conditions, fmt.Sprintf("t.team_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conditions = append(conditions, fmt.Sprintf("t.status = $%d", len(args)))
	}
	if filter.AssignedToID != "" {
		args = append(args, filter.AssignedToID)
		conditions = append(conditions, fmt.Sprintf("t.assigned_to_id = $%d", len(args)))
	}

	query := selectTask
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY t.created_at DESC"

	rows, err := r.executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

// Update меняет только переданные поля и всегда проставляет updated_at
func (r *taskRepository) Update(ctx context.Context, id string, update domain.TaskUpdate) error {
	args := []any{id, time.Now().UTC()}
	sets := []string{"updated_at = $2"}

	if update.Title != nil {
		args = append(args, *update.Title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if update.Description != nil {
		args = append(args, *update.Description)
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)))
	}
	if update.Status != nil {
		args = append(args, string(*update.Status))
		sets = append(sets, fmt.Sprintf("status = $%d", len(args)))
	}
	if update.AssigneeSet {
		args = append(args, nullableString(update.AssignedToID))
		sets = append(sets, fmt.Sprintf("assigned_to_id = $%d", len(args)))
	}

	query := "UPDATE tasks SET " + strings.Join(sets, ", ") + " WHERE id = $1"

	result, err := r.executor.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	result, err := r.executor.ExecContext(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}
