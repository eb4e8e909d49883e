package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/google/uuid"
)

type notificationRepository struct {
	executor DBExecutor
}

func NewNotificationRepository(db *sql.DB) *notificationRepository {
	return &notificationRepository{executor: db}
}

func (r *notificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.NewString()
	}

	query := `
		INSERT INTO notifications (id, user_id, message, read, created_at)
		VALUES ($1, $2, $3, FALSE, $4)
		RETURNING created_at
	`

	notification.Read = false
	return r.executor.QueryRowContext(
		ctx,
		query,
		notification.ID,
		notification.UserID,
		notification.Message,
		time.Now().UTC(),
	).Scan(&notification.CreatedAt)
}

func (r *notificationRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Notification, error) {
	query := `
		SELECT id, user_id, message, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.executor.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		n := &domain.Notification{}
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

// MarkRead помечает непрочитанные уведомления пользователя; пустой ids означает "все"
func (r *notificationRepository) MarkRead(ctx context.Context, userID string, ids []string) (int64, error) {
	query := `
		UPDATE notifications
		SET read = TRUE
		WHERE user_id = $1 AND read = FALSE
	`
	args := []any{userID}

	if len(ids) > 0 {
		query += " AND id IN (" + placeholders(2, len(ids)) + ")"
		for _, id := range ids {
			args = append(args, id)
		}
	}

	result, err := r.executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}
