package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/bagdasarian/team-tasks/internal/repository"
)

type teamMemberRepository struct {
	executor DBExecutor
}

func NewTeamMemberRepository(db *sql.DB) *teamMemberRepository {
	return &teamMemberRepository{executor: db}
}

func NewTeamMemberRepositoryWithTx(tx *sql.Tx) *teamMemberRepository {
	return &teamMemberRepository{executor: tx}
}

func (r *teamMemberRepository) Add(ctx context.Context, member *domain.TeamMember) error {
	query := `
		INSERT INTO team_members (team_id, user_id, joined_at)
		VALUES ($1, $2, $3)
		RETURNING joined_at
	`

	err := r.executor.QueryRowContext(ctx, query, member.TeamID, member.UserID, time.Now().UTC()).
		Scan(&member.JoinedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return err
	}

	return nil
}

func (r *teamMemberRepository) Exists(ctx context.Context, teamID string, userID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM team_members WHERE team_id = $1 AND user_id = $2
		)
	`

	var exists bool
	if err := r.executor.QueryRowContext(ctx, query, teamID, userID).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *teamMemberRepository) Remove(ctx context.Context, teamID string, userID string) (bool, error) {
	result, err := r.executor.ExecContext(ctx,
		"DELETE FROM team_members WHERE team_id = $1 AND user_id = $2",
		teamID,
		userID,
	)
	if err != nil {
		return false, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

func (r *teamMemberRepository) ListByTeamID(ctx context.Context, teamID string) ([]domain.TeamMember, error) {
	query := `
		SELECT tm.team_id, tm.user_id, u.name, u.email, tm.joined_at
		FROM team_members tm
		JOIN users u ON tm.user_id = u.id
		WHERE tm.team_id = $1
		ORDER BY tm.joined_at
	`

	rows, err := r.executor.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMembers(rows)
}

func scanMembers(rows *sql.Rows) ([]domain.TeamMember, error) {
	members := make([]domain.TeamMember, 0)
	for rows.Next() {
		var member domain.TeamMember
		err := rows.Scan(
			&member.TeamID,
			&member.UserID,
			&member.User.Name,
			&member.User.Email,
			&member.JoinedAt,
		)
		if err != nil {
			return nil, err
		}
		member.User.ID = member.UserID
		members = append(members, member)
	}

	return members, rows.Err()
}
