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

type teamRepository struct {
	db *sql.DB
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{db: db}
}

// Create создает команду и членство владельца в одной транзакции
func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if team.ID == "" {
		team.ID = uuid.NewString()
	}

	query := `
		INSERT INTO teams (id, name, description, owner_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err = tx.QueryRowContext(
		ctx,
		query,
		team.ID,
		team.Name,
		nullableString(team.Description),
		team.OwnerID,
		time.Now().UTC(),
	).Scan(&team.CreatedAt)
	if err != nil {
		return err
	}

	owner := domain.TeamMember{TeamID: team.ID, UserID: team.OwnerID}
	if err := NewTeamMemberRepositoryWithTx(tx).Add(ctx, &owner); err != nil {
		return err
	}
	team.Members = []domain.TeamMember{owner}

	return tx.Commit()
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	query := `
		SELECT id, name, description, owner_id, created_at
		FROM teams
		WHERE id = $1
	`

	team := &domain.Team{}
	var description sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&team.ID,
		&team.Name,
		&description,
		&team.OwnerID,
		&team.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	team.Description = stringPtr(description)

	return team, nil
}

// List возвращает все команды с участниками и количеством задач, новые первыми
func (r *teamRepository) List(ctx context.Context) ([]*domain.Team, error) {
	query := `
		SELECT t.id, t.name, t.description, t.owner_id, t.created_at, COUNT(tk.id)
		FROM teams t
		LEFT JOIN tasks tk ON tk.team_id = t.id
		GROUP BY t.id
		ORDER BY t.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]*domain.Team, 0)
	byID := make(map[string]*domain.Team)
	for rows.Next() {
		team := &domain.Team{Members: []domain.TeamMember{}}
		var description sql.NullString
		err := rows.Scan(
			&team.ID,
			&team.Name,
			&description,
			&team.OwnerID,
			&team.CreatedAt,
			&team.TaskCount,
		)
		if err != nil {
			return nil, err
		}
		team.Description = stringPtr(description)
		teams = append(teams, team)
		byID[team.ID] = team
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(teams) == 0 {
		return teams, nil
	}

	memberRows, err := r.db.QueryContext(ctx, `
		SELECT tm.team_id, tm.user_id, u.name, u.email, tm.joined_at
		FROM team_members tm
		JOIN users u ON tm.user_id = u.id
		ORDER BY tm.joined_at
	`)
	if err != nil {
		return nil, err
	}
	defer memberRows.Close()

	members, err := scanMembers(memberRows)
	if err != nil {
		return nil, err
	}
	for _, member := range members {
		if team, ok := byID[member.TeamID]; ok {
			team.Members = append(team.Members, member)
		}
	}

	return teams, nil
}

func (r *teamRepository) Update(ctx context.Context, id string, update domain.TeamUpdate) error {
	sets := make([]string, 0, 2)
	args := []any{id}

	if update.Name != nil {
		args = append(args, *update.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if update.Description != nil {
		args = append(args, *update.Description)
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)))
	}
	if len(sets) == 0 {
		return nil
	}

	query := "UPDATE teams SET " + strings.Join(sets, ", ") + " WHERE id = $1"

	result, err := r.db.ExecContext(ctx, query, args...)
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

// Delete удаляет команду; участники и задачи удаляются каскадом
func (r *teamRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM teams WHERE id = $1", id)
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
