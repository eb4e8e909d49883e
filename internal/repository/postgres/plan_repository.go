package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/bagdasarian/team-tasks/internal/repository"
	"github.com/google/uuid"
)

type planRepository struct {
	executor DBExecutor
}

func NewPlanRepository(db *sql.DB) *planRepository {
	return &planRepository{executor: db}
}

func (r *planRepository) List(ctx context.Context) ([]*domain.Plan, error) {
	query := `
		SELECT id, name, price, duration
		FROM plans
		ORDER BY price ASC
	`

	rows, err := r.executor.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	plans := make([]*domain.Plan, 0)
	for rows.Next() {
		plan := &domain.Plan{}
		var duration string
		if err := rows.Scan(&plan.ID, &plan.Name, &plan.Price, &duration); err != nil {
			return nil, err
		}
		plan.Duration = domain.PlanDuration(duration)
		plans = append(plans, plan)
	}

	return plans, rows.Err()
}

func (r *planRepository) GetByID(ctx context.Context, id string) (*domain.Plan, error) {
	query := `
		SELECT id, name, price, duration
		FROM plans
		WHERE id = $1
	`

	plan := &domain.Plan{}
	var duration string
	err := r.executor.QueryRowContext(ctx, query, id).Scan(&plan.ID, &plan.Name, &plan.Price, &duration)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	plan.Duration = domain.PlanDuration(duration)

	return plan, nil
}

// Upsert создает план или обновляет цену и длительность существующего с тем же именем
func (r *planRepository) Upsert(ctx context.Context, plan *domain.Plan) error {
	if plan.ID == "" {
		plan.ID = uuid.NewString()
	}

	query := `
		INSERT INTO plans (id, name, price, duration)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO UPDATE
		SET price = EXCLUDED.price, duration = EXCLUDED.duration
		RETURNING id
	`

	return r.executor.QueryRowContext(
		ctx,
		query,
		plan.ID,
		plan.Name,
		plan.Price,
		string(plan.Duration),
	).Scan(&plan.ID)
}
