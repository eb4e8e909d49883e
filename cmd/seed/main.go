package main

import (
	"context"
	"time"

	"github.com/bagdasarian/team-tasks/internal/config"
	"github.com/bagdasarian/team-tasks/internal/db"
	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/bagdasarian/team-tasks/internal/logger"
	"github.com/bagdasarian/team-tasks/internal/repository/postgres"
)

var defaultPlans = []domain.Plan{
	{Name: "Monthly Plan", Price: 9.99, Duration: domain.DurationMonthly},
	{Name: "Annual Plan", Price: 99.99, Duration: domain.DurationAnnual},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Options{Level: cfg.Log.Level, Pretty: true})

	database := db.MustLoad(cfg)
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Migrate(ctx, database); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	planRepo := postgres.NewPlanRepository(database)
	for _, plan := range defaultPlans {
		if err := planRepo.Upsert(ctx, &plan); err != nil {
			log.Fatal().Err(err).Str("plan", plan.Name).Msg("failed to seed plan")
		}
		log.Info().Str("plan_id", plan.ID).Str("plan", plan.Name).Float64("price", plan.Price).Msg("plan seeded")
	}

	log.Info().Int("count", len(defaultPlans)).Msg("seeding completed")
}
