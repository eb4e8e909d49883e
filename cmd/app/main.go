package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bagdasarian/team-tasks/internal/auth"
	"github.com/bagdasarian/team-tasks/internal/config"
	"github.com/bagdasarian/team-tasks/internal/db"
	"github.com/bagdasarian/team-tasks/internal/handler"
	"github.com/bagdasarian/team-tasks/internal/handler/server"
	"github.com/bagdasarian/team-tasks/internal/logger"
	"github.com/bagdasarian/team-tasks/internal/repository/postgres"
	"github.com/bagdasarian/team-tasks/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Pretty: cfg.IsDevelopment(),
	})

	database := db.MustLoad(cfg)
	defer database.Close()
	log.Info().Str("host", cfg.Database.Host).Str("db", cfg.Database.DBName).Msg("connected to database")

	if err := db.Migrate(context.Background(), database); err != nil {
		log.Fatal().Err(err).Msg("failed to apply migrations")
	}

	teamRepo := postgres.NewTeamRepository(database)
	memberRepo := postgres.NewTeamMemberRepository(database)
	userRepo := postgres.NewUserRepository(database)
	taskRepo := postgres.NewTaskRepository(database)
	planRepo := postgres.NewPlanRepository(database)
	notificationRepo := postgres.NewNotificationRepository(database)

	dispatcher := service.NewNotificationDispatcher(notificationRepo, cfg.Notifications.QueueSize, log)
	access := service.NewAccessControl(teamRepo, memberRepo)

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiresIn)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)

	h := handler.NewHandler(handler.Services{
		Auth:          service.NewAuthService(userRepo, tokens, hasher),
		Users:         service.NewUserService(userRepo),
		Teams:         service.NewTeamService(teamRepo, memberRepo, userRepo, taskRepo, access),
		Tasks:         service.NewTaskService(taskRepo, access, dispatcher),
		Plans:         service.NewPlanService(planRepo, userRepo),
		Notifications: service.NewNotificationService(notificationRepo),
	}, log, cfg.IsDevelopment())

	srv := server.NewServer(h, server.Options{
		Addr:        ":" + cfg.HTTP.Port,
		FrontendURL: cfg.HTTP.FrontendURL,
	}, log)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	if err := dispatcher.Close(ctx); err != nil {
		log.Error().Err(err).Uint64("dropped", dispatcher.Dropped()).Msg("notification queue not drained")
	}
}
