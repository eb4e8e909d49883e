//go:build integration

package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bagdasarian/team-tasks/internal/auth"
	"github.com/bagdasarian/team-tasks/internal/db"
	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/bagdasarian/team-tasks/internal/handler"
	"github.com/bagdasarian/team-tasks/internal/handler/server"
	"github.com/bagdasarian/team-tasks/internal/repository"
	"github.com/bagdasarian/team-tasks/internal/repository/postgres"
	"github.com/bagdasarian/team-tasks/internal/service"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"golang.org/x/crypto/bcrypt"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:17.7",
		tcpostgres.WithDatabase("test_db"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	database, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, database.PingContext(ctx))

	require.NoError(t, db.Migrate(ctx, database))
	// повторный запуск миграций не должен падать
	require.NoError(t, db.Migrate(ctx, database))

	t.Cleanup(func() {
		database.Close()
		require.NoError(t, container.Terminate(ctx))
	})

	return database
}

type testApp struct {
	server   *httptest.Server
	planRepo repository.PlanRepository
}

// setupApp поднимает приложение целиком поверх тестовой базы
func setupApp(t *testing.T) *testApp {
	t.Helper()
	database := setupTestDB(t)
	log := zerolog.New(io.Discard)

	teamRepo := postgres.NewTeamRepository(database)
	memberRepo := postgres.NewTeamMemberRepository(database)
	userRepo := postgres.NewUserRepository(database)
	taskRepo := postgres.NewTaskRepository(database)
	planRepo := postgres.NewPlanRepository(database)
	notificationRepo := postgres.NewNotificationRepository(database)

	dispatcher := service.NewNotificationDispatcher(notificationRepo, 16, log)
	access := service.NewAccessControl(teamRepo, memberRepo)

	h := handler.NewHandler(handler.Services{
		Auth: service.NewAuthService(userRepo,
			auth.NewTokenManager("integration-secret", time.Hour),
			auth.NewPasswordHasher(bcrypt.MinCost)),
		Users:         service.NewUserService(userRepo),
		Teams:         service.NewTeamService(teamRepo, memberRepo, userRepo, taskRepo, access),
		Tasks:         service.NewTaskService(taskRepo, access, dispatcher),
		Plans:         service.NewPlanService(planRepo, userRepo),
		Notifications: service.NewNotificationService(notificationRepo),
	}, log, true)

	mux := http.NewServeMux()
	server.SetupRoutes(mux, h)
	srv := httptest.NewServer(server.NewHTTPHandler(mux, h, "http://localhost:3000", log))

	t.Cleanup(func() {
		srv.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		require.NoError(t, dispatcher.Close(ctx))
	})

	return &testApp{server: srv, planRepo: planRepo}
}

func (a *testApp) seedPlan(t *testing.T, name string, price float64, duration domain.PlanDuration) string {
	t.Helper()
	plan := &domain.Plan{Name: name, Price: price, Duration: duration}
	require.NoError(t, a.planRepo.Upsert(context.Background(), plan))
	return plan.ID
}

// do выполняет запрос к API и декодирует ответ в out, если он передан
func (a *testApp) do(t *testing.T, method, path, token string, body any, out any) int {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, a.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// register создает пользователя и возвращает его id и токен
func (a *testApp) register(t *testing.T, name, email string) (string, string) {
	t.Helper()

	var resp handler.AuthResponse
	status := a.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "secret123",
	}, &resp)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, resp.Token)

	return resp.User.ID, resp.Token
}
