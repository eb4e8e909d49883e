//go:build integration

package integration

import (
	"net/http"
	"testing"
	"time"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/bagdasarian/team-tasks/internal/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type teamBody struct {
	Team handler.TeamResponse `json:"team"`
}

type teamDetailBody struct {
	Team handler.TeamDetailResponse `json:"team"`
}

func TestTaskLifecycleWithNotification(t *testing.T) {
	app := setupApp(t)

	aliceID, alice := app.register(t, "Alice", "alice@example.com")
	bobID, bob := app.register(t, "Bob", "bob@example.com")
	_, carol := app.register(t, "Carol", "carol@example.com")

	// 1. Alice создает команду и становится ее участником
	var created teamBody
	status := app.do(t, http.MethodPost, "/api/teams", alice, map[string]string{"name": "Eng"}, &created)
	require.Equal(t, http.StatusCreated, status)
	teamID := created.Team.ID
	assert.Equal(t, aliceID, created.Team.OwnerID)
	require.Len(t, created.Team.Members, 1)
	assert.Equal(t, aliceID, created.Team.Members[0].UserID)

	// 2. Alice добавляет Bob по email в другом регистре
	var member handler.MemberEnvelope
	status = app.do(t, http.MethodPost, "/api/teams/"+teamID+"/members", alice, map[string]string{"email": "Bob@Example.com"}, &member)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, bobID, member.Member.UserID)

	var errResp handler.ErrorResponse
	status = app.do(t, http.MethodPost, "/api/teams/"+teamID+"/members", alice, map[string]string{"email": "bob@example.com"}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, domain.CodeAlreadyMember, errResp.Code)

	// 3. задача на Bob
	var task handler.TaskEnvelope
	status = app.do(t, http.MethodPost, "/api/tasks", alice, map[string]any{
		"title":        "Fix bug",
		"description":  "Login page crashes",
		"teamId":       teamID,
		"assignedToId": bobID,
		"dueDate":      "2030-01-15",
	}, &task)
	require.Equal(t, http.StatusCreated, status)
	taskID := task.Task.ID
	assert.Equal(t, string(domain.StatusPending), task.Task.Status)
	assert.Equal(t, string(domain.PriorityMedium), task.Task.Priority)
	require.NotNil(t, task.Task.AssignedTo)
	assert.Equal(t, "Bob", task.Task.AssignedTo.Name)

	// 4. смена статуса порождает ровно одно уведомление для Bob
	status = app.do(t, http.MethodPut, "/api/tasks/"+taskID, alice, map[string]string{"status": "in_progress"}, &task)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, string(domain.StatusInProgress), task.Task.Status)
	require.NotNil(t, task.Task.UpdatedAt)

	var notifications handler.ListNotificationsResponse
	require.Eventually(t, func() bool {
		app.do(t, http.MethodGet, "/api/notifications/me", bob, nil, &notifications)
		return len(notifications.Notifications) == 1
	}, 5*time.Second, 50*time.Millisecond)
	assert.Equal(t, `Task "Fix bug" status changed to in_progress`, notifications.Notifications[0].Message)
	assert.False(t, notifications.Notifications[0].Read)

	// тот же статус повторно не уведомляет; очередь обрабатывается по порядку,
	// поэтому после уведомления о done лишнего уведомления уже не появится
	status = app.do(t, http.MethodPut, "/api/tasks/"+taskID, alice, map[string]string{"status": "in_progress"}, nil)
	require.Equal(t, http.StatusOK, status)
	status = app.do(t, http.MethodPut, "/api/tasks/"+taskID, alice, map[string]string{"status": "done"}, nil)
	require.Equal(t, http.StatusOK, status)

	require.Eventually(t, func() bool {
		app.do(t, http.MethodGet, "/api/notifications/me", bob, nil, &notifications)
		for _, n := range notifications.Notifications {
			if n.Message == `Task "Fix bug" status changed to done` {
				return true
			}
		}
		return false
	}, 5*time.Second, 50*time.Millisecond)
	require.Len(t, notifications.Notifications, 2)
	assert.Equal(t, `Task "Fix bug" status changed to done`, notifications.Notifications[0].Message)
	assert.Equal(t, `Task "Fix bug" status changed to in_progress`, notifications.Notifications[1].Message)

	var marked handler.MarkReadResponse
	status = app.do(t, http.MethodPost, "/api/notifications/mark-read", bob, nil, &marked)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(2), marked.Count)

	status = app.do(t, http.MethodPost, "/api/notifications/mark-read", bob, nil, &marked)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, int64(0), marked.Count)

	// 5. Carol не участник: команда и задача для нее не существуют
	status = app.do(t, http.MethodGet, "/api/teams/"+teamID, carol, nil, &errResp)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, domain.CodeNotFound, errResp.Code)

	status = app.do(t, http.MethodGet, "/api/tasks/"+taskID, carol, nil, &errResp)
	assert.Equal(t, http.StatusNotFound, status)

	status = app.do(t, http.MethodPut, "/api/tasks/"+taskID, carol, map[string]string{"status": "done"}, nil)
	assert.Equal(t, http.StatusNotFound, status)

	// 6. после вступления доступ появляется
	status = app.do(t, http.MethodPost, "/api/teams/"+teamID+"/request-membership", carol, nil, nil)
	require.Equal(t, http.StatusCreated, status)

	var detail teamDetailBody
	status = app.do(t, http.MethodGet, "/api/teams/"+teamID, carol, nil, &detail)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, detail.Team.Members, 3)
	assert.Equal(t, 1, detail.Team.TaskCount)
	require.Len(t, detail.Team.Tasks, 1)
	assert.Equal(t, taskID, detail.Team.Tasks[0].ID)

	// снятие исполнителя явным null
	status = app.do(t, http.MethodPut, "/api/tasks/"+taskID, carol, map[string]any{"assignedToId": nil}, &task)
	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, task.Task.AssignedToID)
	assert.Nil(t, task.Task.AssignedTo)

	// 7. не владелец не может удалить команду
	status = app.do(t, http.MethodDelete, "/api/teams/"+teamID, carol, nil, nil)
	assert.Equal(t, http.StatusNotFound, status)

	// 8. удаление команды удаляет ее задачи
	status = app.do(t, http.MethodDelete, "/api/teams/"+teamID, alice, nil, nil)
	require.Equal(t, http.StatusOK, status)

	status = app.do(t, http.MethodGet, "/api/tasks/"+taskID, alice, nil, &errResp)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, domain.CodeNotFound, errResp.Code)
}

func TestAuthFlow(t *testing.T) {
	app := setupApp(t)

	userID, _ := app.register(t, "Alice", "alice@example.com")

	var errResp handler.ErrorResponse
	status := app.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"name":     "Alice 2",
		"email":    "ALICE@example.com",
		"password": "secret123",
	}, &errResp)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, domain.CodeEmailExists, errResp.Code)

	var login handler.AuthResponse
	status = app.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "secret123",
	}, &login)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, userID, login.User.ID)

	status = app.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong-password",
	}, &errResp)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, domain.CodeInvalidCredentials, errResp.Code)

	var profile handler.ProfileResponse
	status = app.do(t, http.MethodGet, "/api/auth/profile", login.Token, nil, &profile)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "alice@example.com", profile.User.Email)
	assert.Nil(t, profile.User.PlanID)
}

func TestSelectPlan(t *testing.T) {
	app := setupApp(t)

	monthlyID := app.seedPlan(t, "Monthly Plan", 9.99, domain.DurationMonthly)
	app.seedPlan(t, "Annual Plan", 99.99, domain.DurationAnnual)
	// повторный сид обновляет план, а не дублирует его
	assert.Equal(t, monthlyID, app.seedPlan(t, "Monthly Plan", 9.99, domain.DurationMonthly))

	_, token := app.register(t, "Alice", "alice@example.com")

	var plans handler.ListPlansResponse
	status := app.do(t, http.MethodGet, "/api/plans", token, nil, &plans)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, plans.Plans, 2)
	assert.Equal(t, "Monthly Plan", plans.Plans[0].Name)

	var selected handler.SelectPlanResponse
	status = app.do(t, http.MethodPost, "/api/plans/select", token, map[string]string{"planId": monthlyID}, &selected)
	require.Equal(t, http.StatusOK, status)
	require.NotNil(t, selected.User.PlanID)
	assert.Equal(t, monthlyID, *selected.User.PlanID)
	require.NotNil(t, selected.User.Plan)
	assert.Equal(t, 9.99, selected.User.Plan.Price)

	var errResp handler.ErrorResponse
	status = app.do(t, http.MethodPost, "/api/plans/select", token, map[string]string{"planId": "00000000-0000-0000-0000-000000000000"}, &errResp)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, domain.CodePlanNotFound, errResp.Code)
}
