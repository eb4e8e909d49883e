package server

import (
	"net/http"

	"github.com/bagdasarian/team-tasks/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	auth := func(fn http.HandlerFunc) http.Handler {
		return h.RequireAuth(fn)
	}

	mux.HandleFunc("GET /api/health", h.Health)

	mux.HandleFunc("POST /api/auth/register", h.Register)
	mux.HandleFunc("POST /api/auth/login", h.Login)
	mux.Handle("GET /api/auth/profile", auth(h.Profile))

	mux.Handle("GET /api/users", auth(h.ListUsers))

	mux.Handle("POST /api/teams", auth(h.CreateTeam))
	mux.Handle("GET /api/teams", auth(h.ListTeams))
	mux.Handle("GET /api/teams/{id}", auth(h.GetTeam))
	mux.Handle("PUT /api/teams/{id}", auth(h.UpdateTeam))
	mux.Handle("DELETE /api/teams/{id}", auth(h.DeleteTeam))
	mux.Handle("POST /api/teams/{id}/members", auth(h.AddMember))
	mux.Handle("GET /api/teams/{id}/members", auth(h.ListMembers))
	mux.Handle("POST /api/teams/{id}/request-membership", auth(h.RequestMembership))
	mux.Handle("DELETE /api/teams/{id}/members/{memberId}", auth(h.RemoveMember))

	mux.Handle("POST /api/tasks", auth(h.CreateTask))
	mux.Handle("GET /api/tasks", auth(h.ListTasks))
	mux.Handle("GET /api/tasks/{id}", auth(h.GetTask))
	mux.Handle("PUT /api/tasks/{id}", auth(h.UpdateTask))
	mux.Handle("DELETE /api/tasks/{id}", auth(h.DeleteTask))

	mux.Handle("GET /api/plans", auth(h.ListPlans))
	mux.Handle("POST /api/plans/select", auth(h.SelectPlan))

	mux.Handle("GET /api/notifications/me", auth(h.ListMyNotifications))
	mux.Handle("POST /api/notifications/mark-read", auth(h.MarkNotificationsRead))

	mux.HandleFunc("/", h.NotFound)
}
