package handler

import (
	"context"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// AuthenticatedUser - пользователь, от имени которого выполняется запрос
type AuthenticatedUser struct {
	ID    string
	Name  string
	Email string
}

type contextKey struct{}

var userContextKey = contextKey{}

func withUser(ctx context.Context, user AuthenticatedUser) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// CurrentUser возвращает пользователя, положенного в контекст RequireAuth
func CurrentUser(ctx context.Context) (AuthenticatedUser, bool) {
	user, ok := ctx.Value(userContextKey).(AuthenticatedUser)
	return user, ok
}

// RequireAuth пропускает запрос дальше только с валидным Bearer токеном
func (h *Handler) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			h.handleAuthError(w, r, domain.ErrUnauthenticated)
			return
		}

		user, err := h.authService.Authenticate(r.Context(), token)
		if err != nil {
			h.handleAuthError(w, r, err)
			return
		}

		hlog.FromRequest(r).UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", user.ID)
		})

		ctx := withUser(r.Context(), AuthenticatedUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	return token, token != ""
}

// Recover превращает панику обработчика в ответ 500
func (h *Handler) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				h.logger.Error().
					Interface("panic", rec).
					Bytes("stack", debug.Stack()).
					Str("path", r.URL.Path).
					Msg("handler panicked")
				h.internalError(w, r, fmt.Errorf("panic: %v", rec))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// NotFound отвечает на запросы к неизвестным маршрутам
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{
		Code:    domain.CodeRouteNotFound,
		Message: "route not found",
	})
}

// requireUser достает пользователя из контекста; отсутствие означает ошибку маршрутизации
func (h *Handler) requireUser(w http.ResponseWriter, r *http.Request) (AuthenticatedUser, bool) {
	user, ok := CurrentUser(r.Context())
	if !ok {
		h.handleAuthError(w, r, domain.ErrUnauthenticated)
		return AuthenticatedUser{}, false
	}
	return user, true
}
