package handler

import (
	"errors"
	"net/http"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/rs/zerolog/hlog"
)

func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.DomainError
	if errors.As(err, &domainErr) {
		writeJSON(w, getStatusCode(domainErr.Code), ErrorResponse{
			Code:    domainErr.Code,
			Message: domainErr.Message,
			Details: domainErr.Details,
		})
		return
	}

	h.internalError(w, r, err)
}

// handleAuthError отвечает 401 на любой отказ проверки токена
func (h *Handler) handleAuthError(w http.ResponseWriter, r *http.Request, err error) {
	var domainErr *domain.DomainError
	if !errors.As(err, &domainErr) {
		h.internalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusUnauthorized, ErrorResponse{
		Code:    domainErr.Code,
		Message: domainErr.Message,
	})
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, err error) {
	hlog.FromRequest(r).Error().Err(err).Msg("request failed")

	resp := ErrorResponse{
		Code:    domain.CodeInternal,
		Message: "internal server error",
	}
	if h.exposeErrors {
		resp.Error = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, resp)
}

func getStatusCode(errorCode string) int {
	switch errorCode {
	case domain.CodeValidation, domain.CodeEmailExists, domain.CodeAlreadyMember, domain.CodeAssigneeNotMember:
		return http.StatusBadRequest
	case domain.CodeUnauthenticated, domain.CodeInvalidToken, domain.CodeTokenExpired, domain.CodeInvalidCredentials:
		return http.StatusUnauthorized
	case domain.CodeNotFound, domain.CodeUserNotFound, domain.CodeMemberNotFound, domain.CodePlanNotFound, domain.CodeRouteNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
