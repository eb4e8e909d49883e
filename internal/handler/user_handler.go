package handler

import (
	"net/http"
)

func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := ListUsersResponse{Users: make([]UserSummaryResponse, 0, len(users))}
	for _, user := range users {
		resp.Users = append(resp.Users, domainUserSummaryToHTTP(user.Summary()))
	}

	writeJSON(w, http.StatusOK, resp)
}
