package handler

import (
	"net/http"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := h.decodeAndValidate(r, &req, false); err != nil {
		h.handleError(w, r, err)
		return
	}

	user, token, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		Message: "User created successfully",
		User:    domainUserToHTTP(user),
		Token:   token,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := h.decodeAndValidate(r, &req, false); err != nil {
		h.handleError(w, r, err)
		return
	}

	user, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{
		Message: "Login successful",
		User:    domainUserToHTTP(user),
		Token:   token,
	})
}

func (h *Handler) Profile(w http.ResponseWriter, r *http.Request) {
	current, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	user, err := h.authService.Profile(r.Context(), current.ID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ProfileResponse{User: domainUserToHTTP(user)})
}
