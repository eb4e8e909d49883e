package handler

import (
	"net/http"
	"time"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Message:   "Team tasks API is running",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
