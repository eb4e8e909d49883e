package handler

import (
	"fmt"
	"net/http"
)

func (h *Handler) ListMyNotifications(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	notifications, err := h.notificationService.ListMine(r.Context(), user.ID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := ListNotificationsResponse{Notifications: make([]NotificationResponse, 0, len(notifications))}
	for _, n := range notifications {
		resp.Notifications = append(resp.Notifications, domainNotificationToHTTP(n))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) MarkNotificationsRead(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req MarkReadRequest
	if err := h.decodeAndValidate(r, &req, true); err != nil {
		h.handleError(w, r, err)
		return
	}

	var ids []string
	for _, id := range req.NotificationIDs {
		ids = append(ids, canonicalID(id))
	}

	count, err := h.notificationService.MarkRead(r.Context(), user.ID, ids)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MarkReadResponse{
		Message: fmt.Sprintf("%d notifications marked as read", count),
		Count:   count,
	})
}
