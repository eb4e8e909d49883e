package handler

import (
	"net/http"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.planService.ListPlans(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := ListPlansResponse{Plans: make([]PlanResponse, 0, len(plans))}
	for _, plan := range plans {
		resp.Plans = append(resp.Plans, domainPlanToHTTP(plan))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) SelectPlan(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req SelectPlanRequest
	if err := h.decodeAndValidate(r, &req, false); err != nil {
		h.handleError(w, r, err)
		return
	}

	planID, ok := parseID(req.PlanID)
	if !ok {
		h.handleError(w, r, domain.ErrPlanNotFound)
		return
	}

	updated, err := h.planService.SelectPlan(r.Context(), user.ID, planID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, SelectPlanResponse{
		Message: "Plan selected successfully",
		User:    domainUserToHTTP(updated),
	})
}
