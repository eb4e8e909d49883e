package handler

import (
	"net/http"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/google/uuid"
)

var errTeamNotFound = domain.NewNotFoundError("team")

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req CreateTeamRequest
	if err := h.decodeAndValidate(r, &req, false); err != nil {
		h.handleError(w, r, err)
		return
	}

	team, err := h.teamService.CreateTeam(r.Context(), user.ID, req.Name, req.Description)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, TeamEnvelope{
		Message: "Team created successfully",
		Team:    domainTeamToHTTP(team),
	})
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams, err := h.teamService.ListTeams(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := ListTeamsResponse{Teams: make([]TeamResponse, 0, len(teams))}
	for _, team := range teams {
		resp.Teams = append(resp.Teams, domainTeamToHTTP(team))
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	teamID, ok := pathID(r, "id")
	if !ok {
		h.handleError(w, r, errTeamNotFound)
		return
	}

	team, err := h.teamService.GetTeam(r.Context(), teamID, user.ID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, TeamEnvelope{Team: domainTeamDetailToHTTP(team)})
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	teamID, ok := pathID(r, "id")
	if !ok {
		h.handleError(w, r, errTeamNotFound)
		return
	}

	var req UpdateTeamRequest
	if err := h.decodeAndValidate(r, &req, false); err != nil {
		h.handleError(w, r, err)
		return
	}

	team, err := h.teamService.UpdateTeam(r.Context(), teamID, user.ID, domain.TeamUpdate{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, TeamEnvelope{
		Message: "Team updated successfully",
		Team:    domainTeamToHTTP(team),
	})
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	teamID, ok := pathID(r, "id")
	if !ok {
		h.handleError(w, r, errTeamNotFound)
		return
	}

	if err := h.teamService.DeleteTeam(r.Context(), teamID, user.ID); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Team deleted successfully"})
}

func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	teamID, ok := pathID(r, "id")
	if !ok {
		h.handleError(w, r, errTeamNotFound)
		return
	}

	var req AddMemberRequest
	if err := h.decodeAndValidate(r, &req, false); err != nil {
		h.handleError(w, r, err)
		return
	}

	member, err := h.teamService.AddMember(r.Context(), teamID, user.ID, req.Email)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, MemberEnvelope{
		Message: "Member added successfully",
		Member:  domainMemberToHTTP(*member),
	})
}

func (h *Handler) ListMembers(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	teamID, ok := pathID(r, "id")
	if !ok {
		h.handleError(w, r, errTeamNotFound)
		return
	}

	members, err := h.teamService.ListMembers(r.Context(), teamID, user.ID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ListMembersResponse{Members: domainMembersToHTTP(members)})
}

func (h *Handler) RequestMembership(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	teamID, ok := pathID(r, "id")
	if !ok {
		h.handleError(w, r, errTeamNotFound)
		return
	}

	member, err := h.teamService.RequestMembership(r.Context(), teamID, user.ID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, MemberEnvelope{
		Message: "Joined team successfully",
		Member:  domainMemberToHTTP(*member),
	})
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	teamID, ok := pathID(r, "id")
	if !ok {
		h.handleError(w, r, errTeamNotFound)
		return
	}

	// некорректный id участника заведомо не найден, но доступ к команде проверяется первым
	memberID, ok := pathID(r, "memberId")
	if !ok {
		memberID = uuid.Nil.String()
	}

	if err := h.teamService.RemoveMember(r.Context(), teamID, user.ID, memberID); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Member removed successfully"})
}
