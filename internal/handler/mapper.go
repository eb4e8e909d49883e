package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func domainUserToHTTP(user *domain.User) UserResponse {
	resp := UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		PlanID:    user.PlanID,
		CreatedAt: user.CreatedAt,
	}
	if user.Plan != nil {
		plan := domainPlanToHTTP(user.Plan)
		resp.Plan = &plan
	}
	return resp
}

func domainUserSummaryToHTTP(user domain.UserSummary) UserSummaryResponse {
	return UserSummaryResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}

func domainMemberToHTTP(member domain.TeamMember) MemberResponse {
	return MemberResponse{
		TeamID:   member.TeamID,
		UserID:   member.UserID,
		JoinedAt: member.JoinedAt,
		User:     domainUserSummaryToHTTP(member.User),
	}
}

func domainMembersToHTTP(members []domain.TeamMember) []MemberResponse {
	result := make([]MemberResponse, 0, len(members))
	for _, member := range members {
		result = append(result, domainMemberToHTTP(member))
	}
	return result
}

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	return TeamResponse{
		ID:          team.ID,
		Name:        team.Name,
		Description: team.Description,
		OwnerID:     team.OwnerID,
		CreatedAt:   team.CreatedAt,
		Members:     domainMembersToHTTP(team.Members),
		TaskCount:   team.TaskCount,
	}
}

func domainTeamDetailToHTTP(team *domain.Team) TeamDetailResponse {
	return TeamDetailResponse{
		TeamResponse: domainTeamToHTTP(team),
		Tasks:        domainTasksToHTTP(team.Tasks),
	}
}

func domainTaskToHTTP(task *domain.Task) TaskResponse {
	resp := TaskResponse{
		ID:           task.ID,
		Title:        task.Title,
		Description:  task.Description,
		Status:       string(task.Status),
		Priority:     string(task.Priority),
		DueDate:      task.DueDate,
		TeamID:       task.TeamID,
		AssignedToID: task.AssignedToID,
		CreatedAt:    task.CreatedAt,
		UpdatedAt:    task.UpdatedAt,
	}
	if task.AssignedTo != nil {
		assignee := domainUserSummaryToHTTP(*task.AssignedTo)
		resp.AssignedTo = &assignee
	}
	if task.Team != nil {
		resp.Team = &TeamSummaryResponse{ID: task.Team.ID, Name: task.Team.Name}
	}
	return resp
}

func domainTasksToHTTP(tasks []*domain.Task) []TaskResponse {
	result := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		result = append(result, domainTaskToHTTP(task))
	}
	return result
}

func domainPlanToHTTP(plan *domain.Plan) PlanResponse {
	return PlanResponse{
		ID:       plan.ID,
		Name:     plan.Name,
		Price:    plan.Price,
		Duration: string(plan.Duration),
	}
}

func domainNotificationToHTTP(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		Message:   n.Message,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}
