package handler

import (
	"net/http"

	"github.com/bagdasarian/team-tasks/internal/domain"
)

var errTaskNotFound = domain.NewNotFoundError("task")

func (h *Handler) CreateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := h.decodeAndValidate(r, &req, false); err != nil {
		h.handleError(w, r, err)
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	task, err := h.taskService.CreateTask(r.Context(), user.ID, &domain.Task{
		Title:        req.Title,
		Description:  req.Description,
		TeamID:       canonicalID(req.TeamID),
		AssignedToID: canonicalIDPtr(req.AssignedToID),
		Priority:     domain.Priority(req.Priority),
		DueDate:      dueDate,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, TaskEnvelope{
		Message: "Task created successfully",
		Task:    domainTaskToHTTP(task),
	})
}

func (h *Handler) ListTasks(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	query := r.URL.Query()
	q := ListTasksQuery{
		TeamID:       query.Get("teamId"),
		Status:       query.Get("status"),
		AssignedToMe: query.Get("assignedToMe") == "true",
	}
	if err := h.validateStruct(&q); err != nil {
		h.handleError(w, r, err)
		return
	}

	filter := domain.TaskFilter{
		TeamID: canonicalID(q.TeamID),
		Status: domain.Status(q.Status),
	}
	if q.AssignedToMe {
		filter.AssignedToID = user.ID
	}

	tasks, err := h.taskService.ListTasks(r.Context(), filter)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, ListTasksResponse{Tasks: domainTasksToHTTP(tasks)})
}

func (h *Handler) GetTask(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	taskID, ok := pathID(r, "id")
	if !ok {
		h.handleError(w, r, errTaskNotFound)
		return
	}

	task, err := h.taskService.GetTask(r.Context(), taskID, user.ID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, TaskEnvelope{Task: domainTaskToHTTP(task)})
}

func (h *Handler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	taskID, ok := pathID(r, "id")
	if !ok {
		h.handleError(w, r, errTaskNotFound)
		return
	}

	var req UpdateTaskRequest
	if err := h.decodeAndValidate(r, &req, false); err != nil {
		h.handleError(w, r, err)
		return
	}

	update := domain.TaskUpdate{
		Title:        req.Title,
		Description:  req.Description,
		AssigneeSet:  req.AssignedToID.Set,
		AssignedToID: canonicalIDPtr(req.AssignedToID.Value),
	}
	if req.Status != nil {
		status := domain.Status(*req.Status)
		update.Status = &status
	}
	if update.AssignedToID != nil {
		if err := h.validate.Var(*update.AssignedToID, "uuid"); err != nil {
			h.handleError(w, r, domain.NewValidationError("validation failed", map[string]string{
				"assignedToId": "must be a valid UUID",
			}))
			return
		}
	}

	task, err := h.taskService.UpdateTask(r.Context(), taskID, user.ID, update)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, TaskEnvelope{
		Message: "Task updated successfully",
		Task:    domainTaskToHTTP(task),
	})
}

func (h *Handler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	user, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	taskID, ok := pathID(r, "id")
	if !ok {
		h.handleError(w, r, errTaskNotFound)
		return
	}

	if err := h.taskService.DeleteTask(r.Context(), taskID, user.ID); err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Task deleted successfully"})
}
