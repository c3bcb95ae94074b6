package api

import (
	"github.com/mkessel/todo-api/internal/domain"
)

// Common request/response structures

// CreateTaskRequest defines the payload for creating a task. All three
// fields are required; pointer fields distinguish a key that is missing from
// the body (a 422 validation failure) from one that is present but empty
// (the empty-title case, a 400 business-rule failure).
type CreateTaskRequest struct {
	Title       *string `json:"title"       validate:"required"`
	Description *string `json:"description" validate:"required"`
	Status      *string `json:"status"      validate:"required,oneof=pending completed"`
}

// ReplaceTaskRequest defines the payload for full task replacement (PUT).
// Every field is required, mirroring CreateTaskRequest.
type ReplaceTaskRequest struct {
	Title       *string `json:"title"       validate:"required"`
	Description *string `json:"description" validate:"required"`
	Status      *string `json:"status"      validate:"required,oneof=pending completed"`
}

// PatchTaskRequest defines the payload for partial task updates (PATCH).
// A nil field was omitted from the body and leaves the stored value
// unchanged; a non-nil field overwrites it, even with an empty string.
type PatchTaskRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending completed"`
}

// TaskResponse represents the response data for a task.
type TaskResponse struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// TaskListResponse wraps the collection returned by the list endpoint.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// HealthResponse defines the body of the health check endpoint.
type HealthResponse struct {
	Message string `json:"message"`
}

// taskToResponse converts a domain.Task to a TaskResponse.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status.String(),
	}
}
