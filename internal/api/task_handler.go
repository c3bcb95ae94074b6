package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/mkessel/todo-api/internal/api/shared"
	"github.com/mkessel/todo-api/internal/domain"
	"github.com/mkessel/todo-api/internal/platform/logger"
	"github.com/mkessel/todo-api/internal/store"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskStore store.TaskStore, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "task_handler")),
	}
}

// taskIDFromRequest extracts and parses the {id} path parameter.
// Returns domain.ErrTaskIDInvalid for anything that is not an integer >= 1.
func taskIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, domain.ErrTaskIDInvalid
	}
	return id, nil
}

// respondWithInvalidTaskID writes the 422 response for a malformed path id.
func respondWithInvalidTaskID(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithValidationError(w, r, http.StatusUnprocessableEntity, "Validation error",
		[]shared.FieldError{{Field: "id", Message: "must be a positive integer"}})
}

// ListTasks handles GET /tasks requests
// It returns every stored task ordered by ascending ID.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	tasks, err := h.taskStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), "Failed to list tasks", err)
		return
	}

	response := TaskListResponse{Tasks: make([]TaskResponse, 0, len(tasks))}
	for i := range tasks {
		response.Tasks = append(response.Tasks, taskToResponse(&tasks[i]))
	}

	log.Debug("listed tasks", slog.Int("count", len(response.Tasks)))
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// CreateTask handles POST /tasks requests
// It stores a new task and returns it with its assigned ID.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	// Parse request body
	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		RespondWithDecodeError(w, r, err)
		return
	}

	// Validate request
	if err := shared.Validate.Struct(req); err != nil {
		log.Warn("validation error", slog.String("error", err.Error()))
		shared.RespondWithValidationError(w, r, http.StatusUnprocessableEntity,
			"Validation error", ValidationFieldErrors(err))
		return
	}

	// The empty-title business rule is enforced by the store; the error
	// mapping turns it into a 400.
	task, err := h.taskStore.Create(r.Context(), *req.Title, *req.Description, domain.TaskStatus(*req.Status))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task created", slog.Int64("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// GetTask handles GET /tasks/{id} requests
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := taskIDFromRequest(r)
	if err != nil {
		log.Warn("invalid task ID in path", slog.String("id", chi.URLParam(r, "id")))
		respondWithInvalidTaskID(w, r)
		return
	}

	task, err := h.taskStore.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// ReplaceTask handles PUT /tasks/{id} requests
// It replaces the entire task (title, description, status); the ID never
// changes.
func (h *TaskHandler) ReplaceTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := taskIDFromRequest(r)
	if err != nil {
		log.Warn("invalid task ID in path", slog.String("id", chi.URLParam(r, "id")))
		respondWithInvalidTaskID(w, r)
		return
	}

	var req ReplaceTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		RespondWithDecodeError(w, r, err)
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		log.Warn("validation error",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		shared.RespondWithValidationError(w, r, http.StatusUnprocessableEntity,
			"Validation error", ValidationFieldErrors(err))
		return
	}

	// The store checks existence before field validation, so a missing task
	// yields 404 even when the body also carries an empty title.
	task, err := h.taskStore.Replace(r.Context(), id, *req.Title, *req.Description, domain.TaskStatus(*req.Status))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task replaced", slog.Int64("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// PatchTask handles PATCH /tasks/{id} requests
// It applies any subset of {title, description, status}; omitted fields keep
// their stored values.
func (h *TaskHandler) PatchTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := taskIDFromRequest(r)
	if err != nil {
		log.Warn("invalid task ID in path", slog.String("id", chi.URLParam(r, "id")))
		respondWithInvalidTaskID(w, r)
		return
	}

	var req PatchTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		RespondWithDecodeError(w, r, err)
		return
	}

	if err := shared.Validate.Struct(req); err != nil {
		log.Warn("validation error",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		shared.RespondWithValidationError(w, r, http.StatusUnprocessableEntity,
			"Validation error", ValidationFieldErrors(err))
		return
	}

	patch := domain.TaskPatch{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		patch.Status = &status
	}

	task, err := h.taskStore.Update(r.Context(), id, patch)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task patched", slog.Int64("task_id", task.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /tasks/{id} requests
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := taskIDFromRequest(r)
	if err != nil {
		log.Warn("invalid task ID in path", slog.String("id", chi.URLParam(r, "id")))
		respondWithInvalidTaskID(w, r)
		return
	}

	if err := h.taskStore.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("task deleted", slog.Int64("task_id", id))
	w.WriteHeader(http.StatusNoContent)
}
