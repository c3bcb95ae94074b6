package store

import (
	"context"

	"github.com/mkessel/todo-api/internal/domain"
)

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// List retrieves all tasks ordered by ascending ID.
	// It always succeeds; an empty store yields an empty slice.
	List(ctx context.Context) ([]domain.Task, error)

	// Create assigns the next free ID to a new task, stores it, and returns
	// the stored task. IDs are strictly increasing and never reused, even
	// after deletes.
	// Returns a validation error wrapped in ErrInvalidEntity if the field
	// values do not form a valid task.
	Create(ctx context.Context, title, description string, status domain.TaskStatus) (*domain.Task, error)

	// GetByID retrieves a task by its unique ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// Replace overwrites every field of an existing task; the ID is unchanged.
	// Returns ErrTaskNotFound if the task does not exist, or a validation
	// error wrapped in ErrInvalidEntity for invalid field values.
	Replace(ctx context.Context, id int64, title, description string, status domain.TaskStatus) (*domain.Task, error)

	// Update applies a partial update: only the fields present in the patch
	// are overwritten, the rest keep their current values.
	// Returns ErrTaskNotFound if the task does not exist, or a validation
	// error wrapped in ErrInvalidEntity if the patched task would be invalid.
	Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error)

	// Delete removes a task from the store by its ID. The ID is never issued
	// again.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id int64) error
}
