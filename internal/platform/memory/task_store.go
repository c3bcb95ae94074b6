// Package memory provides in-memory implementations of the store interfaces.
// State is process-local and resets on restart; there is no durable backend.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/mkessel/todo-api/internal/domain"
	"github.com/mkessel/todo-api/internal/platform/logger"
	"github.com/mkessel/todo-api/internal/store"
)

// TaskStore implements the store.TaskStore interface using a mutex-guarded
// map as the storage backend. A single lock covers both the map and the ID
// counter, so concurrent request handlers cannot lose updates or issue
// duplicate IDs.
type TaskStore struct {
	logger *slog.Logger

	mu     sync.Mutex
	tasks  map[int64]domain.Task
	nextID int64
}

// NewTaskStore creates a new in-memory implementation of the TaskStore
// interface. If logger is nil, a default logger will be used.
func NewTaskStore(logger *slog.Logger) *TaskStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		logger: logger.With(slog.String("component", "task_store")),
		tasks:  make(map[int64]domain.Task),
		nextID: 1,
	}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// List implements store.TaskStore.List
// It returns all tasks ordered by ascending ID; an empty store yields an
// empty, non-nil slice.
func (s *TaskStore) List(ctx context.Context) ([]domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks := make([]domain.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })

	return tasks, nil
}

// Create implements store.TaskStore.Create
// It assigns the next free ID, stores the task, and advances the counter.
// The counter only ever moves forward, so IDs are never reused even after
// deletes.
func (s *TaskStore) Create(ctx context.Context, title, description string, status domain.TaskStatus) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := domain.NewTask(s.nextID, title, description, status)
	if err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.tasks[task.ID] = *task
	s.nextID++

	log.Debug("task created", slog.Int64("task_id", task.ID))
	return task, nil
}

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}

	return &task, nil
}

// Replace implements store.TaskStore.Replace
// It overwrites every field of an existing task; the ID is unchanged.
func (s *TaskStore) Replace(ctx context.Context, id int64, title, description string, status domain.TaskStatus) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return nil, store.ErrTaskNotFound
	}

	task, err := domain.NewTask(id, title, description, status)
	if err != nil {
		log.Warn("task validation failed during replace",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.tasks[id] = *task

	log.Debug("task replaced", slog.Int64("task_id", id))
	return task, nil
}

// Update implements store.TaskStore.Update
// Only the fields present in the patch are overwritten; omitted fields keep
// their current values, including fields patched to an empty string.
func (s *TaskStore) Update(ctx context.Context, id int64, patch domain.TaskPatch) (*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}

	task, err := patch.Apply(existing)
	if err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("task_id", id))
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.tasks[id] = *task

	log.Debug("task updated", slog.Int64("task_id", id))
	return task, nil
}

// Delete implements store.TaskStore.Delete
// The deleted ID is never issued again; the counter is not rewound.
func (s *TaskStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}

	delete(s.tasks, id)

	log.Debug("task deleted", slog.Int64("task_id", id))
	return nil
}
