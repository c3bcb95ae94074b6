package domain

import (
	"errors"
	"strings"
)

// Task-specific validation errors
var (
	// ErrTaskIDInvalid is returned when a task ID is zero or negative.
	ErrTaskIDInvalid = errors.New("task ID must be a positive integer")

	// ErrTaskTitleEmpty is returned when a task title is empty or contains
	// only whitespace.
	ErrTaskTitleEmpty = errors.New("title must not be empty")

	// ErrInvalidTaskStatus is returned when a task status is not one of the
	// allowed values.
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

// TaskStatus represents the lifecycle state of a task.
// It is a closed set: only the constants below are valid values.
type TaskStatus string

const (
	// TaskStatusPending indicates a task that has not been completed yet.
	TaskStatusPending TaskStatus = "pending"

	// TaskStatusCompleted indicates a task that has been completed.
	TaskStatusCompleted TaskStatus = "completed"
)

// IsValid checks if the status is one of the allowed values.
func (s TaskStatus) IsValid() bool {
	return s == TaskStatusPending || s == TaskStatusCompleted
}

// String returns the string representation of the status.
func (s TaskStatus) String() string {
	return string(s)
}

// Task represents a single to-do item. The ID is assigned by the store at
// creation time and never changes or gets reused afterwards.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
}

// NewTask creates a new Task with the given ID and field values.
// The title is validated against its trimmed form but stored as provided.
// Returns an error if validation fails.
func NewTask(id int64, title, description string, status TaskStatus) (*Task, error) {
	task := &Task{
		ID:          id,
		Title:       title,
		Description: description,
		Status:      status,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID < 1 {
		return ErrTaskIDInvalid
	}

	if strings.TrimSpace(t.Title) == "" {
		return ErrTaskTitleEmpty
	}

	if !t.Status.IsValid() {
		return ErrInvalidTaskStatus
	}

	return nil
}

// TaskPatch describes a partial update to a task. A nil field means "leave
// unchanged"; a non-nil field carries the new value, even when that value is
// the empty string.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *TaskStatus
}

// IsEmpty reports whether the patch carries no field updates at all.
func (p TaskPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil
}

// Apply overwrites the task's fields with the values present in the patch.
// Fields absent from the patch are left untouched. The result is validated
// before it is returned; the receiver is never modified.
func (p TaskPatch) Apply(t Task) (*Task, error) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}

	return &t, nil
}
