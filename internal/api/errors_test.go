package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/mkessel/todo-api/internal/api/shared"
	"github.com/mkessel/todo-api/internal/domain"
	"github.com/mkessel/todo-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "task_not_found",
			err:      store.ErrTaskNotFound,
			expected: http.StatusNotFound,
		},
		{
			name:     "wrapped_task_not_found",
			err:      fmt.Errorf("get task: %w", store.ErrTaskNotFound),
			expected: http.StatusNotFound,
		},
		{
			name:     "empty_title",
			err:      domain.ErrTaskTitleEmpty,
			expected: http.StatusBadRequest,
		},
		{
			name:     "empty_title_wrapped_in_invalid_entity",
			err:      fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrTaskTitleEmpty),
			expected: http.StatusBadRequest,
		},
		{
			name:     "invalid_status",
			err:      domain.ErrInvalidTaskStatus,
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "invalid_id",
			err:      domain.ErrTaskIDInvalid,
			expected: http.StatusUnprocessableEntity,
		},
		{
			name:     "unknown_error",
			err:      errors.New("boom"),
			expected: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	assert.Equal(t, "Task not found", GetSafeErrorMessage(store.ErrTaskNotFound))
	assert.Equal(t, "title must not be empty",
		GetSafeErrorMessage(fmt.Errorf("%w: %w", store.ErrInvalidEntity, domain.ErrTaskTitleEmpty)))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(errors.New("boom")))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
}

func TestValidationFieldErrors(t *testing.T) {
	// A request missing both title and status produces detail for each
	// failing field, named after the JSON key.
	req := CreateTaskRequest{}
	err := shared.Validate.Struct(req)
	require.Error(t, err)

	fields := ValidationFieldErrors(err)
	require.Len(t, fields, 3)

	byField := map[string]string{}
	for _, fe := range fields {
		byField[fe.Field] = fe.Message
	}
	assert.Equal(t, "required field", byField["title"])
	assert.Equal(t, "required field", byField["description"])
	assert.Equal(t, "required field", byField["status"])

	// A bad enum value reports the oneof failure.
	bad := "archived"
	title := "x"
	desc := ""
	req = CreateTaskRequest{Title: &title, Description: &desc, Status: &bad}
	err = shared.Validate.Struct(req)
	require.Error(t, err)

	fields = ValidationFieldErrors(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "status", fields[0].Field)
	assert.Equal(t, "invalid value", fields[0].Message)

	// Non-validator errors carry no field detail.
	assert.Nil(t, ValidationFieldErrors(errors.New("boom")))
}
