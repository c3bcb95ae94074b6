package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mkessel/todo-api/internal/api"
	"github.com/mkessel/todo-api/internal/config"
	"github.com/mkessel/todo-api/internal/platform/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApplication wires a full application against a fresh in-memory
// store, suitable for exercising the real router.
func newTestApplication() *application {
	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "error"},
	}
	testLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return &application{
		config:    cfg,
		logger:    testLogger,
		taskStore: memory.NewTaskStore(testLogger),
	}
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	return rr
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestApplication().setupRouter()

	rr := doRequest(t, router, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"message":"Healthy"}`, rr.Body.String())
}

// TestTaskLifecycle walks the full create/read/patch/delete flow through the
// real router and store.
func TestTaskLifecycle(t *testing.T) {
	router := newTestApplication().setupRouter()

	// Create
	rr := doRequest(t, router, http.MethodPost, "/tasks",
		`{"title":"Buy milk","description":"2%","status":"pending"}`)
	require.Equal(t, http.StatusCreated, rr.Code)
	assert.JSONEq(t, `{"id":1,"title":"Buy milk","description":"2%","status":"pending"}`, rr.Body.String())

	// Read back
	rr = doRequest(t, router, http.MethodGet, "/tasks/1", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":1,"title":"Buy milk","description":"2%","status":"pending"}`, rr.Body.String())

	// Patch just the status
	rr = doRequest(t, router, http.MethodPatch, "/tasks/1", `{"status":"completed"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":1,"title":"Buy milk","description":"2%","status":"completed"}`, rr.Body.String())

	// Replace everything
	rr = doRequest(t, router, http.MethodPut, "/tasks/1",
		`{"title":"Buy bread","description":"","status":"pending"}`)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"id":1,"title":"Buy bread","description":"","status":"pending"}`, rr.Body.String())

	// Delete
	rr = doRequest(t, router, http.MethodDelete, "/tasks/1", "")
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	// Gone
	rr = doRequest(t, router, http.MethodGet, "/tasks/1", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListTasksEnvelope(t *testing.T) {
	router := newTestApplication().setupRouter()

	// Empty store lists as an empty array, not null.
	rr := doRequest(t, router, http.MethodGet, "/tasks", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"tasks":[]}`, rr.Body.String())

	for _, title := range []string{"one", "two", "three"} {
		rr := doRequest(t, router, http.MethodPost, "/tasks",
			`{"title":"`+title+`","description":"","status":"pending"}`)
		require.Equal(t, http.StatusCreated, rr.Code)
	}

	rr = doRequest(t, router, http.MethodGet, "/tasks", "")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp api.TaskListResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Tasks, 3)
	for i, task := range resp.Tasks {
		assert.Equal(t, int64(i+1), task.ID, "tasks must be ordered by ascending ID")
	}
}

func TestValidationFailures(t *testing.T) {
	router := newTestApplication().setupRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{
			name:           "create_empty_title",
			method:         http.MethodPost,
			path:           "/tasks",
			body:           `{"title":"","description":"x","status":"pending"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "create_whitespace_title",
			method:         http.MethodPost,
			path:           "/tasks",
			body:           `{"title":"   ","description":"x","status":"pending"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "create_missing_status",
			method:         http.MethodPost,
			path:           "/tasks",
			body:           `{"title":"x","description":"y"}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "create_unknown_status",
			method:         http.MethodPost,
			path:           "/tasks",
			body:           `{"title":"x","description":"y","status":"done"}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "replace_missing_task",
			method:         http.MethodPut,
			path:           "/tasks/999",
			body:           `{"title":"x","description":"y","status":"pending"}`,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "patch_missing_task",
			method:         http.MethodPatch,
			path:           "/tasks/999",
			body:           `{"status":"completed"}`,
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "delete_missing_task",
			method:         http.MethodDelete,
			path:           "/tasks/999",
			body:           "",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "get_non_numeric_id",
			method:         http.MethodGet,
			path:           "/tasks/abc",
			body:           "",
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "get_zero_id",
			method:         http.MethodGet,
			path:           "/tasks/0",
			body:           "",
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := doRequest(t, router, tc.method, tc.path, tc.body)
			assert.Equal(t, tc.expectedStatus, rr.Code)
		})
	}
}

func TestIDsNotReusedAcrossDeletes(t *testing.T) {
	router := newTestApplication().setupRouter()

	rr := doRequest(t, router, http.MethodPost, "/tasks",
		`{"title":"first","description":"","status":"pending"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = doRequest(t, router, http.MethodDelete, "/tasks/1", "")
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doRequest(t, router, http.MethodPost, "/tasks",
		`{"title":"second","description":"","status":"pending"}`)
	require.Equal(t, http.StatusCreated, rr.Code)

	var task api.TaskResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &task))
	assert.Equal(t, int64(2), task.ID, "deleted IDs must never be reissued")
}

func TestCORSHeaders(t *testing.T) {
	router := newTestApplication().setupRouter()

	req, err := http.NewRequest(http.MethodOptions, "/tasks", nil)
	require.NoError(t, err)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("Access-Control-Allow-Origin"),
		"preflight requests must be answered for any origin")
}
