package api

import (
	"net/http"

	"github.com/mkessel/todo-api/internal/api/shared"
)

// HealthCheck handles GET / requests.
// It is a readiness endpoint used by clients and deployment checks.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{Message: "Healthy"})
}
