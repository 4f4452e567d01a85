package http

import (
	"encoding/json"
	"net/http"

	"github.com/Tigon-Golf-Carts-LLC/LSV-Battery-Depot/platform/logger"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(r.Context(), "encode response", logger.ErrorF(err))
	}
}

// writeError keeps failure payloads generic; internal detail stays in
// the logs.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, r, status, ErrorResponse{Message: message})
}
