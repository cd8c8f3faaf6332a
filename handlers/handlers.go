package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"microblog/apperrors"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps app errors to their status codes; anything else is a 500
// with a generic message.
func writeError(w http.ResponseWriter, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		writeJSON(w, appErr.StatusCode(), map[string]string{"detail": appErr.Message})
		return
	}
	logrus.WithError(err).Error("Unexpected error handling request")
	writeJSON(w, http.StatusInternalServerError, map[string]string{"detail": "internal server error"})
}

// pagination reads skip and limit query parameters with spec defaults.
func pagination(r *http.Request) (skip, limit int) {
	skip = 0
	limit = defaultLimit
	if s := r.URL.Query().Get("skip"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n >= 0 {
			skip = n
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return skip, limit
}

// SystemHandler handles system-related endpoints
type SystemHandler struct{}

func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// Healthz reports liveness.
func (h *SystemHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
