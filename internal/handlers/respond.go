package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"learnlog/internal/logs"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeRepoError maps the repository error taxonomy onto HTTP status codes.
// Anything outside the taxonomy is a storage failure and stays opaque.
func writeRepoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, logs.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, logs.ErrUnauthenticated):
		http.Error(w, "not authenticated", http.StatusUnauthorized)
	case errors.Is(err, logs.ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, logs.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		http.Error(w, "server error", http.StatusInternalServerError)
	}
}
