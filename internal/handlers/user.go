package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"

	mw "learnlog/internal/middleware"
	"learnlog/internal/models"
)

type UserHandler struct {
	db *sqlx.DB
}

func NewUserHandler(db *sqlx.DB) *UserHandler { return &UserHandler{db: db} }

// GetMe returns the current user's profile, including the stored streak.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	userID, _ := mw.UserIDFrom(r.Context())
	var u models.User
	if err := h.db.GetContext(r.Context(), &u, `
		SELECT id, username, email, password_hash, streak, created_at, updated_at
		FROM users WHERE id = $1`, userID); err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// UpdateMe updates the username. The streak counter is maintained elsewhere
// and is not writable through the API.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	userID, _ := mw.UserIDFrom(r.Context())
	var body struct {
		Username string `json:"username"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	body.Username = strings.TrimSpace(body.Username)
	if body.Username == "" {
		http.Error(w, "username required", http.StatusBadRequest)
		return
	}

	var u models.User
	err := h.db.QueryRowxContext(r.Context(), `
		UPDATE users SET username = $1, updated_at = NOW() WHERE id = $2
		RETURNING id, username, email, password_hash, streak, created_at, updated_at`,
		body.Username, userID).StructScan(&u)
	if err != nil {
		http.Error(w, "could not update", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, u)
}
