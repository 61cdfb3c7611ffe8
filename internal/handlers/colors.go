package handlers

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"learnlog/internal/models"
)

type ColorsHandler struct {
	db *sqlx.DB
}

func NewColorsHandler(db *sqlx.DB) *ColorsHandler { return &ColorsHandler{db: db} }

// List returns the seeded color palette ordered by name.
func (h *ColorsHandler) List(w http.ResponseWriter, r *http.Request) {
	colors := []models.Color{}
	err := h.db.SelectContext(r.Context(), &colors,
		`SELECT id, name, hex_code, created_at, updated_at FROM colors ORDER BY name`)
	if err != nil {
		http.Error(w, "could not fetch colors", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, colors)
}
