package handlers

import (
	"net/http"

	"learnlog/internal/logs"
	mw "learnlog/internal/middleware"
)

type TagsHandler struct {
	repo *logs.Repository
}

func NewTagsHandler(repo *logs.Repository) *TagsHandler { return &TagsHandler{repo: repo} }

// List returns every tag ordered by name, for form suggestions.
func (h *TagsHandler) List(w http.ResponseWriter, r *http.Request) {
	tags, err := h.repo.ListTags(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tags)
}

// Counts returns tag usage counts across the caller's logs, most used first.
func (h *TagsHandler) Counts(w http.ResponseWriter, r *http.Request) {
	userID, _ := mw.UserIDFrom(r.Context())
	counts, err := h.repo.CountTags(r.Context(), userID)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}
