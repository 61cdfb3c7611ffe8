package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"learnlog/internal/calendar"
	"learnlog/internal/logs"
	mw "learnlog/internal/middleware"
)

type LogsHandler struct {
	repo     *logs.Repository
	validate *validator.Validate
}

func NewLogsHandler(repo *logs.Repository) *LogsHandler {
	return &LogsHandler{repo: repo, validate: validator.New()}
}

type createLogRequest struct {
	Title   string `json:"title" validate:"required"`
	Details string `json:"details"`
	ColorID string `json:"color_id" validate:"omitempty,uuid"`
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	// LocalDate is the client's current date, used to reject future targets.
	LocalDate string   `json:"local_date" validate:"omitempty,datetime=2006-01-02"`
	Tags      []string `json:"tags"`
}

type updateLogRequest struct {
	Title   string   `json:"title" validate:"required"`
	Details string   `json:"details"`
	ColorID string   `json:"color_id" validate:"omitempty,uuid"`
	Tags    []string `json:"tags"`
}

// tagOutcome is the wire shape of one tag-attachment result.
type tagOutcome struct {
	Name     string `json:"name"`
	Attached bool   `json:"attached"`
	Error    string `json:"error,omitempty"`
}

func toTagOutcomes(results []logs.TagResult) []tagOutcome {
	out := make([]tagOutcome, 0, len(results))
	for _, res := range results {
		o := tagOutcome{Name: res.Name, Attached: !res.Failed()}
		if res.Failed() {
			o.Error = res.Err.Error()
		}
		out = append(out, o)
	}
	return out
}

func (h *LogsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := mw.UserIDFrom(r.Context())
	var req createLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	today := time.Now().UTC()
	if req.LocalDate != "" {
		today, _ = time.Parse("2006-01-02", req.LocalDate)
	}
	if !calendar.CanCreateOn(date, today) {
		http.Error(w, "cannot create a log on a future date", http.StatusBadRequest)
		return
	}

	log, results, err := h.repo.Create(r.Context(), userID, logs.CreateInput{
		Title:   req.Title,
		Details: req.Details,
		ColorID: req.ColorID,
		Date:    date,
		Tags:    req.Tags,
	})
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"log":         log,
		"tag_results": toTagOutcomes(results),
	})
}

func (h *LogsHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := mw.UserIDFrom(r.Context())
	views, err := h.repo.List(r.Context(), userID)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *LogsHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := mw.UserIDFrom(r.Context())
	details, err := h.repo.GetByID(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *LogsHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := mw.UserIDFrom(r.Context())
	var req updateLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	details, results, err := h.repo.Update(r.Context(), userID, chi.URLParam(r, "id"), logs.UpdateInput{
		Title:   req.Title,
		Details: req.Details,
		ColorID: req.ColorID,
		Tags:    req.Tags,
	})
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"log":         details,
		"tag_results": toTagOutcomes(results),
	})
}

func (h *LogsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := mw.UserIDFrom(r.Context())
	if err := h.repo.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeRepoError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
