package handlers

import (
	"net/http"
	"time"

	"learnlog/internal/calendar"
	"learnlog/internal/logs"
	mw "learnlog/internal/middleware"
)

type CalendarHandler struct {
	repo *logs.Repository
}

func NewCalendarHandler(repo *logs.Repository) *CalendarHandler {
	return &CalendarHandler{repo: repo}
}

type calendarResponse struct {
	ReferenceDate string        `json:"reference_date"`
	PrevDate      string        `json:"prev_date"`
	NextDate      string        `json:"next_date"`
	Week          calendar.Week `json:"week"`
}

// Get returns the Sunday-start week containing the reference date, with the
// user's logs grouped by day. Optional query params: date=YYYY-MM-DD (the
// reference, defaults to today) and local_date=YYYY-MM-DD (the client's
// "today", controlling which days are selectable).
func (h *CalendarHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := mw.UserIDFrom(r.Context())

	today := time.Now().UTC()
	if s := r.URL.Query().Get("local_date"); s != "" {
		var err error
		if today, err = time.Parse("2006-01-02", s); err != nil {
			http.Error(w, "invalid local_date format; expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
	}
	ref := today
	if s := r.URL.Query().Get("date"); s != "" {
		var err error
		if ref, err = time.Parse("2006-01-02", s); err != nil {
			http.Error(w, "invalid date format; expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
	}

	views, err := h.repo.List(r.Context(), userID)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	resp := calendarResponse{
		ReferenceDate: ref.Format("2006-01-02"),
		PrevDate:      calendar.PrevWeek(ref).Format("2006-01-02"),
		NextDate:      calendar.NextWeek(ref).Format("2006-01-02"),
		Week:          calendar.BuildWeek(ref, today, views),
	}
	writeJSON(w, http.StatusOK, resp)
}
