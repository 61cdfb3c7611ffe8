package handlers

import (
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"

	"learnlog/internal/calendar"
	"learnlog/internal/logs"
	mw "learnlog/internal/middleware"
)

type DashboardHandler struct {
	db   *sqlx.DB
	repo *logs.Repository
}

func NewDashboardHandler(db *sqlx.DB, repo *logs.Repository) *DashboardHandler {
	return &DashboardHandler{db: db, repo: repo}
}

type dashboardResponse struct {
	Username    string   `json:"username"`
	Streak      int      `json:"streak"`
	RecentTags  []string `json:"recent_tags"`
	TotalLogs   int      `json:"total_logs"`
	HasTodayLog bool     `json:"has_today_log"`
}

// Get powers the home sidebar: the stored streak counter, the 10 most
// recently seen distinct tag names, and whether today already has a log.
// Accepts optional query param local_date=YYYY-MM-DD as the user's "today".
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := mw.UserIDFrom(r.Context())

	today := time.Now().UTC()
	if s := r.URL.Query().Get("local_date"); s != "" {
		var err error
		if today, err = time.Parse("2006-01-02", s); err != nil {
			http.Error(w, "invalid local_date format; expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
	}

	var profile struct {
		Username string `db:"username"`
		Streak   int    `db:"streak"`
	}
	if err := h.db.GetContext(r.Context(), &profile,
		`SELECT username, streak FROM users WHERE id = $1`, userID); err != nil {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}

	views, err := h.repo.List(r.Context(), userID)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	hasToday := false
	for _, v := range views {
		if calendar.SameDay(v.Date, today) {
			hasToday = true
			break
		}
	}

	writeJSON(w, http.StatusOK, dashboardResponse{
		Username:    profile.Username,
		Streak:      profile.Streak,
		RecentTags:  logs.RecentTags(views, 10),
		TotalLogs:   len(views),
		HasTodayLog: hasToday,
	})
}
