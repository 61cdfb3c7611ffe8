package logs

import (
	"database/sql"
	"time"
)

// Presentation fallback when a log references a missing color.
const (
	DefaultColorHex  = "#3B82F6"
	DefaultColorName = "Blue"
)

// LogView is the calendar/list shape handed to the presentation layer.
type LogView struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Title     string    `json:"title"`
	Details   string    `json:"details"`
	ColorHex  string    `json:"color_hex"`
	ColorName string    `json:"color_name"`
	Tags      []string  `json:"tags"`
}

// LogDetails is the detail-view shape, including the raw color reference so
// the edit form can preselect it.
type LogDetails struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Title     string    `json:"title"`
	Details   string    `json:"details"`
	ColorID   string    `json:"color_id"`
	ColorHex  string    `json:"color_hex"`
	ColorName string    `json:"color_name"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// joinedRow is one row of the logs/colors/tags left join. Color and tag
// columns are nullable: a log may reference a missing color and carry no tags.
type joinedRow struct {
	ID        string         `db:"id"`
	UserID    string         `db:"user_id"`
	Title     string         `db:"title"`
	Details   string         `db:"details"`
	ColorID   sql.NullString `db:"color_id"`
	ColorName sql.NullString `db:"color_name"`
	ColorHex  sql.NullString `db:"color_hex"`
	TagName   sql.NullString `db:"tag_name"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// projectDetails collapses the joined rows for a single log into its detail
// shape, applying the default-color fallback. Rows must all belong to the
// same log; an empty slice yields ok=false.
func projectDetails(rows []joinedRow) (LogDetails, bool) {
	if len(rows) == 0 {
		return LogDetails{}, false
	}
	first := rows[0]
	d := LogDetails{
		ID:        first.ID,
		UserID:    first.UserID,
		Title:     first.Title,
		Details:   first.Details,
		ColorID:   first.ColorID.String,
		ColorHex:  DefaultColorHex,
		ColorName: DefaultColorName,
		Tags:      []string{},
		CreatedAt: first.CreatedAt,
		UpdatedAt: first.UpdatedAt,
	}
	if first.ColorHex.Valid {
		d.ColorHex = first.ColorHex.String
		d.ColorName = first.ColorName.String
	}
	seen := make(map[string]bool)
	for _, row := range rows {
		if row.TagName.Valid && !seen[row.TagName.String] {
			seen[row.TagName.String] = true
			d.Tags = append(d.Tags, row.TagName.String)
		}
	}
	return d, true
}

// projectViews collapses joined rows (ordered by log, one row per log/tag
// pair) into list views, preserving the row order of the logs.
func projectViews(rows []joinedRow) []LogView {
	views := []LogView{}
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.ID]
		if !ok {
			v := LogView{
				ID:        row.ID,
				Date:      row.CreatedAt,
				Title:     row.Title,
				Details:   row.Details,
				ColorHex:  DefaultColorHex,
				ColorName: DefaultColorName,
				Tags:      []string{},
			}
			if row.ColorHex.Valid {
				v.ColorHex = row.ColorHex.String
				v.ColorName = row.ColorName.String
			}
			index[row.ID] = len(views)
			views = append(views, v)
			i = index[row.ID]
		}
		if row.TagName.Valid {
			if !containsString(views[i].Tags, row.TagName.String) {
				views[i].Tags = append(views[i].Tags, row.TagName.String)
			}
		}
	}
	return views
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
