// Package calendar builds the weekly view shown on the home screen: a
// Sunday-to-Saturday window of days, each carrying the logs created on that
// day and whether the day accepts a select action. It is read-only over the
// repository's output and performs no persistence.
package calendar

import (
	"time"

	"learnlog/internal/logs"
)

// Action is what selecting a day yields.
type Action string

const (
	// ActionCreate opens the new-log form for the day.
	ActionCreate Action = "create"
	// ActionOpen opens the day's existing logs.
	ActionOpen Action = "open"
	// ActionNone marks a future day; selection is rejected.
	ActionNone Action = "none"
)

// Day is one column of the week view.
type Day struct {
	Date       time.Time      `json:"date"`
	Logs       []logs.LogView `json:"logs"`
	Selectable bool           `json:"selectable"`
	Action     Action         `json:"action"`
}

// Week is a 7-day Sunday-start window.
type Week struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Days  []Day     `json:"days"`
}

// StartOfDay truncates t to its calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Sunday beginning the week containing ref.
func StartOfWeek(ref time.Time) time.Time {
	d := StartOfDay(ref)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// NextWeek advances the reference date by exactly seven days.
func NextWeek(ref time.Time) time.Time { return ref.AddDate(0, 0, 7) }

// PrevWeek retreats the reference date by exactly seven days.
func PrevWeek(ref time.Time) time.Time { return ref.AddDate(0, 0, -7) }

// BuildWeek assembles the week window containing ref. Each day holds the
// views whose creation date equals that day (calendar-day granularity). Days
// strictly after today are not selectable; a selectable day yields "create"
// when empty and "open" when logs exist.
func BuildWeek(ref, today time.Time, views []logs.LogView) Week {
	start := StartOfWeek(ref)
	todayStart := StartOfDay(today)

	week := Week{Start: start, End: start.AddDate(0, 0, 6)}
	for i := 0; i < 7; i++ {
		date := start.AddDate(0, 0, i)
		day := Day{Date: date, Logs: []logs.LogView{}}
		for _, v := range views {
			if SameDay(v.Date, date) {
				day.Logs = append(day.Logs, v)
			}
		}
		day.Selectable = !date.After(todayStart)
		switch {
		case !day.Selectable:
			day.Action = ActionNone
		case len(day.Logs) == 0:
			day.Action = ActionCreate
		default:
			day.Action = ActionOpen
		}
		week.Days = append(week.Days, day)
	}
	return week
}

// CanCreateOn reports whether date is a valid target for log creation: today
// or earlier, never a future day.
func CanCreateOn(date, today time.Time) bool {
	return !StartOfDay(date).After(StartOfDay(today))
}
