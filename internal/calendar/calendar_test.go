package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"learnlog/internal/logs"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func view(id string, on time.Time) logs.LogView {
	return logs.LogView{ID: id, Date: on, Title: id}
}

func TestStartOfWeekIsSunday(t *testing.T) {
	// 2024-06-04 is a Tuesday; its week starts Sunday 2024-06-02.
	assert.Equal(t, date(2024, time.June, 2), StartOfWeek(date(2024, time.June, 4)))
	// A Sunday is its own week start.
	assert.Equal(t, date(2024, time.June, 2), StartOfWeek(date(2024, time.June, 2)))
	// Saturday still belongs to the same window.
	assert.Equal(t, date(2024, time.June, 2), StartOfWeek(date(2024, time.June, 8)))
}

func TestBuildWeekGroupsLogsByDay(t *testing.T) {
	views := []logs.LogView{
		view("log-jun10", date(2024, time.June, 10)),
		view("log-jun05", date(2024, time.June, 5)),
		view("log-jun03", date(2024, time.June, 3)),
	}

	week := BuildWeek(date(2024, time.June, 4), date(2024, time.June, 10), views)

	require.Len(t, week.Days, 7)
	assert.Equal(t, date(2024, time.June, 2), week.Start)
	assert.Equal(t, date(2024, time.June, 8), week.End)

	var found []string
	for _, day := range week.Days {
		for _, v := range day.Logs {
			found = append(found, v.ID)
			assert.True(t, SameDay(v.Date, day.Date))
		}
	}
	// The June 10 log falls outside the window and must not appear.
	assert.Equal(t, []string{"log-jun03", "log-jun05"}, found)
}

func TestBuildWeekDayActions(t *testing.T) {
	today := date(2024, time.June, 5) // Wednesday
	views := []logs.LogView{view("log-jun03", date(2024, time.June, 3))}

	week := BuildWeek(today, today, views)

	byDate := map[string]Day{}
	for _, day := range week.Days {
		byDate[day.Date.Format("2006-01-02")] = day
	}

	// Past day with a log opens it.
	assert.Equal(t, ActionOpen, byDate["2024-06-03"].Action)
	// Past/today days without logs offer creation.
	assert.Equal(t, ActionCreate, byDate["2024-06-04"].Action)
	assert.Equal(t, ActionCreate, byDate["2024-06-05"].Action)
	// Future days are never selectable.
	for _, ds := range []string{"2024-06-06", "2024-06-07", "2024-06-08"} {
		assert.Equal(t, ActionNone, byDate[ds].Action, ds)
		assert.False(t, byDate[ds].Selectable, ds)
	}
}

func TestCanCreateOnRejectsFutureDates(t *testing.T) {
	today := date(2024, time.June, 5)
	assert.True(t, CanCreateOn(today, today))
	assert.True(t, CanCreateOn(date(2024, time.June, 1), today))
	assert.False(t, CanCreateOn(date(2024, time.June, 6), today))
}

func TestWeekNavigationMovesSevenDays(t *testing.T) {
	ref := date(2024, time.June, 4)
	assert.Equal(t, date(2024, time.June, 11), NextWeek(ref))
	assert.Equal(t, date(2024, time.May, 28), PrevWeek(ref))
	// A full forward/back cycle lands on the original reference.
	assert.Equal(t, ref, PrevWeek(NextWeek(ref)))
}

func TestSameDayIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2024, time.June, 3, 8, 30, 0, 0, time.UTC)
	evening := time.Date(2024, time.June, 3, 23, 59, 59, 0, time.UTC)
	assert.True(t, SameDay(morning, evening))
	assert.False(t, SameDay(morning, date(2024, time.June, 4)))
}
