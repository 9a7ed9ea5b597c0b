// Package query builds the grouped, filtered views of trackers shown to the user.
// Every function here is pure: results are recomputed from the items passed in.
package query

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/julianstephens/tracker/internal/models"
)

// lower applies Unicode lower-case mapping. A Caser is stateful, so each call
// gets its own.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func normalize(s string) string {
	return lower(strings.TrimSpace(s))
}

// MatchesDay reports whether a tracker with schedule s is shown on weekday w.
// Irregular trackers are shown every day.
func MatchesDay(s models.Schedule, w models.Weekday) bool {
	return s.IsDueOn(w)
}

// MatchesText reports whether name contains the trimmed, case-folded query.
// An empty query matches everything.
func MatchesText(name, text string) bool {
	q := normalize(text)
	if q == "" {
		return true
	}
	return strings.Contains(lower(name), q)
}

// Snapshot returns the trackers shown on date, narrowed by text and grouped by
// category. Groups are ordered by title, trackers keep their input order and
// empty groups are omitted.
func Snapshot(items []models.SnapshotItem, date time.Time, text string) []models.Group {
	weekday := models.WeekdayFromTime(date)
	q := normalize(text)

	byTitle := make(map[string][]models.Tracker)
	for _, item := range items {
		t := item.Tracker
		if !MatchesDay(t.Schedule, weekday) {
			continue
		}
		if q != "" && !strings.Contains(lower(t.Name), q) {
			continue
		}
		byTitle[item.CategoryTitle] = append(byTitle[item.CategoryTitle], t)
	}

	titles := make([]string, 0, len(byTitle))
	for title := range byTitle {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	groups := make([]models.Group, 0, len(titles))
	for _, title := range titles {
		groups = append(groups, models.Group{Title: title, Trackers: byTitle[title]})
	}
	return groups
}

// ApplyFilter keeps trackers matching f's completion state. Groups emptied by
// the filter are dropped. FilterAll and FilterToday return groups unchanged.
func ApplyFilter(groups []models.Group, isDone func(uuid.UUID) bool, f models.FilterOption) []models.Group {
	if f.IsReset() {
		return groups
	}
	want := f == models.FilterCompleted

	out := make([]models.Group, 0, len(groups))
	for _, g := range groups {
		var kept []models.Tracker
		for _, t := range g.Trackers {
			if isDone(t.ID) == want {
				kept = append(kept, t)
			}
		}
		if len(kept) > 0 {
			out = append(out, models.Group{Title: g.Title, Trackers: kept})
		}
	}
	return out
}

// Count returns the number of trackers across groups.
func Count(groups []models.Group) int {
	n := 0
	for _, g := range groups {
		n += len(g.Trackers)
	}
	return n
}
