package storage

import (
	"sort"

	"github.com/julianstephens/tracker/internal/constants"
	"github.com/julianstephens/tracker/internal/models"
)

// ResolveCategory maps a stored category title to the title shown in reads.
// Trackers whose category no longer exists are reported as Uncategorized.
func ResolveCategory(title string, exists bool) string {
	if title == "" || !exists {
		return constants.UncategorizedTitle
	}
	return title
}

// ApplyTrackerDefaults fills colour and emoji left empty by older rows.
func ApplyTrackerDefaults(t models.Tracker) models.Tracker {
	if t.ColorHex == "" {
		t.ColorHex = constants.DefaultColorHex
	}
	if t.Emoji == "" {
		t.Emoji = constants.DefaultEmoji
	}
	return t
}

// SortSnapshot orders items by category title, then tracker name, then id, so
// every backend returns the same sequence for the same data.
func SortSnapshot(items []models.SnapshotItem) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.CategoryTitle != b.CategoryTitle {
			return a.CategoryTitle < b.CategoryTitle
		}
		if a.Tracker.Name != b.Tracker.Name {
			return a.Tracker.Name < b.Tracker.Name
		}
		return a.Tracker.ID.String() < b.Tracker.ID.String()
	})
}

func sortCategories(cs []models.Category) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Title < cs[j].Title })
}

func sortRecords(rs []models.CompletionRecord) {
	sort.Slice(rs, func(i, j int) bool { return rs[i].Day < rs[j].Day })
}
