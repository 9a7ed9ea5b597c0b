package models

import (
	"time"

	"github.com/google/uuid"
)

// Tracker is a habit (fixed weekly schedule) or an irregular event.
// It is a value: changes go through the repository's update operation.
type Tracker struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	ColorHex string    `json:"color_hex"`
	Emoji    string    `json:"emoji"`
	Schedule Schedule  `json:"schedule"`
}

// NewTracker creates a tracker with a fresh identifier.
func NewTracker(name, colorHex, emoji string, schedule Schedule) Tracker {
	return Tracker{
		ID:       uuid.New(),
		Name:     name,
		ColorHex: colorHex,
		Emoji:    emoji,
		Schedule: schedule,
	}
}

// Category groups trackers. Title is the natural key and is unique.
type Category struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// CategorySummary is a category with the number of trackers assigned to it.
type CategorySummary struct {
	Title        string `json:"title"`
	TrackerCount int    `json:"tracker_count"`
}

// SnapshotItem pairs a tracker with its resolved category title.
type SnapshotItem struct {
	Tracker       Tracker `json:"tracker"`
	CategoryTitle string  `json:"category_title"`
}

// Group is one category section of a snapshot.
type Group struct {
	Title    string    `json:"title"`
	Trackers []Tracker `json:"trackers"`
}

// CompletionRecord is the fact that a tracker was done on a calendar day.
// At most one exists per (TrackerID, Day).
type CompletionRecord struct {
	ID        uuid.UUID `json:"id"`
	TrackerID uuid.UUID `json:"tracker_id"`
	Day       string    `json:"day"` // YYYY-MM-DD format
	CreatedAt time.Time `json:"created_at"`
}
