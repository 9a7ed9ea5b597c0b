package storage

//go:generate mockgen -destination=../tracker/mock_provider_test.go -package=tracker github.com/julianstephens/tracker/internal/storage Provider

import (
	"github.com/google/uuid"

	"github.com/julianstephens/tracker/internal/models"
)

// CategoryStore manages categories keyed by their unique title.
type CategoryStore interface {
	// EnsureCategory returns the category with title, creating it if absent.
	EnsureCategory(title string) (models.Category, error)
	// GetAllCategories returns every category ordered by title.
	GetAllCategories() ([]models.Category, error)
	// RenameCategory retitles a category and every tracker assigned to it.
	RenameCategory(oldTitle, newTitle string) error
	// DeleteCategory removes a category. Its trackers keep the stale title and
	// resolve to the Uncategorized sentinel on read.
	DeleteCategory(title string) error
	CountTrackers(title string) (int, error)
}

// RecordStore manages per-day completion records.
type RecordStore interface {
	// ToggleRecord removes the record for (trackerID, day) if present, otherwise
	// inserts one. It reports whether a record exists afterwards.
	ToggleRecord(trackerID uuid.UUID, day string) (bool, error)
	HasRecord(trackerID uuid.UUID, day string) (bool, error)
	CountRecords(trackerID uuid.UUID) (int, error)
	CountAllRecords() (int, error)
	GetRecordsForTracker(trackerID uuid.UUID) ([]models.CompletionRecord, error)
}

// TrackerStore manages trackers and their category assignment.
type TrackerStore interface {
	AddTracker(t models.Tracker, categoryTitle string) error
	GetTracker(id uuid.UUID) (models.SnapshotItem, error)
	UpdateTracker(t models.Tracker, categoryTitle string) error
	// DeleteTracker removes the tracker together with its completion records.
	DeleteTracker(id uuid.UUID) error
	SetTrackerCategory(id uuid.UUID, title string) error
	// Snapshot returns every tracker with its resolved category, ordered by
	// category title then tracker name.
	Snapshot() ([]models.SnapshotItem, error)
}

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	TrackerStore
	CategoryStore
	RecordStore

	// Utils
	GetConfigPath() string
}
