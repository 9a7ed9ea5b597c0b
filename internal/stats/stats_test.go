package stats

import (
	"errors"
	"testing"

	apperrors "github.com/julianstephens/tracker/internal/errors"
	"github.com/julianstephens/tracker/internal/models"
	"github.com/julianstephens/tracker/internal/storage"
)

func TestCompletedTotalCountsAcrossTrackersAndDays(t *testing.T) {
	store := storage.NewMemoryStore()
	a := models.NewTracker("A", "", "", models.Everyday)
	b := models.NewTracker("B", "", "", models.Schedule{})
	for _, tr := range []models.Tracker{a, b} {
		if err := store.AddTracker(tr, "X"); err != nil {
			t.Fatal(err)
		}
	}

	agg := NewAggregator(store)
	if n, err := agg.CompletedTotal(); err != nil || n != 0 {
		t.Fatalf("empty store: n=%d err=%v", n, err)
	}

	toggles := []struct {
		tracker models.Tracker
		day     string
	}{
		{a, "2024-01-01"}, {a, "2024-01-02"}, {b, "2024-01-01"}, {b, "2024-01-01"},
	}
	for _, tg := range toggles {
		if _, err := store.ToggleRecord(tg.tracker.ID, tg.day); err != nil {
			t.Fatal(err)
		}
	}

	// b was toggled twice on the same day, so only a's two records remain
	if n, _ := agg.CompletedTotal(); n != 2 {
		t.Errorf("CompletedTotal = %d, want 2", n)
	}

	sum, err := agg.Summary()
	if err != nil {
		t.Fatal(err)
	}
	want := Summary{CompletedTotal: 2, TrackerCount: 2, CategoryCount: 1}
	if sum != want {
		t.Errorf("Summary = %+v, want %+v", sum, want)
	}
}

type failingSource struct{ storage.Provider }

func (failingSource) CountAllRecords() (int, error) {
	return 0, apperrors.Persistence("count", "record", errors.New("disk I/O error"))
}

func TestSummaryPropagatesErrors(t *testing.T) {
	agg := NewAggregator(failingSource{storage.NewMemoryStore()})
	if _, err := agg.Summary(); !errors.Is(err, apperrors.ErrPersistence) {
		t.Errorf("expected ErrPersistence, got %v", err)
	}
	total, err := agg.CompletedTotal()
	if n := apperrors.OrDefault(total, err, 0); n != 0 {
		t.Errorf("expected fallback 0, got %d", n)
	}
}
