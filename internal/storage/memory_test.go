package storage

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/julianstephens/tracker/internal/constants"
	apperrors "github.com/julianstephens/tracker/internal/errors"
	"github.com/julianstephens/tracker/internal/models"
)

func setupTestMemoryStore(t *testing.T) *MemoryStore {
	t.Helper()
	store := NewMemoryStore()
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	return store
}

func mustAddTracker(t *testing.T, store Provider, name, category string, schedule models.Schedule) models.Tracker {
	t.Helper()
	tr := models.NewTracker(name, "#FF0000", "⭐", schedule)
	if err := store.AddTracker(tr, category); err != nil {
		t.Fatalf("failed to add tracker %s: %v", name, err)
	}
	return tr
}

func TestMemoryStoreToggleRecord(t *testing.T) {
	store := setupTestMemoryStore(t)
	tr := mustAddTracker(t, store, "Read", "Habits", models.Everyday)

	done, err := store.ToggleRecord(tr.ID, "2024-01-01")
	if err != nil {
		t.Fatalf("ToggleRecord failed: %v", err)
	}
	if !done {
		t.Error("first toggle should mark the tracker done")
	}

	has, err := store.HasRecord(tr.ID, "2024-01-01")
	if err != nil || !has {
		t.Errorf("expected record after toggle, has=%v err=%v", has, err)
	}

	done, err = store.ToggleRecord(tr.ID, "2024-01-01")
	if err != nil {
		t.Fatalf("ToggleRecord failed: %v", err)
	}
	if done {
		t.Error("second toggle should clear the record")
	}

	n, _ := store.CountRecords(tr.ID)
	if n != 0 {
		t.Errorf("expected 0 records after double toggle, got %d", n)
	}
}

func TestMemoryStoreToggleUnknownTracker(t *testing.T) {
	store := setupTestMemoryStore(t)

	_, err := store.ToggleRecord(uuid.New(), "2024-01-01")
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	n, _ := store.CountAllRecords()
	if n != 0 {
		t.Errorf("expected no records, got %d", n)
	}
}

func TestMemoryStoreRecordCounts(t *testing.T) {
	store := setupTestMemoryStore(t)
	a := mustAddTracker(t, store, "A", "X", models.Everyday)
	b := mustAddTracker(t, store, "B", "X", models.Everyday)

	for _, day := range []string{"2024-01-03", "2024-01-01", "2024-01-02"} {
		if _, err := store.ToggleRecord(a.ID, day); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.ToggleRecord(b.ID, "2024-01-01"); err != nil {
		t.Fatal(err)
	}

	if n, _ := store.CountRecords(a.ID); n != 3 {
		t.Errorf("CountRecords(a) = %d, want 3", n)
	}
	if n, _ := store.CountAllRecords(); n != 4 {
		t.Errorf("CountAllRecords = %d, want 4", n)
	}

	recs, err := store.GetRecordsForTracker(a.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 3 || recs[0].Day != "2024-01-01" || recs[2].Day != "2024-01-03" {
		t.Errorf("records not in day order: %+v", recs)
	}
}

func TestMemoryStoreDeleteTrackerCascadesRecords(t *testing.T) {
	store := setupTestMemoryStore(t)
	tr := mustAddTracker(t, store, "Run", "Sport", models.Everyday)
	if _, err := store.ToggleRecord(tr.ID, "2024-01-01"); err != nil {
		t.Fatal(err)
	}

	if err := store.DeleteTracker(tr.ID); err != nil {
		t.Fatalf("DeleteTracker failed: %v", err)
	}
	if _, err := store.GetTracker(tr.ID); !apperrors.IsNotFound(err) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if n, _ := store.CountAllRecords(); n != 0 {
		t.Errorf("expected records to be removed, got %d", n)
	}
	if err := store.DeleteTracker(tr.ID); !apperrors.IsNotFound(err) {
		t.Errorf("expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestMemoryStoreUpdateTracker(t *testing.T) {
	store := setupTestMemoryStore(t)
	tr := mustAddTracker(t, store, "Run", "Sport", models.Everyday)

	tr.Name = "Run far"
	tr.Schedule = models.Weekend
	if err := store.UpdateTracker(tr, "Fitness"); err != nil {
		t.Fatalf("UpdateTracker failed: %v", err)
	}

	item, err := store.GetTracker(tr.ID)
	if err != nil {
		t.Fatal(err)
	}
	if item.Tracker.Name != "Run far" || item.Tracker.Schedule != models.Weekend || item.CategoryTitle != "Fitness" {
		t.Errorf("unexpected tracker after update: %+v", item)
	}

	if err := store.UpdateTracker(models.NewTracker("ghost", "", "", models.Schedule{}), "X"); !apperrors.IsNotFound(err) {
		t.Errorf("expected ErrNotFound updating unknown tracker, got %v", err)
	}
}

func TestMemoryStoreCategories(t *testing.T) {
	store := setupTestMemoryStore(t)

	first, err := store.EnsureCategory("Work")
	if err != nil {
		t.Fatal(err)
	}
	second, err := store.EnsureCategory("Work")
	if err != nil {
		t.Fatal(err)
	}
	if first.ID != second.ID {
		t.Error("EnsureCategory should be idempotent")
	}

	if _, err := store.EnsureCategory("Home"); err != nil {
		t.Fatal(err)
	}
	cats, err := store.GetAllCategories()
	if err != nil {
		t.Fatal(err)
	}
	if len(cats) != 2 || cats[0].Title != "Home" || cats[1].Title != "Work" {
		t.Errorf("categories not sorted by title: %+v", cats)
	}
}

func TestMemoryStoreRenameCategory(t *testing.T) {
	store := setupTestMemoryStore(t)
	tr := mustAddTracker(t, store, "Stretch", "Health", models.Everyday)
	if _, err := store.EnsureCategory("Taken"); err != nil {
		t.Fatal(err)
	}

	if err := store.RenameCategory("Health", "Taken"); !errors.Is(err, apperrors.ErrCategoryExists) {
		t.Errorf("expected ErrCategoryExists, got %v", err)
	}
	if err := store.RenameCategory("Missing", "Other"); !apperrors.IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	if err := store.RenameCategory("Health", "Wellness"); err != nil {
		t.Fatalf("RenameCategory failed: %v", err)
	}
	item, _ := store.GetTracker(tr.ID)
	if item.CategoryTitle != "Wellness" {
		t.Errorf("rename did not cascade, tracker category = %s", item.CategoryTitle)
	}
	if n, _ := store.CountTrackers("Wellness"); n != 1 {
		t.Errorf("CountTrackers(Wellness) = %d, want 1", n)
	}
}

func TestMemoryStoreDeleteCategoryOrphansTrackers(t *testing.T) {
	store := setupTestMemoryStore(t)
	tr := mustAddTracker(t, store, "Stretch", "Health", models.Everyday)

	if err := store.DeleteCategory("Health"); err != nil {
		t.Fatalf("DeleteCategory failed: %v", err)
	}
	item, err := store.GetTracker(tr.ID)
	if err != nil {
		t.Fatalf("tracker should survive category delete: %v", err)
	}
	if item.CategoryTitle != constants.UncategorizedTitle {
		t.Errorf("orphaned tracker resolved to %q", item.CategoryTitle)
	}
	if err := store.DeleteCategory("Health"); !apperrors.IsNotFound(err) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreSnapshotOrder(t *testing.T) {
	store := setupTestMemoryStore(t)
	mustAddTracker(t, store, "Zeta", "B", models.Everyday)
	mustAddTracker(t, store, "Alpha", "B", models.Everyday)
	mustAddTracker(t, store, "Mid", "A", models.Everyday)

	items, err := store.Snapshot()
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, it := range items {
		names = append(names, it.CategoryTitle+"/"+it.Tracker.Name)
	}
	want := []string{"A/Mid", "B/Alpha", "B/Zeta"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got %v, want %v", names, want)
		}
	}
}

func TestMemoryStoreAppliesTrackerDefaults(t *testing.T) {
	store := setupTestMemoryStore(t)
	tr := models.NewTracker("Plain", "", "", models.Schedule{})
	if err := store.AddTracker(tr, "X"); err != nil {
		t.Fatal(err)
	}
	item, _ := store.GetTracker(tr.ID)
	if item.Tracker.ColorHex != constants.DefaultColorHex || item.Tracker.Emoji != constants.DefaultEmoji {
		t.Errorf("defaults not applied: %+v", item.Tracker)
	}
}

func TestMemoryStoreFailedPersistLeavesStateUnchanged(t *testing.T) {
	store := setupTestMemoryStore(t)
	tr := mustAddTracker(t, store, "Read", "Habits", models.Everyday)

	store.persist = func(*memoryState) error { return errors.New("disk full") }
	_, err := store.ToggleRecord(tr.ID, "2024-01-01")
	if !errors.Is(err, apperrors.ErrPersistence) {
		t.Fatalf("expected ErrPersistence, got %v", err)
	}
	if has, _ := store.HasRecord(tr.ID, "2024-01-01"); has {
		t.Error("failed toggle must not leave a record behind")
	}
}
