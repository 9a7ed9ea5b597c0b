package storage

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/julianstephens/tracker/internal/errors"
	"github.com/julianstephens/tracker/internal/models"
)

var errNotLoaded = errors.New("storage not loaded")

func errDuplicateID(id uuid.UUID) error {
	return fmt.Errorf("tracker %s already exists", id)
}

type trackerEntry struct {
	Tracker       models.Tracker `json:"tracker"`
	CategoryTitle string         `json:"category_title"`
	CreatedAt     time.Time      `json:"created_at"`
}

// memoryState is the whole data set. It is also the on-disk layout of JSONStore.
type memoryState struct {
	Version    int                                              `json:"version"`
	Categories map[string]models.Category                       `json:"categories"`
	Trackers   map[uuid.UUID]trackerEntry                       `json:"trackers"`
	Records    map[uuid.UUID]map[string]models.CompletionRecord `json:"records"`
}

func newMemoryState() *memoryState {
	return &memoryState{
		Version:    1,
		Categories: make(map[string]models.Category),
		Trackers:   make(map[uuid.UUID]trackerEntry),
		Records:    make(map[uuid.UUID]map[string]models.CompletionRecord),
	}
}

func (st *memoryState) normalize() {
	if st.Categories == nil {
		st.Categories = make(map[string]models.Category)
	}
	if st.Trackers == nil {
		st.Trackers = make(map[uuid.UUID]trackerEntry)
	}
	if st.Records == nil {
		st.Records = make(map[uuid.UUID]map[string]models.CompletionRecord)
	}
}

func (st *memoryState) clone() *memoryState {
	c := &memoryState{
		Version:    st.Version,
		Categories: make(map[string]models.Category, len(st.Categories)),
		Trackers:   make(map[uuid.UUID]trackerEntry, len(st.Trackers)),
		Records:    make(map[uuid.UUID]map[string]models.CompletionRecord, len(st.Records)),
	}
	for k, v := range st.Categories {
		c.Categories[k] = v
	}
	for k, v := range st.Trackers {
		c.Trackers[k] = v
	}
	for id, days := range st.Records {
		m := make(map[string]models.CompletionRecord, len(days))
		for d, r := range days {
			m[d] = r
		}
		c.Records[id] = m
	}
	return c
}

func (st *memoryState) ensureCategory(title string) models.Category {
	if c, ok := st.Categories[title]; ok {
		return c
	}
	c := models.Category{ID: uuid.New(), Title: title}
	st.Categories[title] = c
	return c
}

func (st *memoryState) item(e trackerEntry) models.SnapshotItem {
	_, ok := st.Categories[e.CategoryTitle]
	return models.SnapshotItem{
		Tracker:       ApplyTrackerDefaults(e.Tracker),
		CategoryTitle: ResolveCategory(e.CategoryTitle, ok),
	}
}

// MemoryStore keeps all data in process memory. It backs tests and the
// JSON file store.
type MemoryStore struct {
	mu    sync.RWMutex
	state *memoryState
	now   func() time.Time

	// persist is called with the candidate state before it replaces the
	// current one. A non-nil error aborts the mutation.
	persist func(*memoryState) error
}

var _ Provider = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{state: newMemoryState(), now: time.Now}
}

func (s *MemoryStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		s.state = newMemoryState()
	}
	return nil
}

func (s *MemoryStore) Load() error { return s.Init() }

func (s *MemoryStore) Close() error { return nil }

func (s *MemoryStore) GetConfigPath() string { return ":memory:" }

func (s *MemoryStore) read(fn func(st *memoryState) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil {
		return apperrors.Persistence("read", "store", errNotLoaded)
	}
	return fn(s.state)
}

// mutate applies fn to a copy of the state and swaps it in only if fn and
// persist both succeed, so a failed operation leaves no partial change.
// The copy includes every completion record, so each mutation costs
// O(total records) in addition to the persist call.
func (s *MemoryStore) mutate(op, resource string, fn func(st *memoryState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == nil {
		return apperrors.Persistence(op, resource, errNotLoaded)
	}
	next := s.state.clone()
	if err := fn(next); err != nil {
		return err
	}
	if s.persist != nil {
		if err := s.persist(next); err != nil {
			return apperrors.Persistence(op, resource, err)
		}
	}
	s.state = next
	return nil
}

// Categories

func (s *MemoryStore) EnsureCategory(title string) (models.Category, error) {
	var c models.Category
	var found bool
	if err := s.read(func(st *memoryState) error {
		c, found = st.Categories[title]
		return nil
	}); err != nil {
		return models.Category{}, err
	}
	if found {
		return c, nil
	}

	err := s.mutate("ensure", "category", func(st *memoryState) error {
		c = st.ensureCategory(title)
		return nil
	})
	return c, err
}

func (s *MemoryStore) GetAllCategories() ([]models.Category, error) {
	var out []models.Category
	err := s.read(func(st *memoryState) error {
		out = make([]models.Category, 0, len(st.Categories))
		for _, c := range st.Categories {
			out = append(out, c)
		}
		return nil
	})
	sortCategories(out)
	return out, err
}

func (s *MemoryStore) RenameCategory(oldTitle, newTitle string) error {
	return s.mutate("rename", "category", func(st *memoryState) error {
		c, ok := st.Categories[oldTitle]
		if !ok {
			return apperrors.NotFound("rename", "category", oldTitle)
		}
		if oldTitle == newTitle {
			return nil
		}
		if _, taken := st.Categories[newTitle]; taken {
			return apperrors.Exists("rename", newTitle)
		}
		delete(st.Categories, oldTitle)
		c.Title = newTitle
		st.Categories[newTitle] = c
		for id, e := range st.Trackers {
			if e.CategoryTitle == oldTitle {
				e.CategoryTitle = newTitle
				st.Trackers[id] = e
			}
		}
		return nil
	})
}

func (s *MemoryStore) DeleteCategory(title string) error {
	return s.mutate("delete", "category", func(st *memoryState) error {
		if _, ok := st.Categories[title]; !ok {
			return apperrors.NotFound("delete", "category", title)
		}
		delete(st.Categories, title)
		return nil
	})
}

func (s *MemoryStore) CountTrackers(title string) (int, error) {
	n := 0
	err := s.read(func(st *memoryState) error {
		for _, e := range st.Trackers {
			if st.item(e).CategoryTitle == title {
				n++
			}
		}
		return nil
	})
	return n, err
}

// Records

func (s *MemoryStore) ToggleRecord(trackerID uuid.UUID, day string) (bool, error) {
	var done bool
	err := s.mutate("toggle", "record", func(st *memoryState) error {
		if _, ok := st.Trackers[trackerID]; !ok {
			return apperrors.NotFound("toggle", "tracker", trackerID.String())
		}
		days := st.Records[trackerID]
		if _, ok := days[day]; ok {
			delete(days, day)
			if len(days) == 0 {
				delete(st.Records, trackerID)
			}
			done = false
			return nil
		}
		if days == nil {
			days = make(map[string]models.CompletionRecord)
			st.Records[trackerID] = days
		}
		days[day] = models.CompletionRecord{
			ID:        uuid.New(),
			TrackerID: trackerID,
			Day:       day,
			CreatedAt: s.now(),
		}
		done = true
		return nil
	})
	return done, err
}

func (s *MemoryStore) HasRecord(trackerID uuid.UUID, day string) (bool, error) {
	var ok bool
	err := s.read(func(st *memoryState) error {
		_, ok = st.Records[trackerID][day]
		return nil
	})
	return ok, err
}

func (s *MemoryStore) CountRecords(trackerID uuid.UUID) (int, error) {
	var n int
	err := s.read(func(st *memoryState) error {
		n = len(st.Records[trackerID])
		return nil
	})
	return n, err
}

func (s *MemoryStore) CountAllRecords() (int, error) {
	var n int
	err := s.read(func(st *memoryState) error {
		for _, days := range st.Records {
			n += len(days)
		}
		return nil
	})
	return n, err
}

func (s *MemoryStore) GetRecordsForTracker(trackerID uuid.UUID) ([]models.CompletionRecord, error) {
	var out []models.CompletionRecord
	err := s.read(func(st *memoryState) error {
		for _, r := range st.Records[trackerID] {
			out = append(out, r)
		}
		return nil
	})
	sortRecords(out)
	return out, err
}

// Trackers

func (s *MemoryStore) AddTracker(t models.Tracker, categoryTitle string) error {
	return s.mutate("add", "tracker", func(st *memoryState) error {
		if _, exists := st.Trackers[t.ID]; exists {
			return apperrors.Persistence("add", "tracker", errDuplicateID(t.ID))
		}
		st.ensureCategory(categoryTitle)
		st.Trackers[t.ID] = trackerEntry{Tracker: t, CategoryTitle: categoryTitle, CreatedAt: s.now()}
		return nil
	})
}

func (s *MemoryStore) GetTracker(id uuid.UUID) (models.SnapshotItem, error) {
	var item models.SnapshotItem
	err := s.read(func(st *memoryState) error {
		e, ok := st.Trackers[id]
		if !ok {
			return apperrors.NotFound("get", "tracker", id.String())
		}
		item = st.item(e)
		return nil
	})
	return item, err
}

func (s *MemoryStore) UpdateTracker(t models.Tracker, categoryTitle string) error {
	return s.mutate("update", "tracker", func(st *memoryState) error {
		e, ok := st.Trackers[t.ID]
		if !ok {
			return apperrors.NotFound("update", "tracker", t.ID.String())
		}
		st.ensureCategory(categoryTitle)
		e.Tracker = t
		e.CategoryTitle = categoryTitle
		st.Trackers[t.ID] = e
		return nil
	})
}

func (s *MemoryStore) DeleteTracker(id uuid.UUID) error {
	return s.mutate("delete", "tracker", func(st *memoryState) error {
		if _, ok := st.Trackers[id]; !ok {
			return apperrors.NotFound("delete", "tracker", id.String())
		}
		delete(st.Trackers, id)
		delete(st.Records, id)
		return nil
	})
}

func (s *MemoryStore) SetTrackerCategory(id uuid.UUID, title string) error {
	return s.mutate("set category", "tracker", func(st *memoryState) error {
		e, ok := st.Trackers[id]
		if !ok {
			return apperrors.NotFound("set category", "tracker", id.String())
		}
		st.ensureCategory(title)
		e.CategoryTitle = title
		st.Trackers[id] = e
		return nil
	})
}

func (s *MemoryStore) Snapshot() ([]models.SnapshotItem, error) {
	var items []models.SnapshotItem
	err := s.read(func(st *memoryState) error {
		items = make([]models.SnapshotItem, 0, len(st.Trackers))
		for _, e := range st.Trackers {
			items = append(items, st.item(e))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	SortSnapshot(items)
	return items, nil
}
