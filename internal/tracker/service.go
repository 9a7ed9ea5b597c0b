// Package tracker is the application core: reads run on the caller's
// goroutine, mutations are serialised through a single writer goroutine and
// announced to subscribers once committed.
package tracker

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/tracker/internal/constants"
	apperrors "github.com/julianstephens/tracker/internal/errors"
	"github.com/julianstephens/tracker/internal/logger"
	"github.com/julianstephens/tracker/internal/models"
	"github.com/julianstephens/tracker/internal/query"
	"github.com/julianstephens/tracker/internal/stats"
	"github.com/julianstephens/tracker/internal/storage"
)

type mutation struct {
	op      string
	apply   func() (Event, error)
	pending *Pending
}

type Service struct {
	store storage.Provider
	stats *stats.Aggregator

	loc            *time.Location
	clock          func() time.Time
	queueSize      int
	subscriberSize int

	queue chan mutation
	done  chan struct{}

	// closeMu guards closed and the send side of queue.
	closeMu sync.RWMutex
	closed  bool

	subMu      sync.Mutex
	subs       map[int]chan Event
	nextSubID  int
	subsClosed bool
}

// New starts a service over store. The caller keeps ownership of the store
// and closes it after Close returns.
func New(store storage.Provider, opts ...Option) *Service {
	s := &Service{
		store:          store,
		stats:          stats.NewAggregator(store),
		loc:            time.Local,
		clock:          time.Now,
		queueSize:      constants.DefaultQueueSize,
		subscriberSize: constants.DefaultSubscriberSize,
		done:           make(chan struct{}),
		subs:           make(map[int]chan Event),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.queue = make(chan mutation, s.queueSize)

	go s.run()
	return s
}

// Location returns the time zone days are computed in.
func (s *Service) Location() *time.Location {
	return s.loc
}

// Today returns the current time in the service's location.
func (s *Service) Today() time.Time {
	return s.clock().In(s.loc)
}

func (s *Service) dayKey(date time.Time) string {
	return models.DayKey(date, s.loc)
}

func (s *Service) run() {
	defer close(s.done)
	for m := range s.queue {
		ev, err := m.apply()
		if err != nil {
			logger.Warn("mutation failed", "op", m.op, "error", err)
			m.pending.resolve(err)
			continue
		}
		logger.Debug("mutation committed", "op", m.op, "kind", ev.Kind.String(), "tracker", ev.TrackerID)
		m.pending.resolve(nil)
		s.publish(ev)
	}
}

// submit queues fn for the writer. If the queue is full it blocks until the
// writer makes room.
func (s *Service) submit(op string, fn func() (Event, error)) *Pending {
	s.closeMu.RLock()
	defer s.closeMu.RUnlock()
	if s.closed {
		return resolved(&apperrors.OpError{Op: op, Resource: "service", Err: apperrors.ErrClosed})
	}
	p := newPending()
	s.queue <- mutation{op: op, apply: fn, pending: p}
	return p
}

// Close stops accepting mutations, waits for queued ones to finish and then
// closes every subscriber channel. It is safe to call more than once.
func (s *Service) Close() error {
	s.closeMu.Lock()
	if !s.closed {
		s.closed = true
		close(s.queue)
	}
	s.closeMu.Unlock()

	<-s.done
	s.closeSubscribers()
	return nil
}

// Mutations

// categoryOrDefault maps a blank title to Uncategorized.
func categoryOrDefault(title string) string {
	if title = strings.TrimSpace(title); title == "" {
		return constants.UncategorizedTitle
	}
	return title
}

// Create adds t to the category titled categoryTitle, creating the category
// if needed. A blank title means Uncategorized.
func (s *Service) Create(t models.Tracker, categoryTitle string) *Pending {
	categoryTitle = categoryOrDefault(categoryTitle)
	return s.submit("create", func() (Event, error) {
		if err := s.store.AddTracker(t, categoryTitle); err != nil {
			return Event{}, err
		}
		return Event{Kind: EventTrackerCreated, TrackerID: t.ID, Category: categoryTitle}, nil
	})
}

// Update replaces every field of the tracker with id t.ID and moves it to categoryTitle.
func (s *Service) Update(t models.Tracker, categoryTitle string) *Pending {
	categoryTitle = categoryOrDefault(categoryTitle)
	return s.submit("update", func() (Event, error) {
		if err := s.store.UpdateTracker(t, categoryTitle); err != nil {
			return Event{}, err
		}
		return Event{Kind: EventTrackerUpdated, TrackerID: t.ID, Category: categoryTitle}, nil
	})
}

// Delete removes the tracker and all of its completion records.
func (s *Service) Delete(id uuid.UUID) *Pending {
	return s.submit("delete", func() (Event, error) {
		if err := s.store.DeleteTracker(id); err != nil {
			return Event{}, err
		}
		return Event{Kind: EventTrackerDeleted, TrackerID: id}, nil
	})
}

// Toggle flips whether the tracker is done on date's calendar day.
func (s *Service) Toggle(id uuid.UUID, date time.Time) *Pending {
	day := s.dayKey(date)
	return s.submit("toggle", func() (Event, error) {
		done, err := s.store.ToggleRecord(id, day)
		if err != nil {
			return Event{}, err
		}
		return Event{Kind: EventRecordToggled, TrackerID: id, Day: day, Done: done}, nil
	})
}

// TogglePin moves a pinned tracker to Uncategorized and any other tracker to
// Pinned. The category a tracker had before pinning is not remembered.
func (s *Service) TogglePin(id uuid.UUID) *Pending {
	return s.submit("toggle pin", func() (Event, error) {
		item, err := s.store.GetTracker(id)
		if err != nil {
			return Event{}, err
		}
		target := constants.PinnedTitle
		if item.CategoryTitle == constants.PinnedTitle {
			target = constants.UncategorizedTitle
		}
		if err := s.store.SetTrackerCategory(id, target); err != nil {
			return Event{}, err
		}
		return Event{Kind: EventTrackerPinned, TrackerID: id, Category: target}, nil
	})
}

func (s *Service) CreateCategory(title string) *Pending {
	title = categoryOrDefault(title)
	return s.submit("create category", func() (Event, error) {
		if _, err := s.store.EnsureCategory(title); err != nil {
			return Event{}, err
		}
		return Event{Kind: EventCategoryCreated, Category: title}, nil
	})
}

// RenameCategory retitles a category; its trackers follow.
func (s *Service) RenameCategory(oldTitle, newTitle string) *Pending {
	return s.submit("rename category", func() (Event, error) {
		if err := s.store.RenameCategory(oldTitle, newTitle); err != nil {
			return Event{}, err
		}
		return Event{Kind: EventCategoryRenamed, Category: newTitle}, nil
	})
}

// DeleteCategory removes a category. Its trackers remain and are shown as Uncategorized.
func (s *Service) DeleteCategory(title string) *Pending {
	return s.submit("delete category", func() (Event, error) {
		if err := s.store.DeleteCategory(title); err != nil {
			return Event{}, err
		}
		return Event{Kind: EventCategoryDeleted, Category: title}, nil
	})
}

// Reads

// Snapshot returns the trackers due on date whose names contain text, grouped by category.
func (s *Service) Snapshot(date time.Time, text string) ([]models.Group, error) {
	items, err := s.store.Snapshot()
	if err != nil {
		return nil, err
	}
	return query.Snapshot(items, date.In(s.loc), text), nil
}

// FilteredSnapshot is Snapshot narrowed by completion state on date. With
// FilterToday the date argument is replaced by the current day.
func (s *Service) FilteredSnapshot(date time.Time, text string, filter models.FilterOption) ([]models.Group, error) {
	if filter == models.FilterToday {
		date = s.Today()
	}
	groups, err := s.Snapshot(date, text)
	if err != nil || filter.IsReset() {
		return groups, err
	}

	day := s.dayKey(date)
	done := make(map[uuid.UUID]bool)
	for _, g := range groups {
		for _, t := range g.Trackers {
			ok, err := s.store.HasRecord(t.ID, day)
			if err != nil {
				return nil, err
			}
			done[t.ID] = ok
		}
	}
	return query.ApplyFilter(groups, func(id uuid.UUID) bool { return done[id] }, filter), nil
}

// Tracker returns a single tracker with its resolved category.
func (s *Service) Tracker(id uuid.UUID) (models.SnapshotItem, error) {
	return s.store.GetTracker(id)
}

// Trackers returns every tracker regardless of schedule, ordered by
// category title then name.
func (s *Service) Trackers() ([]models.SnapshotItem, error) {
	return s.store.Snapshot()
}

// IsDone reports whether the tracker has a record on date's calendar day.
func (s *Service) IsDone(id uuid.UUID, date time.Time) (bool, error) {
	if _, err := s.store.GetTracker(id); err != nil {
		return false, err
	}
	return s.store.HasRecord(id, s.dayKey(date))
}

// TotalDays is the lifetime number of days the tracker was marked done.
func (s *Service) TotalDays(id uuid.UUID) (int, error) {
	if _, err := s.store.GetTracker(id); err != nil {
		return 0, err
	}
	return s.store.CountRecords(id)
}

// History returns every completion record of the tracker, oldest day first.
func (s *Service) History(id uuid.UUID) ([]models.CompletionRecord, error) {
	if _, err := s.store.GetTracker(id); err != nil {
		return nil, err
	}
	return s.store.GetRecordsForTracker(id)
}

func (s *Service) CompletedTotal() (int, error) {
	return s.stats.CompletedTotal()
}

func (s *Service) Stats() (stats.Summary, error) {
	return s.stats.Summary()
}

// Categories lists every category with its tracker count, ordered by title.
// Uncategorized is included whenever a tracker resolves to it, even if no
// category row carries that title.
func (s *Service) Categories() ([]models.CategorySummary, error) {
	cats, err := s.store.GetAllCategories()
	if err != nil {
		return nil, err
	}

	out := make([]models.CategorySummary, 0, len(cats)+1)
	hasUncategorized := false
	for _, c := range cats {
		n, err := s.store.CountTrackers(c.Title)
		if err != nil {
			return nil, err
		}
		if c.Title == constants.UncategorizedTitle {
			hasUncategorized = true
		}
		out = append(out, models.CategorySummary{Title: c.Title, TrackerCount: n})
	}

	if !hasUncategorized {
		n, err := s.store.CountTrackers(constants.UncategorizedTitle)
		if err != nil {
			return nil, err
		}
		if n > 0 {
			out = insertSorted(out, models.CategorySummary{Title: constants.UncategorizedTitle, TrackerCount: n})
		}
	}
	return out, nil
}

func insertSorted(list []models.CategorySummary, c models.CategorySummary) []models.CategorySummary {
	i := 0
	for i < len(list) && list[i].Title < c.Title {
		i++
	}
	list = append(list, models.CategorySummary{})
	copy(list[i+1:], list[i:])
	list[i] = c
	return list
}
