package tracker

import (
	"github.com/google/uuid"
)

// EventKind identifies the mutation that produced an Event.
type EventKind int

const (
	EventTrackerCreated EventKind = iota + 1
	EventTrackerUpdated
	EventTrackerDeleted
	EventRecordToggled
	EventTrackerPinned
	EventCategoryCreated
	EventCategoryRenamed
	EventCategoryDeleted
)

var eventKindNames = map[EventKind]string{
	EventTrackerCreated:  "tracker_created",
	EventTrackerUpdated:  "tracker_updated",
	EventTrackerDeleted:  "tracker_deleted",
	EventRecordToggled:   "record_toggled",
	EventTrackerPinned:   "tracker_pinned",
	EventCategoryCreated: "category_created",
	EventCategoryRenamed: "category_renamed",
	EventCategoryDeleted: "category_deleted",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is published after a mutation commits. Subscribers should re-run
// their reads rather than patch local state from the event.
type Event struct {
	Kind      EventKind
	TrackerID uuid.UUID
	// Category is the category title affected, if any. For renames it is the new title.
	Category string
	// Day and Done are set for EventRecordToggled.
	Day  string
	Done bool
}

// Subscribe returns a channel of committed-change events and a function that
// cancels the subscription. Delivery never blocks the writer: when the
// channel buffer is full the event is dropped, since the subscriber already
// has an undelivered notification that will make it re-query.
func (s *Service) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, s.subscriberSize)

	s.subMu.Lock()
	if s.subsClosed {
		s.subMu.Unlock()
		close(ch)
		return ch, func() {}
	}
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = ch
	s.subMu.Unlock()

	return ch, func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
}

func (s *Service) publish(ev Event) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

func (s *Service) closeSubscribers() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	for id, ch := range s.subs {
		close(ch)
		delete(s.subs, id)
	}
	s.subsClosed = true
}
