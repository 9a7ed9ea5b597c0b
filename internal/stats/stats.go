// Package stats computes aggregate numbers over the stored trackers and records.
package stats

import (
	"github.com/julianstephens/tracker/internal/models"
	"github.com/julianstephens/tracker/internal/storage"
)

// Source is the part of a store the aggregator reads from.
type Source interface {
	CountAllRecords() (int, error)
	Snapshot() ([]models.SnapshotItem, error)
	GetAllCategories() ([]models.Category, error)
}

// Summary is the statistics screen: totals recomputed on every call.
type Summary struct {
	CompletedTotal int `json:"completed_total"`
	TrackerCount   int `json:"tracker_count"`
	CategoryCount  int `json:"category_count"`
}

type Aggregator struct {
	src Source
}

func NewAggregator(src Source) *Aggregator {
	return &Aggregator{src: src}
}

// CompletedTotal counts every completion record ever stored, across all
// trackers and days.
func (a *Aggregator) CompletedTotal() (int, error) {
	return a.src.CountAllRecords()
}

func (a *Aggregator) Summary() (Summary, error) {
	total, err := a.src.CountAllRecords()
	if err != nil {
		return Summary{}, err
	}
	items, err := a.src.Snapshot()
	if err != nil {
		return Summary{}, err
	}
	cats, err := a.src.GetAllCategories()
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		CompletedTotal: total,
		TrackerCount:   len(items),
		CategoryCount:  len(cats),
	}, nil
}

var _ Source = (storage.Provider)(nil)
