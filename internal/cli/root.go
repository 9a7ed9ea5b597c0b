package cli

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/julianstephens/tracker/internal/constants"
	apperrors "github.com/julianstephens/tracker/internal/errors"
	"github.com/julianstephens/tracker/internal/models"
	"github.com/julianstephens/tracker/internal/storage"
	"github.com/julianstephens/tracker/internal/tracker"
)

type Context struct {
	Store    storage.Provider
	Service  *tracker.Service
	Location *time.Location
	// Target is the resolved database path or connection string.
	Target string
	Out    io.Writer
}

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// ValidateName checks a tracker name before it reaches the core.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &apperrors.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if n := utf8.RuneCountInString(name); n > constants.MaxTrackerNameLen {
		return &apperrors.ValidationError{
			Field:  "name",
			Reason: fmt.Sprintf("%d characters, at most %d allowed", n, constants.MaxTrackerNameLen),
		}
	}
	return nil
}

// ValidateColor accepts #RRGGBB.
func ValidateColor(hex string) error {
	if !colorPattern.MatchString(hex) {
		return &apperrors.ValidationError{Field: "color", Reason: fmt.Sprintf("%q is not a #RRGGBB value", hex)}
	}
	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &apperrors.ValidationError{Field: "category", Reason: "must not be empty"}
	}
	return nil
}

func (c *Context) wait(p *tracker.Pending) error {
	return p.Wait(context.Background())
}

// parseDate accepts "", "today", "yesterday" or YYYY-MM-DD in the context's location.
func (c *Context) parseDate(s string) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return c.Service.Today(), nil
	case "yesterday":
		return c.Service.Today().AddDate(0, 0, -1), nil
	}
	d, err := models.ParseDay(strings.TrimSpace(s), c.Location)
	if err != nil {
		return time.Time{}, &apperrors.ValidationError{Field: "date", Reason: fmt.Sprintf("%q is not YYYY-MM-DD", s)}
	}
	return d, nil
}

// findTracker resolves a tracker by ID or by case-insensitive name.
func (c *Context) findTracker(ref string) (models.SnapshotItem, error) {
	ref = strings.TrimSpace(ref)
	if id, err := uuid.Parse(ref); err == nil {
		return c.Service.Tracker(id)
	}

	items, err := c.Service.Trackers()
	if err != nil {
		return models.SnapshotItem{}, err
	}
	var matches []models.SnapshotItem
	for _, item := range items {
		if strings.EqualFold(item.Tracker.Name, ref) {
			matches = append(matches, item)
		}
	}
	switch len(matches) {
	case 0:
		return models.SnapshotItem{}, apperrors.NotFound("find", "tracker", ref)
	case 1:
		return matches[0], nil
	}
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m.Tracker.ID.String()
	}
	return models.SnapshotItem{}, fmt.Errorf("%d trackers are named %q, use an ID: %s", len(matches), ref, strings.Join(ids, ", "))
}

func (c *Context) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.Out, format, args...)
}
