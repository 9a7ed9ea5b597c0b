package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/tracker/internal/constants"
	apperrors "github.com/julianstephens/tracker/internal/errors"
	"github.com/julianstephens/tracker/internal/models"
	"github.com/julianstephens/tracker/internal/query"
)

type AddCmd struct {
	Name     string `arg:"" help:"Tracker name."`
	Category string `short:"c" help:"Category title." default:"Uncategorized"`
	Schedule string `short:"s" help:"Weekdays (mon,wed,fri), everyday, workdays, weekend or irregular." default:"irregular"`
	Color    string `help:"Color as #RRGGBB." default:"#34C759"`
	Emoji    string `short:"e" help:"Emoji shown next to the name." default:"🙂"`
}

func (c *AddCmd) Validate() error {
	if err := ValidateName(c.Name); err != nil {
		return err
	}
	if err := validateTitle(c.Category); err != nil {
		return err
	}
	return ValidateColor(c.Color)
}

func (c *AddCmd) Run(ctx *Context) error {
	schedule, err := models.ParseSchedule(c.Schedule)
	if err != nil {
		return err
	}

	t := models.NewTracker(strings.TrimSpace(c.Name), c.Color, c.Emoji, schedule)
	if err := ctx.wait(ctx.Service.Create(t, strings.TrimSpace(c.Category))); err != nil {
		return err
	}

	ctx.printf("Added tracker: %s (ID: %s)\n", t.Name, t.ID)
	return nil
}

// EditCmd replaces the given fields; empty flags keep the current value.
type EditCmd struct {
	Tracker  string `arg:"" help:"Tracker ID or name."`
	Name     string `short:"n" help:"New name."`
	Category string `short:"c" help:"New category title."`
	Schedule string `short:"s" help:"New schedule."`
	Color    string `help:"New color as #RRGGBB."`
	Emoji    string `short:"e" help:"New emoji."`
}

func (c *EditCmd) Validate() error {
	if c.Name != "" {
		if err := ValidateName(c.Name); err != nil {
			return err
		}
	}
	if c.Color != "" {
		return ValidateColor(c.Color)
	}
	return nil
}

func (c *EditCmd) Run(ctx *Context) error {
	item, err := ctx.findTracker(c.Tracker)
	if err != nil {
		return err
	}

	t := item.Tracker
	category := item.CategoryTitle
	if c.Name != "" {
		t.Name = strings.TrimSpace(c.Name)
	}
	if c.Category != "" {
		category = strings.TrimSpace(c.Category)
	}
	if c.Schedule != "" {
		if t.Schedule, err = models.ParseSchedule(c.Schedule); err != nil {
			return err
		}
	}
	if c.Color != "" {
		t.ColorHex = c.Color
	}
	if c.Emoji != "" {
		t.Emoji = c.Emoji
	}

	if err := ctx.wait(ctx.Service.Update(t, category)); err != nil {
		return err
	}
	ctx.printf("Updated tracker: %s\n", t.Name)
	return nil
}

type DeleteCmd struct {
	Tracker string `arg:"" help:"Tracker ID or name."`
}

func (c *DeleteCmd) Run(ctx *Context) error {
	item, err := ctx.findTracker(c.Tracker)
	if err != nil {
		return err
	}
	if err := ctx.wait(ctx.Service.Delete(item.Tracker.ID)); err != nil {
		return err
	}
	ctx.printf("Deleted tracker: %s\n", item.Tracker.Name)
	return nil
}

type PinCmd struct {
	Tracker string `arg:"" help:"Tracker ID or name."`
}

func (c *PinCmd) Run(ctx *Context) error {
	item, err := ctx.findTracker(c.Tracker)
	if err != nil {
		return err
	}
	if err := ctx.wait(ctx.Service.TogglePin(item.Tracker.ID)); err != nil {
		return err
	}

	if item.CategoryTitle == constants.PinnedTitle {
		ctx.printf("Unpinned %s (now in %s)\n", item.Tracker.Name, constants.UncategorizedTitle)
	} else {
		ctx.printf("Pinned %s\n", item.Tracker.Name)
	}
	return nil
}

// DoneCmd toggles the completion of a tracker for a day.
type DoneCmd struct {
	Tracker string `arg:"" help:"Tracker ID or name."`
	Date    string `short:"d" help:"Day as YYYY-MM-DD, today or yesterday." default:"today"`
}

func (c *DoneCmd) Run(ctx *Context) error {
	item, err := ctx.findTracker(c.Tracker)
	if err != nil {
		return err
	}
	date, err := ctx.parseDate(c.Date)
	if err != nil {
		return err
	}
	day := models.DayKey(date, ctx.Location)
	if today := models.DayKey(ctx.Service.Today(), ctx.Location); day > today {
		return &apperrors.ValidationError{Field: "date", Reason: fmt.Sprintf("%s is in the future", day)}
	}

	id := item.Tracker.ID
	if err := ctx.wait(ctx.Service.Toggle(id, date)); err != nil {
		return err
	}
	done, err := ctx.Service.IsDone(id, date)
	if err != nil {
		return err
	}

	if done {
		ctx.printf("%s %s done on %s\n", checkMark, item.Tracker.Name, day)
	} else {
		ctx.printf("%s %s not done on %s\n", emptyMark, item.Tracker.Name, day)
	}
	return nil
}

// ListCmd prints every tracker, whatever its schedule.
type ListCmd struct {
	Search string `short:"q" help:"Only trackers whose name contains this text."`
}

func (c *ListCmd) Run(ctx *Context) error {
	items, err := ctx.Service.Trackers()
	if err != nil {
		return err
	}

	shown := 0
	current := ""
	for _, item := range items {
		if !query.MatchesText(item.Tracker.Name, c.Search) {
			continue
		}
		if shown == 0 || item.CategoryTitle != current {
			current = item.CategoryTitle
			ctx.printf("%s\n", headerStyle.Render(current))
		}
		t := item.Tracker
		ctx.printf("  %s %s  %s  %s\n", t.Emoji, nameStyle(t.ColorHex).Render(t.Name),
			mutedStyle.Render(t.Schedule.String()), mutedStyle.Render(t.ID.String()))
		shown++
	}

	if shown == 0 {
		ctx.printf("No trackers found\n")
	}
	return nil
}
