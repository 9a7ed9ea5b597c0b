package cli

import (
	"fmt"

	"github.com/julianstephens/tracker/internal/models"
	"github.com/julianstephens/tracker/internal/query"
)

// TodayCmd prints the trackers due on a day, grouped by category, with their
// completion state and lifetime count.
type TodayCmd struct {
	Date   string `short:"d" help:"Day as YYYY-MM-DD, today or yesterday." default:"today"`
	Search string `short:"q" help:"Only trackers whose name contains this text."`
	Filter string `short:"f" help:"Completion filter." enum:"all,today,completed,uncompleted" default:"all"`
}

func (c *TodayCmd) Run(ctx *Context) error {
	date, err := ctx.parseDate(c.Date)
	if err != nil {
		return err
	}
	filter, err := models.ParseFilterOption(c.Filter)
	if err != nil {
		return err
	}
	if filter == models.FilterToday {
		date = ctx.Service.Today()
	}

	groups, err := ctx.Service.FilteredSnapshot(date, c.Search, filter)
	if err != nil {
		return err
	}

	day := models.DayKey(date, ctx.Location)
	if query.Count(groups) == 0 {
		ctx.printf("Nothing to track on %s\n", day)
		return nil
	}

	ctx.printf("%s\n", headerStyle.Render(fmt.Sprintf("%s (%s)", day, models.WeekdayFromTime(date))))
	for _, g := range groups {
		ctx.printf("\n%s\n", headerStyle.Render(g.Title))
		for _, t := range g.Trackers {
			done, err := ctx.Service.IsDone(t.ID, date)
			if err != nil {
				return err
			}
			total, err := ctx.Service.TotalDays(t.ID)
			if err != nil {
				return err
			}

			mark := mutedStyle.Render(emptyMark)
			if done {
				mark = doneStyle.Render(checkMark)
			}
			ctx.printf("  %s %s %s  %s\n", mark, t.Emoji, nameStyle(t.ColorHex).Render(t.Name),
				mutedStyle.Render(dayCount(total)))
		}
	}
	return nil
}

func dayCount(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
