package cli

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	summary, err := ctx.Service.Stats()
	if err != nil {
		return err
	}
	ctx.printf("%s\n", headerStyle.Render("Statistics"))
	ctx.printf("  Trackers completed: %d\n", summary.CompletedTotal)
	ctx.printf("  Trackers:           %d\n", summary.TrackerCount)
	ctx.printf("  Categories:         %d\n", summary.CategoryCount)
	return nil
}

// HistoryCmd lists the days a tracker was marked done.
type HistoryCmd struct {
	Tracker string `arg:"" help:"Tracker ID or name."`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	item, err := ctx.findTracker(c.Tracker)
	if err != nil {
		return err
	}
	records, err := ctx.Service.History(item.Tracker.ID)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		ctx.printf("%s has never been marked done\n", item.Tracker.Name)
		return nil
	}
	ctx.printf("%s: %s\n", item.Tracker.Name, dayCount(len(records)))
	for _, r := range records {
		ctx.printf("  %s\n", r.Day)
	}
	return nil
}
