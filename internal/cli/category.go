package cli

import (
	"strconv"
	"strings"
)

type CategoryAddCmd struct {
	Title string `arg:"" help:"Category title."`
}

func (c *CategoryAddCmd) Validate() error {
	return validateTitle(c.Title)
}

func (c *CategoryAddCmd) Run(ctx *Context) error {
	title := strings.TrimSpace(c.Title)
	if err := ctx.wait(ctx.Service.CreateCategory(title)); err != nil {
		return err
	}
	ctx.printf("Added category: %s\n", title)
	return nil
}

// CategoryRenameCmd retitles a category. Its trackers move with it.
type CategoryRenameCmd struct {
	From string `arg:"" help:"Current title."`
	To   string `arg:"" help:"New title."`
}

func (c *CategoryRenameCmd) Validate() error {
	return validateTitle(c.To)
}

func (c *CategoryRenameCmd) Run(ctx *Context) error {
	to := strings.TrimSpace(c.To)
	if err := ctx.wait(ctx.Service.RenameCategory(c.From, to)); err != nil {
		return err
	}
	ctx.printf("Renamed category %s to %s\n", c.From, to)
	return nil
}

type CategoryDeleteCmd struct {
	Title string `arg:"" help:"Category title."`
}

func (c *CategoryDeleteCmd) Run(ctx *Context) error {
	if err := ctx.wait(ctx.Service.DeleteCategory(c.Title)); err != nil {
		return err
	}
	ctx.printf("Deleted category: %s (its trackers are now uncategorized)\n", c.Title)
	return nil
}

type CategoryListCmd struct{}

func (c *CategoryListCmd) Run(ctx *Context) error {
	cats, err := ctx.Service.Categories()
	if err != nil {
		return err
	}
	if len(cats) == 0 {
		ctx.printf("No categories found\n")
		return nil
	}
	for _, cat := range cats {
		ctx.printf("  %s %s\n", headerStyle.Render(cat.Title), mutedStyle.Render(trackerCount(cat.TrackerCount)))
	}
	return nil
}

func trackerCount(n int) string {
	if n == 1 {
		return "(1 tracker)"
	}
	return "(" + strconv.Itoa(n) + " trackers)"
}
