package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/tracker/internal/cli"
	"github.com/julianstephens/tracker/internal/config"
	"github.com/julianstephens/tracker/internal/constants"
	apperrors "github.com/julianstephens/tracker/internal/errors"
	"github.com/julianstephens/tracker/internal/logger"
	"github.com/julianstephens/tracker/internal/tracker"
)

var CLI struct {
	Version   kong.VersionFlag
	Database  string `name:"config" help:"Database file (.db for SQLite, .json for JSON) or PostgreSQL connection string. PostgreSQL credentials must NOT be embedded; use the keyring, .pgpass or PGPASSWORD." type:"string"`
	ConfigDir string `help:"Directory holding tracker.toml and logs." type:"path" default:"~/.config/tracker"`
	Debug     bool   `help:"Log debug output to stderr."`

	Init     cli.InitCmd    `cmd:"" help:"Initialize tracker storage."`
	Today    cli.TodayCmd   `cmd:"" help:"Show the trackers due on a day." default:"1"`
	Add      cli.AddCmd     `cmd:"" help:"Add a habit or irregular event."`
	Edit     cli.EditCmd    `cmd:"" help:"Edit a tracker."`
	Delete   cli.DeleteCmd  `cmd:"" help:"Delete a tracker and its history."`
	Pin      cli.PinCmd     `cmd:"" help:"Pin or unpin a tracker."`
	Done     cli.DoneCmd    `cmd:"" help:"Toggle whether a tracker is done on a day."`
	List     cli.ListCmd    `cmd:"" help:"List all trackers."`
	History  cli.HistoryCmd `cmd:"" help:"Show the days a tracker was done."`
	Stats    cli.StatsCmd   `cmd:"" help:"Show totals."`
	Category struct {
		Add    cli.CategoryAddCmd    `cmd:"" help:"Add a category."`
		Rename cli.CategoryRenameCmd `cmd:"" help:"Rename a category."`
		Delete cli.CategoryDeleteCmd `cmd:"" help:"Delete a category."`
		List   cli.CategoryListCmd   `cmd:"" help:"List categories."`
	} `cmd:"" help:"Manage categories."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Back up the SQLite database."`
		List    cli.BackupListCmd    `cmd:"" help:"List backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the database from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Config struct {
		SetConnection   cli.ConfigSetConnectionCmd   `cmd:"" help:"Store a PostgreSQL connection string in the OS keyring."`
		ClearConnection cli.ConfigClearConnectionCmd `cmd:"" help:"Remove the stored connection string."`
		Show            cli.ConfigShowCmd            `cmd:"" help:"Show the resolved settings."`
	} `cmd:"" help:"Manage settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit and event tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.ConfigDir)
	if err != nil {
		apperrors.Fatal(err)
	}

	if err := logger.Init(logger.Config{
		Debug:     cfg.Debug || CLI.Debug,
		LogDir:    cfg.LogDir,
		ConfigDir: CLI.ConfigDir,
	}); err != nil {
		apperrors.Fatal(err)
	}

	loc, err := cfg.Location()
	if err != nil {
		apperrors.Fatal(err)
	}

	explicit := config.ExpandPath(CLI.Database)
	if explicit == "" {
		explicit = cfg.Database
	}
	store, target, err := cli.OpenStore(explicit, config.ExpandPath(constants.DefaultConfigPath))
	if err != nil {
		apperrors.Fatal(err)
	}

	if cli.NeedsLoad(ctx.Command()) {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
	}

	svc := tracker.New(store,
		tracker.WithLocation(loc),
		tracker.WithQueueSize(cfg.QueueSize),
	)

	appCtx := &cli.Context{
		Store:    store,
		Service:  svc,
		Location: loc,
		Target:   target,
		Out:      os.Stdout,
	}

	runErr := ctx.Run(appCtx)
	if err := svc.Close(); err != nil {
		logger.Warn("failed to stop service", "error", err)
	}
	if err := store.Close(); err != nil {
		logger.Warn("failed to close store", "error", err)
	}
	apperrors.Fatal(runErr)
	_ = logger.Close()
}
