package cli

import (
	"errors"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/julianstephens/tracker/internal/backup"
	"github.com/julianstephens/tracker/internal/storage/sqlite"
)

var errBackupUnsupported = errors.New("backups are only supported for SQLite databases")

func (c *Context) backupManager() (*backup.Manager, error) {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return nil, errBackupUnsupported
	}
	return backup.NewManager(c.Store.GetConfigPath()), nil
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *Context) error {
	mgr, err := ctx.backupManager()
	if err != nil {
		return err
	}
	path, err := mgr.Create()
	if err != nil {
		return err
	}
	ctx.printf("Backup created: %s\n", path)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *Context) error {
	mgr, err := ctx.backupManager()
	if err != nil {
		return err
	}
	backups, err := mgr.List()
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		ctx.printf("No backups in %s\n", mgr.Dir())
		return nil
	}
	for _, b := range backups {
		ctx.printf("  %s  %s  %s\n", b.Timestamp.Format("2006-01-02 15:04:05"),
			filepath.Base(b.Path), mutedStyle.Render(humanize.Bytes(uint64(b.Size))))
	}
	return nil
}

// BackupRestoreCmd replaces the database with a backup. The current database
// is backed up first.
type BackupRestoreCmd struct {
	File string `arg:"" optional:"" help:"Backup file name or path. Defaults to the newest backup."`
}

func (c *BackupRestoreCmd) Run(ctx *Context) error {
	mgr, err := ctx.backupManager()
	if err != nil {
		return err
	}

	path := c.File
	switch {
	case path == "":
		backups, err := mgr.List()
		if err != nil {
			return err
		}
		if len(backups) == 0 {
			return errors.New("no backups found")
		}
		path = backups[0].Path
	case filepath.Base(path) == path:
		path = filepath.Join(mgr.Dir(), path)
	}

	saved, err := mgr.Restore(path)
	if err != nil {
		return err
	}
	if saved != "" {
		ctx.printf("Saved current database as %s\n", filepath.Base(saved))
	}
	ctx.printf("Restored database from %s\n", filepath.Base(path))
	return nil
}
