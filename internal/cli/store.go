package cli

import (
	"errors"
	"strings"

	"github.com/julianstephens/tracker/internal/keyring"
	"github.com/julianstephens/tracker/internal/logger"
	"github.com/julianstephens/tracker/internal/storage"
	"github.com/julianstephens/tracker/internal/storage/postgres"
	"github.com/julianstephens/tracker/internal/storage/sqlite"
)

// OpenStore picks a backend for the database target. An explicit target wins;
// without one a connection string stored in the OS keyring is used, and
// failing that the fallback SQLite path. Explicit PostgreSQL URLs must not
// carry a password. Nothing is opened until Init or Load.
func OpenStore(explicit, fallback string) (storage.Provider, string, error) {
	if explicit != "" {
		if postgres.IsConnString(explicit) {
			if err := postgres.ValidateConnString(explicit); err != nil {
				return nil, "", err
			}
			return postgres.New(explicit), explicit, nil
		}
		return fileStore(explicit), explicit, nil
	}

	connStr, err := keyring.GetConnectionString()
	switch {
	case err == nil:
		logger.Debug("using connection string from keyring")
		return postgres.New(connStr), connStr, nil
	case !errors.Is(err, keyring.ErrNotFound):
		logger.Debug("keyring lookup failed", "error", err)
	}
	return fileStore(fallback), fallback, nil
}

func fileStore(path string) storage.Provider {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return storage.NewJSONStore(path)
	}
	return sqlite.NewStore(path)
}

// NeedsLoad reports whether the command reads or writes tracker data. init
// creates the store itself, config only touches the keyring and backup works
// on the closed database file.
func NeedsLoad(command string) bool {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case "init", "config", "backup":
		return false
	}
	return true
}
