package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/tracker/internal/keyring"
	"github.com/julianstephens/tracker/internal/storage/postgres"
)

// ConfigSetConnectionCmd stores a PostgreSQL connection string in the OS
// keyring so it can be used without --config.
type ConfigSetConnectionCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in the keyring."`
}

func (c *ConfigSetConnectionCmd) Run(ctx *Context) error {
	connStr := strings.TrimSpace(c.ConnectionString)
	if !postgres.IsConnString(connStr) && !strings.Contains(connStr, "host=") {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if err := postgres.ValidateConnString(connStr); err != nil {
		if !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return fmt.Errorf("invalid connection string: %w", err)
		}
		// passwords are accepted for keyring storage
		ctx.printf("Warning: connection string contains a password; it will be stored in the OS keyring\n")
	}

	if err := keyring.SetConnectionString(connStr); err != nil {
		return err
	}
	ctx.printf("Connection string stored in OS keyring: %s\n", keyring.MaskPassword(connStr))
	return nil
}

type ConfigClearConnectionCmd struct{}

func (c *ConfigClearConnectionCmd) Run(ctx *Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return err
	}
	ctx.printf("Connection string removed from OS keyring\n")
	return nil
}

// ConfigShowCmd prints the resolved settings.
type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(ctx *Context) error {
	ctx.printf("Database: %s\n", keyring.MaskPassword(ctx.Target))
	ctx.printf("Timezone: %s\n", ctx.Location)
	if keyring.IsAvailable() {
		ctx.printf("Keyring:  available\n")
	} else {
		ctx.printf("Keyring:  unavailable\n")
	}
	return nil
}
