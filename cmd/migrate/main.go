// cmd/migrate/main.go
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/mahabubulhasibshawon/delivery-hub/internal/adapters/repository"
)

const usage = "usage: migrate up|down|version"

var errUsage = errors.New(usage)

func main() {
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Debug("no .env file loaded")
	}

	if err := run(os.Args[1:], os.Getenv("DATABASE_URL")); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, usage)
			os.Exit(2)
		}
		log.WithError(err).Error("migrate failed")
		os.Exit(1)
	}
}

// run executes one migration command. The migrator is always closed before
// it returns, releasing the advisory lock and connection.
func run(args []string, dsn string) (err error) {
	if len(args) != 1 {
		return errUsage
	}
	switch args[0] {
	case "up", "down", "version":
	default:
		return errUsage
	}
	if dsn == "" {
		return errors.New("DATABASE_URL is required")
	}

	m, err := repository.NewMigrator(dsn)
	if err != nil {
		return fmt.Errorf("open migrator: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()

	switch args[0] {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "version":
		version, dirty, verr := m.Version()
		if errors.Is(verr, migrate.ErrNilVersion) {
			fmt.Println("no migrations applied")
			return nil
		}
		if verr != nil {
			return fmt.Errorf("read version: %w", verr)
		}
		fmt.Printf("version %d (dirty: %t)\n", version, dirty)
		return nil
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("no change")
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", args[0], err)
	}
	log.WithField("command", args[0]).Info("migration complete")
	return nil
}
