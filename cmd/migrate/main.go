// Command migrate applies or rolls back the embedded schema migrations.
package main

import (
	"flag"
	"log/slog"
	"os"

	"carmarket/config"
	"carmarket/internal/errors"
	logs "carmarket/internal/infra/log"
	"carmarket/internal/infra/persistence/migrations"

	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func main() {
	direction := flag.String("direction", "up", "migration direction: up, down or version")
	steps := flag.Int("steps", 1, "number of migrations to roll back with -direction=down")
	flag.Parse()

	if err := run(*direction, *steps); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(direction string, steps int) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "failed to create logger")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to connect to PostgreSQL")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	switch direction {
	case "up":
		if err := migrations.Up(sqlDB); err != nil {
			return err
		}
	case "down":
		if steps <= 0 {
			return errors.Errorf("steps must be positive, got %d", steps)
		}
		if err := migrations.Down(sqlDB, steps); err != nil {
			return err
		}
	case "version":
	default:
		return errors.Errorf("unknown direction %q", direction)
	}

	version, dirty, err := migrations.Version(sqlDB)
	if err != nil {
		return errors.Wrap(err, "failed to read schema version")
	}
	logger.Info("Schema version",
		slog.String("direction", direction),
		slog.Uint64("version", uint64(version)),
		slog.Bool("dirty", dirty),
	)

	return nil
}
