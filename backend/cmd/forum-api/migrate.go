package main

import (
	"database/sql"
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/forum-dev/forum/backend/internal/storage/pg"
	"github.com/forum-dev/forum/shared/config"
	shared_pg "github.com/forum-dev/forum/shared/storage/pg"
)

func migrateCommand() *cli.Command {
	run := func(apply func(*sql.DB) error) cli.ActionFunc {
		return func(c *cli.Context) error {
			cfg := loadConfig(c)
			if cfg.Public.Storage != config.StoragePostgres {
				return errors.New("migrations require postgres storage")
			}

			db, err := shared_pg.Connect(c.Context, cfg.Private.Pg, cfg.Public.PgPool)
			if err != nil {
				return err
			}
			defer db.Close()
			return apply(db)
		}
	}

	return &cli.Command{
		Name:  "migrate",
		Usage: "Manage the database schema",
		Subcommands: []*cli.Command{
			{Name: "up", Usage: "Apply all pending migrations", Action: run(pg.MigrateUp)},
			{Name: "down", Usage: "Roll back the last migration", Action: run(pg.MigrateDown)},
		},
	}
}
