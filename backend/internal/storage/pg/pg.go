// Package pg is the PostgreSQL implementation of the forum persistence ports.
package pg

import (
	"context"
	"database/sql"

	"github.com/forum-dev/forum/shared/config"
	"github.com/forum-dev/forum/shared/idgen"
	"github.com/forum-dev/forum/shared/logger"
	shared_pg "github.com/forum-dev/forum/shared/storage/pg"
)

type Storage struct {
	db  *sql.DB
	ids idgen.Generator
}

// New connects using cfg and, when enabled, brings the schema up to date.
func New(ctx context.Context, cfg *config.Config, ids idgen.Generator) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := shared_pg.Connect(ctx, cfg.Private.Pg, cfg.Public.PgPool)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")

	if cfg.Public.AutoMigrate {
		if err := MigrateUp(db); err != nil {
			db.Close()
			return nil, err
		}
	}
	return NewWithDB(db, ids), nil
}

func NewWithDB(db *sql.DB, ids idgen.Generator) *Storage {
	return &Storage{db: db, ids: ids}
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}
