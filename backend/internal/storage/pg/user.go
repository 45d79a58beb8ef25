package pg

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/forum-dev/forum/shared/domain"
	shared_pg "github.com/forum-dev/forum/shared/storage/pg"
)

func (s *Storage) GetUsernames(ctx context.Context, ids []domain.UserId) (map[domain.UserId]domain.Username, error) {
	names := make(map[domain.UserId]domain.Username, len(ids))
	if len(ids) == 0 {
		return names, nil
	}

	rows, err := s.db.QueryContext(ctx, "SELECT id, username FROM users WHERE id = ANY($1)", pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to query usernames: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id domain.UserId
		var name domain.Username
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("failed to scan username: %w", err)
		}
		names[id] = name
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating usernames: %w", err)
	}
	return names, nil
}

// UpsertUsers writes user records atomically. Users are owned by the auth
// service; this is how they are mirrored into the forum database.
func (s *Storage) UpsertUsers(ctx context.Context, users ...domain.User) error {
	return shared_pg.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, u := range users {
			if err := upsertUser(ctx, tx, u); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsertUser(ctx context.Context, q shared_pg.Querier, u domain.User) error {
	_, err := q.ExecContext(ctx, `
        INSERT INTO users (id, username, fullname)
        VALUES ($1, $2, $3)
        ON CONFLICT (id) DO UPDATE SET username = EXCLUDED.username, fullname = EXCLUDED.fullname
    `, u.Id, u.Username, u.Fullname)
	if err != nil {
		return fmt.Errorf("failed to upsert user %s: %w", u.Id, err)
	}
	return nil
}
