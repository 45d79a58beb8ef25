package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/forum-dev/forum/shared/domain"
	internal_errors "github.com/forum-dev/forum/shared/errors"
	"github.com/forum-dev/forum/shared/idgen"
)

func (s *Storage) AddThread(ctx context.Context, data domain.ThreadCreationData) (domain.AddedThread, error) {
	var added domain.AddedThread
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO threads (id, title, body, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, owner
    `, s.ids.New(idgen.Thread), data.Title, data.Body, data.Owner).Scan(&added.Id, &added.Title, &added.Owner)
	if err != nil {
		return domain.AddedThread{}, insertError(err, "thread")
	}
	return added, nil
}

func (s *Storage) ThreadExists(ctx context.Context, id domain.ThreadId) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM threads WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check thread existence: %w", err)
	}
	return exists, nil
}

func (s *Storage) GetThread(ctx context.Context, id domain.ThreadId) (domain.Thread, error) {
	var thread domain.Thread
	err := s.db.QueryRowContext(ctx, `
        SELECT id, title, body, date, owner
        FROM threads
        WHERE id = $1
    `, id).Scan(&thread.Id, &thread.Title, &thread.Body, &thread.CreatedAt, &thread.Owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, internal_errors.NotFound("thread not found")
		}
		return domain.Thread{}, fmt.Errorf("failed to get thread: %w", err)
	}
	thread.CreatedAt = thread.CreatedAt.UTC()
	return thread, nil
}
