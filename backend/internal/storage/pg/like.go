package pg

import (
	"context"
	"fmt"

	"github.com/forum-dev/forum/shared/domain"
	internal_errors "github.com/forum-dev/forum/shared/errors"
	"github.com/forum-dev/forum/shared/idgen"
	shared_pg "github.com/forum-dev/forum/shared/storage/pg"
)

func (s *Storage) HasLike(ctx context.Context, commentId domain.CommentId, userId domain.UserId) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM comment_likes WHERE comment_id = $1 AND user_id = $2)",
		commentId, userId,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return exists, nil
}

func (s *Storage) AddLike(ctx context.Context, commentId domain.CommentId, userId domain.UserId) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO comment_likes (id, comment_id, user_id) VALUES ($1, $2, $3)",
		s.ids.New(idgen.Like), commentId, userId,
	)
	if shared_pg.IsUniqueViolation(err) {
		return internal_errors.ErrAlreadyExists
	}
	if err != nil {
		return insertError(err, "like")
	}
	return nil
}

func (s *Storage) RemoveLike(ctx context.Context, commentId domain.CommentId, userId domain.UserId) error {
	_, err := s.db.ExecContext(ctx,
		"DELETE FROM comment_likes WHERE comment_id = $1 AND user_id = $2",
		commentId, userId,
	)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}
