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

func (s *Storage) AddComment(ctx context.Context, data domain.CommentCreationData) (domain.AddedComment, error) {
	var added domain.AddedComment
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO comments (id, thread_id, owner, content)
        VALUES ($1, $2, $3, $4)
        RETURNING id, content, owner
    `, s.ids.New(idgen.Comment), data.ThreadId, data.Owner, data.Content).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		return domain.AddedComment{}, insertError(err, "comment")
	}
	return added, nil
}

func (s *Storage) CommentExists(ctx context.Context, id domain.CommentId) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM comments WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check comment existence: %w", err)
	}
	return exists, nil
}

func (s *Storage) CommentOwner(ctx context.Context, id domain.CommentId) (domain.UserId, error) {
	var owner domain.UserId
	err := s.db.QueryRowContext(ctx, "SELECT owner FROM comments WHERE id = $1", id).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", internal_errors.NotFound("comment not found")
		}
		return "", fmt.Errorf("failed to get comment owner: %w", err)
	}
	return owner, nil
}

func (s *Storage) GetCommentsInThread(ctx context.Context, threadId domain.ThreadId) ([]domain.ThreadComment, error) {
	rows, err := s.db.QueryContext(ctx, `
        SELECT c.id, c.seq, c.content, c.date, c.thread_id, c.owner, c.is_delete, COUNT(l.id)
        FROM comments c
        LEFT JOIN comment_likes l ON l.comment_id = c.id
        WHERE c.thread_id = $1
        GROUP BY c.id
        ORDER BY c.date ASC, c.seq ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.ThreadComment
	for rows.Next() {
		var c domain.ThreadComment
		var deleted deleteFlag
		if err := rows.Scan(&c.Id, &c.Seq, &c.Content, &c.CreatedAt, &c.ThreadId, &c.Owner, &deleted, &c.LikeCount); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		c.CreatedAt = c.CreatedAt.UTC()
		c.IsDeleted = bool(deleted)
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}
	return comments, nil
}

func (s *Storage) DeleteComment(ctx context.Context, id domain.CommentId) error {
	result, err := s.db.ExecContext(ctx, "UPDATE comments SET is_delete = $2 WHERE id = $1", id, deleteFlag(true))
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("comment not found")
	}
	return nil
}
