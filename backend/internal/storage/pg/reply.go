package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/forum-dev/forum/shared/domain"
	internal_errors "github.com/forum-dev/forum/shared/errors"
	"github.com/forum-dev/forum/shared/idgen"
)

func (s *Storage) AddReply(ctx context.Context, data domain.ReplyCreationData) (domain.AddedReply, error) {
	var added domain.AddedReply
	err := s.db.QueryRowContext(ctx, `
        INSERT INTO replies (id, comment_id, owner, content)
        VALUES ($1, $2, $3, $4)
        RETURNING id, content, owner
    `, s.ids.New(idgen.Reply), data.CommentId, data.Owner, data.Content).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		return domain.AddedReply{}, insertError(err, "reply")
	}
	return added, nil
}

func (s *Storage) ReplyExists(ctx context.Context, id domain.ReplyId) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM replies WHERE id = $1)", id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check reply existence: %w", err)
	}
	return exists, nil
}

func (s *Storage) ReplyOwner(ctx context.Context, id domain.ReplyId) (domain.UserId, error) {
	var owner domain.UserId
	err := s.db.QueryRowContext(ctx, "SELECT owner FROM replies WHERE id = $1", id).Scan(&owner)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", internal_errors.NotFound("reply not found")
		}
		return "", fmt.Errorf("failed to get reply owner: %w", err)
	}
	return owner, nil
}

// GetRepliesOfComments loads the replies of every given comment in one query.
func (s *Storage) GetRepliesOfComments(ctx context.Context, commentIds []domain.CommentId) ([]domain.Reply, error) {
	if len(commentIds) == 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx, `
        SELECT id, seq, content, date, comment_id, owner, is_delete
        FROM replies
        WHERE comment_id = ANY($1)
        ORDER BY date ASC, seq ASC
    `, pq.Array(commentIds))
	if err != nil {
		return nil, fmt.Errorf("failed to query replies: %w", err)
	}
	defer rows.Close()

	var replies []domain.Reply
	for rows.Next() {
		var r domain.Reply
		var deleted deleteFlag
		if err := rows.Scan(&r.Id, &r.Seq, &r.Content, &r.CreatedAt, &r.CommentId, &r.Owner, &deleted); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		r.CreatedAt = r.CreatedAt.UTC()
		r.IsDeleted = bool(deleted)
		replies = append(replies, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating replies: %w", err)
	}
	return replies, nil
}

func (s *Storage) DeleteReply(ctx context.Context, id domain.ReplyId) error {
	result, err := s.db.ExecContext(ctx, "UPDATE replies SET is_delete = $2 WHERE id = $1", id, deleteFlag(true))
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("reply not found")
	}
	return nil
}
