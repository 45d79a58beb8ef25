package service

import (
	"context"

	"github.com/forum-dev/forum/shared/domain"
	internal_errors "github.com/forum-dev/forum/shared/errors"
)

const forbiddenMessage = "you are not allowed to access this resource"

// Guard holds the availability and ownership checks shared by every write
// path. Each check is a single read; callers run existence before ownership
// so a missing entity surfaces as 404, never 403.
type Guard struct {
	threads  ThreadStorage
	comments CommentStorage
	replies  ReplyStorage
}

func NewGuard(threads ThreadStorage, comments CommentStorage, replies ReplyStorage) *Guard {
	return &Guard{threads, comments, replies}
}

func (g *Guard) RequireThreadExists(ctx context.Context, threadId domain.ThreadId) error {
	exists, err := g.threads.ThreadExists(ctx, threadId)
	if err != nil {
		return err
	}
	if !exists {
		return internal_errors.NotFound("thread not found")
	}
	return nil
}

// Soft-deleted comments still exist.
func (g *Guard) RequireCommentExists(ctx context.Context, commentId domain.CommentId) error {
	exists, err := g.comments.CommentExists(ctx, commentId)
	if err != nil {
		return err
	}
	if !exists {
		return internal_errors.NotFound("comment not found")
	}
	return nil
}

func (g *Guard) RequireReplyExists(ctx context.Context, replyId domain.ReplyId) error {
	exists, err := g.replies.ReplyExists(ctx, replyId)
	if err != nil {
		return err
	}
	if !exists {
		return internal_errors.NotFound("reply not found")
	}
	return nil
}

func (g *Guard) RequireCommentOwner(ctx context.Context, commentId domain.CommentId, userId domain.UserId) error {
	owner, err := g.comments.CommentOwner(ctx, commentId)
	if err != nil {
		return err
	}
	if owner != userId {
		return internal_errors.Forbidden(forbiddenMessage)
	}
	return nil
}

func (g *Guard) RequireReplyOwner(ctx context.Context, replyId domain.ReplyId, userId domain.UserId) error {
	owner, err := g.replies.ReplyOwner(ctx, replyId)
	if err != nil {
		return err
	}
	if owner != userId {
		return internal_errors.Forbidden(forbiddenMessage)
	}
	return nil
}
