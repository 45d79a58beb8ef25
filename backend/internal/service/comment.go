package service

import (
	"context"
	"errors"

	"github.com/forum-dev/forum/shared/domain"
	internal_errors "github.com/forum-dev/forum/shared/errors"
	"github.com/forum-dev/forum/shared/logger"
)

type CommentService interface {
	Create(ctx context.Context, payload domain.Payload, owner domain.UserId, threadId domain.ThreadId) (domain.AddedComment, error)
	Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error
	// ToggleLike flips the caller's like on a comment and reports whether it is now liked.
	ToggleLike(ctx context.Context, userId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId) (bool, error)
}

type Comment struct {
	storage CommentStorage
	guard   *Guard
}

func NewComment(storage CommentStorage, guard *Guard) CommentService {
	return &Comment{storage, guard}
}

func (b *Comment) Create(ctx context.Context, payload domain.Payload, owner domain.UserId, threadId domain.ThreadId) (domain.AddedComment, error) {
	data, err := domain.NewCommentCreationData(payload, threadId, owner)
	if err != nil {
		return domain.AddedComment{}, err
	}
	if err := b.guard.RequireThreadExists(ctx, threadId); err != nil {
		return domain.AddedComment{}, err
	}

	return b.storage.AddComment(ctx, data)
}

func (b *Comment) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
	if err := b.guard.RequireThreadExists(ctx, threadId); err != nil {
		return err
	}
	if err := b.guard.RequireCommentExists(ctx, commentId); err != nil {
		return err
	}
	if err := b.guard.RequireCommentOwner(ctx, commentId, owner); err != nil {
		return err
	}

	if err := b.storage.DeleteComment(ctx, commentId); err != nil {
		return err
	}
	contentDeletions.WithLabelValues("comment").Inc()
	return nil
}

// Check-then-act: two concurrent toggles may both see "not liked". Storage
// enforces uniqueness and the losing insert is treated as already liked.
func (b *Comment) ToggleLike(ctx context.Context, userId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId) (bool, error) {
	if err := b.guard.RequireThreadExists(ctx, threadId); err != nil {
		return false, err
	}
	if err := b.guard.RequireCommentExists(ctx, commentId); err != nil {
		return false, err
	}

	liked, err := b.storage.HasLike(ctx, commentId, userId)
	if err != nil {
		return false, err
	}

	if liked {
		if err := b.storage.RemoveLike(ctx, commentId, userId); err != nil {
			return false, err
		}
		likeToggles.WithLabelValues("unlike").Inc()
		return false, nil
	}

	err = b.storage.AddLike(ctx, commentId, userId)
	if errors.Is(err, internal_errors.ErrAlreadyExists) {
		logger.Log.Debug("concurrent like already recorded", "commentId", commentId, "userId", userId)
		likeToggles.WithLabelValues("like_duplicate").Inc()
		return true, nil
	}
	if err != nil {
		return false, err
	}
	likeToggles.WithLabelValues("like").Inc()
	return true, nil
}
