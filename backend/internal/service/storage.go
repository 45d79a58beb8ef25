package service

import (
	"context"

	"github.com/forum-dev/forum/shared/domain"
)

// Persistence ports. Adapters live under storage/ (pg, memory); the services
// depend only on these capabilities.

type ThreadStorage interface {
	AddThread(ctx context.Context, data domain.ThreadCreationData) (domain.AddedThread, error)
	ThreadExists(ctx context.Context, id domain.ThreadId) (bool, error)
	GetThread(ctx context.Context, id domain.ThreadId) (domain.Thread, error)
}

type CommentStorage interface {
	AddComment(ctx context.Context, data domain.CommentCreationData) (domain.AddedComment, error)
	CommentExists(ctx context.Context, id domain.CommentId) (bool, error)
	// CommentOwner fails with 404 when the comment does not exist.
	CommentOwner(ctx context.Context, id domain.CommentId) (domain.UserId, error)
	// GetCommentsInThread returns comments ordered by creation time, then id.
	GetCommentsInThread(ctx context.Context, threadId domain.ThreadId) ([]domain.ThreadComment, error)
	// DeleteComment marks the comment deleted. Re-applying is a no-op.
	DeleteComment(ctx context.Context, id domain.CommentId) error

	HasLike(ctx context.Context, commentId domain.CommentId, userId domain.UserId) (bool, error)
	// AddLike returns errors.ErrAlreadyExists if the pair is already liked.
	AddLike(ctx context.Context, commentId domain.CommentId, userId domain.UserId) error
	RemoveLike(ctx context.Context, commentId domain.CommentId, userId domain.UserId) error
}

type ReplyStorage interface {
	AddReply(ctx context.Context, data domain.ReplyCreationData) (domain.AddedReply, error)
	ReplyExists(ctx context.Context, id domain.ReplyId) (bool, error)
	// ReplyOwner fails with 404 when the reply does not exist.
	ReplyOwner(ctx context.Context, id domain.ReplyId) (domain.UserId, error)
	// GetRepliesOfComments returns replies ordered by creation time, then id.
	GetRepliesOfComments(ctx context.Context, commentIds []domain.CommentId) ([]domain.Reply, error)
	DeleteReply(ctx context.Context, id domain.ReplyId) error
}

type UserStorage interface {
	// GetUsernames resolves display names; unknown ids are absent from the result.
	GetUsernames(ctx context.Context, ids []domain.UserId) (map[domain.UserId]domain.Username, error)
}
