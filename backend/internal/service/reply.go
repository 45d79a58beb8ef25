package service

import (
	"context"

	"github.com/forum-dev/forum/shared/domain"
)

type ReplyService interface {
	Create(ctx context.Context, payload domain.Payload, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error)
	Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.UserId) error
}

type Reply struct {
	storage ReplyStorage
	guard   *Guard
}

func NewReply(storage ReplyStorage, guard *Guard) ReplyService {
	return &Reply{storage, guard}
}

func (b *Reply) Create(ctx context.Context, payload domain.Payload, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error) {
	data, err := domain.NewReplyCreationData(payload, commentId, owner)
	if err != nil {
		return domain.AddedReply{}, err
	}
	if err := b.guard.RequireThreadExists(ctx, threadId); err != nil {
		return domain.AddedReply{}, err
	}
	if err := b.guard.RequireCommentExists(ctx, commentId); err != nil {
		return domain.AddedReply{}, err
	}

	return b.storage.AddReply(ctx, data)
}

// Delete does not check that the reply belongs to commentId; thread,
// comment and reply are each validated on their own.
func (b *Reply) Delete(ctx context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.UserId) error {
	if err := b.guard.RequireThreadExists(ctx, threadId); err != nil {
		return err
	}
	if err := b.guard.RequireCommentExists(ctx, commentId); err != nil {
		return err
	}
	if err := b.guard.RequireReplyExists(ctx, replyId); err != nil {
		return err
	}
	if err := b.guard.RequireReplyOwner(ctx, replyId, owner); err != nil {
		return err
	}

	if err := b.storage.DeleteReply(ctx, replyId); err != nil {
		return err
	}
	contentDeletions.WithLabelValues("reply").Inc()
	return nil
}
