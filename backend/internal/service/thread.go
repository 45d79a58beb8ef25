package service

import (
	"context"

	"github.com/forum-dev/forum/shared/domain"
	"github.com/forum-dev/forum/shared/logger"
)

type ThreadService interface {
	Create(ctx context.Context, payload domain.Payload, owner domain.UserId) (domain.AddedThread, error)
	GetDetail(ctx context.Context, id domain.ThreadId) (domain.ThreadView, error)
}

type Thread struct {
	storage  ThreadStorage
	comments CommentStorage
	replies  ReplyStorage
	users    UserStorage
	guard    *Guard
}

func NewThread(storage ThreadStorage, comments CommentStorage, replies ReplyStorage, users UserStorage, guard *Guard) ThreadService {
	return &Thread{
		storage:  storage,
		comments: comments,
		replies:  replies,
		users:    users,
		guard:    guard,
	}
}

func (b *Thread) Create(ctx context.Context, payload domain.Payload, owner domain.UserId) (domain.AddedThread, error) {
	data, err := domain.NewThreadCreationData(payload, owner)
	if err != nil {
		return domain.AddedThread{}, err
	}

	added, err := b.storage.AddThread(ctx, data)
	if err != nil {
		return domain.AddedThread{}, err
	}
	logger.Log.Info("thread created", "threadId", added.Id, "owner", owner)
	return added, nil
}
