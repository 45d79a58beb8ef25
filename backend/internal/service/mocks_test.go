package service

import (
	"context"
	"sync"

	"github.com/forum-dev/forum/shared/domain"
)

// --- Mocks ---

// MockThreadStorage mocks the ThreadStorage interface.
type MockThreadStorage struct {
	addThreadFunc    func(data domain.ThreadCreationData) (domain.AddedThread, error)
	threadExistsFunc func(id domain.ThreadId) (bool, error)
	getThreadFunc    func(id domain.ThreadId) (domain.Thread, error)

	mu              sync.Mutex
	addThreadCalled bool
}

func (m *MockThreadStorage) AddThread(_ context.Context, data domain.ThreadCreationData) (domain.AddedThread, error) {
	m.mu.Lock()
	m.addThreadCalled = true
	m.mu.Unlock()

	if m.addThreadFunc != nil {
		return m.addThreadFunc(data)
	}
	return domain.AddedThread{Id: "thread-1", Title: data.Title, Owner: data.Owner}, nil
}

func (m *MockThreadStorage) ThreadExists(_ context.Context, id domain.ThreadId) (bool, error) {
	if m.threadExistsFunc != nil {
		return m.threadExistsFunc(id)
	}
	return true, nil
}

func (m *MockThreadStorage) GetThread(_ context.Context, id domain.ThreadId) (domain.Thread, error) {
	if m.getThreadFunc != nil {
		return m.getThreadFunc(id)
	}
	return domain.Thread{Id: id}, nil
}

// MockCommentStorage mocks the CommentStorage interface.
type MockCommentStorage struct {
	addCommentFunc          func(data domain.CommentCreationData) (domain.AddedComment, error)
	commentExistsFunc       func(id domain.CommentId) (bool, error)
	commentOwnerFunc        func(id domain.CommentId) (domain.UserId, error)
	getCommentsInThreadFunc func(threadId domain.ThreadId) ([]domain.ThreadComment, error)
	deleteCommentFunc       func(id domain.CommentId) error
	hasLikeFunc             func(commentId domain.CommentId, userId domain.UserId) (bool, error)
	addLikeFunc             func(commentId domain.CommentId, userId domain.UserId) error
	removeLikeFunc          func(commentId domain.CommentId, userId domain.UserId) error

	mu                  sync.Mutex
	addCommentCalled    bool
	deleteCommentCalled bool
	deleteCommentArg    domain.CommentId
	addLikeCalled       bool
	removeLikeCalled    bool
}

func (m *MockCommentStorage) AddComment(_ context.Context, data domain.CommentCreationData) (domain.AddedComment, error) {
	m.mu.Lock()
	m.addCommentCalled = true
	m.mu.Unlock()

	if m.addCommentFunc != nil {
		return m.addCommentFunc(data)
	}
	return domain.AddedComment{Id: "comment-1", Content: data.Content, Owner: data.Owner}, nil
}

func (m *MockCommentStorage) CommentExists(_ context.Context, id domain.CommentId) (bool, error) {
	if m.commentExistsFunc != nil {
		return m.commentExistsFunc(id)
	}
	return true, nil
}

func (m *MockCommentStorage) CommentOwner(_ context.Context, id domain.CommentId) (domain.UserId, error) {
	if m.commentOwnerFunc != nil {
		return m.commentOwnerFunc(id)
	}
	return "user-1", nil
}

func (m *MockCommentStorage) GetCommentsInThread(_ context.Context, threadId domain.ThreadId) ([]domain.ThreadComment, error) {
	if m.getCommentsInThreadFunc != nil {
		return m.getCommentsInThreadFunc(threadId)
	}
	return nil, nil
}

func (m *MockCommentStorage) DeleteComment(_ context.Context, id domain.CommentId) error {
	m.mu.Lock()
	m.deleteCommentCalled = true
	m.deleteCommentArg = id
	m.mu.Unlock()

	if m.deleteCommentFunc != nil {
		return m.deleteCommentFunc(id)
	}
	return nil
}

func (m *MockCommentStorage) HasLike(_ context.Context, commentId domain.CommentId, userId domain.UserId) (bool, error) {
	if m.hasLikeFunc != nil {
		return m.hasLikeFunc(commentId, userId)
	}
	return false, nil
}

func (m *MockCommentStorage) AddLike(_ context.Context, commentId domain.CommentId, userId domain.UserId) error {
	m.mu.Lock()
	m.addLikeCalled = true
	m.mu.Unlock()

	if m.addLikeFunc != nil {
		return m.addLikeFunc(commentId, userId)
	}
	return nil
}

func (m *MockCommentStorage) RemoveLike(_ context.Context, commentId domain.CommentId, userId domain.UserId) error {
	m.mu.Lock()
	m.removeLikeCalled = true
	m.mu.Unlock()

	if m.removeLikeFunc != nil {
		return m.removeLikeFunc(commentId, userId)
	}
	return nil
}

// MockReplyStorage mocks the ReplyStorage interface.
type MockReplyStorage struct {
	addReplyFunc             func(data domain.ReplyCreationData) (domain.AddedReply, error)
	replyExistsFunc          func(id domain.ReplyId) (bool, error)
	replyOwnerFunc           func(id domain.ReplyId) (domain.UserId, error)
	getRepliesOfCommentsFunc func(commentIds []domain.CommentId) ([]domain.Reply, error)
	deleteReplyFunc          func(id domain.ReplyId) error

	mu                sync.Mutex
	addReplyCalled    bool
	getRepliesCalled  bool
	deleteReplyCalled bool
	deleteReplyArg    domain.ReplyId
}

func (m *MockReplyStorage) AddReply(_ context.Context, data domain.ReplyCreationData) (domain.AddedReply, error) {
	m.mu.Lock()
	m.addReplyCalled = true
	m.mu.Unlock()

	if m.addReplyFunc != nil {
		return m.addReplyFunc(data)
	}
	return domain.AddedReply{Id: "reply-1", Content: data.Content, Owner: data.Owner}, nil
}

func (m *MockReplyStorage) ReplyExists(_ context.Context, id domain.ReplyId) (bool, error) {
	if m.replyExistsFunc != nil {
		return m.replyExistsFunc(id)
	}
	return true, nil
}

func (m *MockReplyStorage) ReplyOwner(_ context.Context, id domain.ReplyId) (domain.UserId, error) {
	if m.replyOwnerFunc != nil {
		return m.replyOwnerFunc(id)
	}
	return "user-1", nil
}

func (m *MockReplyStorage) GetRepliesOfComments(_ context.Context, commentIds []domain.CommentId) ([]domain.Reply, error) {
	m.mu.Lock()
	m.getRepliesCalled = true
	m.mu.Unlock()

	if m.getRepliesOfCommentsFunc != nil {
		return m.getRepliesOfCommentsFunc(commentIds)
	}
	return nil, nil
}

func (m *MockReplyStorage) DeleteReply(_ context.Context, id domain.ReplyId) error {
	m.mu.Lock()
	m.deleteReplyCalled = true
	m.deleteReplyArg = id
	m.mu.Unlock()

	if m.deleteReplyFunc != nil {
		return m.deleteReplyFunc(id)
	}
	return nil
}

// MockUserStorage mocks the UserStorage interface.
type MockUserStorage struct {
	getUsernamesFunc func(ids []domain.UserId) (map[domain.UserId]domain.Username, error)
}

func (m *MockUserStorage) GetUsernames(_ context.Context, ids []domain.UserId) (map[domain.UserId]domain.Username, error) {
	if m.getUsernamesFunc != nil {
		return m.getUsernamesFunc(ids)
	}
	names := make(map[domain.UserId]domain.Username, len(ids))
	for _, id := range ids {
		names[id] = "name-of-" + id
	}
	return names, nil
}
