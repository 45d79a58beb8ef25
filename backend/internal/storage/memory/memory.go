// Package memory is a development and test implementation of the forum
// persistence ports backed by maps.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/forum-dev/forum/shared/domain"
	internal_errors "github.com/forum-dev/forum/shared/errors"
	"github.com/forum-dev/forum/shared/idgen"
)

type likeKey struct {
	commentId domain.CommentId
	userId    domain.UserId
}

type Storage struct {
	mu  sync.RWMutex
	ids idgen.Generator
	now func() time.Time
	seq int64

	users    map[domain.UserId]domain.User
	threads  map[domain.ThreadId]domain.Thread
	comments map[domain.CommentId]domain.Comment
	replies  map[domain.ReplyId]domain.Reply
	likes    map[likeKey]domain.Like
}

func New(ids idgen.Generator, now func() time.Time) *Storage {
	return &Storage{
		ids:      ids,
		now:      now,
		users:    make(map[domain.UserId]domain.User),
		threads:  make(map[domain.ThreadId]domain.Thread),
		comments: make(map[domain.CommentId]domain.Comment),
		replies:  make(map[domain.ReplyId]domain.Reply),
		likes:    make(map[likeKey]domain.Like),
	}
}

func (s *Storage) Ping(_ context.Context) error {
	return nil
}

// nextSeq must be called with mu held for writing.
func (s *Storage) nextSeq() int64 {
	s.seq++
	return s.seq
}

// =========================================================================
// Users
// =========================================================================

// UpsertUsers registers or replaces user records.
func (s *Storage) UpsertUsers(_ context.Context, users ...domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range users {
		s.users[u.Id] = u
	}
	return nil
}

func (s *Storage) GetUsernames(_ context.Context, ids []domain.UserId) (map[domain.UserId]domain.Username, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make(map[domain.UserId]domain.Username, len(ids))
	for _, id := range ids {
		if u, ok := s.users[id]; ok {
			names[id] = u.Username
		}
	}
	return names, nil
}

// =========================================================================
// Threads
// =========================================================================

func (s *Storage) AddThread(_ context.Context, data domain.ThreadCreationData) (domain.AddedThread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	thread := domain.Thread{
		Id:        s.ids.New(idgen.Thread),
		Title:     data.Title,
		Body:      data.Body,
		CreatedAt: s.now().UTC(),
		Owner:     data.Owner,
	}
	s.threads[thread.Id] = thread
	return domain.AddedThread{Id: thread.Id, Title: thread.Title, Owner: thread.Owner}, nil
}

func (s *Storage) ThreadExists(_ context.Context, id domain.ThreadId) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.threads[id]
	return ok, nil
}

func (s *Storage) GetThread(_ context.Context, id domain.ThreadId) (domain.Thread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	thread, ok := s.threads[id]
	if !ok {
		return domain.Thread{}, internal_errors.NotFound("thread not found")
	}
	return thread, nil
}

// =========================================================================
// Comments
// =========================================================================

func (s *Storage) AddComment(_ context.Context, data domain.CommentCreationData) (domain.AddedComment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	comment := domain.Comment{
		Id:        s.ids.New(idgen.Comment),
		Content:   data.Content,
		CreatedAt: s.now().UTC(),
		ThreadId:  data.ThreadId,
		Owner:     data.Owner,
		Seq:       s.nextSeq(),
	}
	s.comments[comment.Id] = comment
	return domain.AddedComment{Id: comment.Id, Content: comment.Content, Owner: comment.Owner}, nil
}

func (s *Storage) CommentExists(_ context.Context, id domain.CommentId) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.comments[id]
	return ok, nil
}

func (s *Storage) CommentOwner(_ context.Context, id domain.CommentId) (domain.UserId, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	comment, ok := s.comments[id]
	if !ok {
		return "", internal_errors.NotFound("comment not found")
	}
	return comment.Owner, nil
}

func (s *Storage) GetCommentsInThread(_ context.Context, threadId domain.ThreadId) ([]domain.ThreadComment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	likeCounts := make(map[domain.CommentId]int)
	for key := range s.likes {
		likeCounts[key.commentId]++
	}

	var out []domain.ThreadComment
	for _, c := range s.comments {
		if c.ThreadId == threadId {
			out = append(out, domain.ThreadComment{Comment: c, LikeCount: likeCounts[c.Id]})
		}
	}
	slices.SortFunc(out, func(x, y domain.ThreadComment) int {
		if c := x.CreatedAt.Compare(y.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(x.Seq, y.Seq)
	})
	return out, nil
}

func (s *Storage) DeleteComment(_ context.Context, id domain.CommentId) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	comment, ok := s.comments[id]
	if !ok {
		return internal_errors.NotFound("comment not found")
	}
	comment.IsDeleted = true
	s.comments[id] = comment
	return nil
}

// =========================================================================
// Likes
// =========================================================================

func (s *Storage) HasLike(_ context.Context, commentId domain.CommentId, userId domain.UserId) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.likes[likeKey{commentId, userId}]
	return ok, nil
}

func (s *Storage) AddLike(_ context.Context, commentId domain.CommentId, userId domain.UserId) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := likeKey{commentId, userId}
	if _, ok := s.likes[key]; ok {
		return internal_errors.ErrAlreadyExists
	}
	s.likes[key] = domain.Like{Id: s.ids.New(idgen.Like), UserId: userId, CommentId: commentId}
	return nil
}

func (s *Storage) RemoveLike(_ context.Context, commentId domain.CommentId, userId domain.UserId) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.likes, likeKey{commentId, userId})
	return nil
}

// LikeCount is the number of likes currently recorded for a comment.
func (s *Storage) LikeCount(commentId domain.CommentId) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for key := range s.likes {
		if key.commentId == commentId {
			n++
		}
	}
	return n
}

// =========================================================================
// Replies
// =========================================================================

func (s *Storage) AddReply(_ context.Context, data domain.ReplyCreationData) (domain.AddedReply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reply := domain.Reply{
		Id:        s.ids.New(idgen.Reply),
		Content:   data.Content,
		CreatedAt: s.now().UTC(),
		CommentId: data.CommentId,
		Owner:     data.Owner,
		Seq:       s.nextSeq(),
	}
	s.replies[reply.Id] = reply
	return domain.AddedReply{Id: reply.Id, Content: reply.Content, Owner: reply.Owner}, nil
}

func (s *Storage) ReplyExists(_ context.Context, id domain.ReplyId) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.replies[id]
	return ok, nil
}

func (s *Storage) ReplyOwner(_ context.Context, id domain.ReplyId) (domain.UserId, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reply, ok := s.replies[id]
	if !ok {
		return "", internal_errors.NotFound("reply not found")
	}
	return reply.Owner, nil
}

func (s *Storage) GetRepliesOfComments(_ context.Context, commentIds []domain.CommentId) ([]domain.Reply, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	wanted := make(map[domain.CommentId]struct{}, len(commentIds))
	for _, id := range commentIds {
		wanted[id] = struct{}{}
	}

	var out []domain.Reply
	for _, r := range s.replies {
		if _, ok := wanted[r.CommentId]; ok {
			out = append(out, r)
		}
	}
	slices.SortFunc(out, func(x, y domain.Reply) int {
		if c := x.CreatedAt.Compare(y.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(x.Seq, y.Seq)
	})
	return out, nil
}

func (s *Storage) DeleteReply(_ context.Context, id domain.ReplyId) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	reply, ok := s.replies[id]
	if !ok {
		return internal_errors.NotFound("reply not found")
	}
	reply.IsDeleted = true
	s.replies[id] = reply
	return nil
}
