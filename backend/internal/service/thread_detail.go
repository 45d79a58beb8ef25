package service

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/forum-dev/forum/shared/domain"
)

// GetDetail assembles the full thread view: comments with like counts and
// their replies, oldest first, with deleted content redacted.
func (b *Thread) GetDetail(ctx context.Context, id domain.ThreadId) (domain.ThreadView, error) {
	if err := b.guard.RequireThreadExists(ctx, id); err != nil {
		return domain.ThreadView{}, err
	}

	thread, err := b.storage.GetThread(ctx, id)
	if err != nil {
		return domain.ThreadView{}, err
	}

	comments, err := b.comments.GetCommentsInThread(ctx, id)
	if err != nil {
		return domain.ThreadView{}, err
	}
	slices.SortStableFunc(comments, func(x, y domain.ThreadComment) int {
		return byCreation(x.CreatedAt, y.CreatedAt, x.Seq, y.Seq)
	})

	var replies []domain.Reply
	if len(comments) > 0 {
		commentIds := make([]domain.CommentId, len(comments))
		for i, c := range comments {
			commentIds[i] = c.Id
		}
		replies, err = b.replies.GetRepliesOfComments(ctx, commentIds)
		if err != nil {
			return domain.ThreadView{}, err
		}
		slices.SortStableFunc(replies, func(x, y domain.Reply) int {
			return byCreation(x.CreatedAt, y.CreatedAt, x.Seq, y.Seq)
		})
	}

	usernames, err := b.users.GetUsernames(ctx, owners(thread, comments, replies))
	if err != nil {
		return domain.ThreadView{}, err
	}

	repliesByComment := make(map[domain.CommentId][]domain.ReplyView, len(comments))
	for _, r := range replies {
		repliesByComment[r.CommentId] = append(repliesByComment[r.CommentId], domain.ReplyView{
			Id:       r.Id,
			Content:  r.RenderedContent(),
			Date:     r.CreatedAt,
			Username: usernames[r.Owner],
		})
	}

	commentViews := make([]domain.CommentView, 0, len(comments))
	for _, c := range comments {
		commentReplies := repliesByComment[c.Id]
		if commentReplies == nil {
			commentReplies = []domain.ReplyView{}
		}
		commentViews = append(commentViews, domain.CommentView{
			Id:        c.Id,
			Username:  usernames[c.Owner],
			Date:      c.CreatedAt,
			Content:   c.RenderedContent(),
			LikeCount: c.LikeCount,
			Replies:   commentReplies,
		})
	}

	return domain.ThreadView{
		Id:       thread.Id,
		Title:    thread.Title,
		Body:     thread.Body,
		Date:     thread.CreatedAt,
		Username: usernames[thread.Owner],
		Comments: commentViews,
	}, nil
}

// byCreation orders by timestamp, then by insertion order.
func byCreation(xTs, yTs time.Time, xSeq, ySeq int64) int {
	if c := xTs.Compare(yTs); c != 0 {
		return c
	}
	return cmp.Compare(xSeq, ySeq)
}

// owners lists every distinct author in the thread, thread owner first.
func owners(thread domain.Thread, comments []domain.ThreadComment, replies []domain.Reply) []domain.UserId {
	seen := map[domain.UserId]struct{}{thread.Owner: {}}
	ids := []domain.UserId{thread.Owner}
	add := func(id domain.UserId) {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	for _, c := range comments {
		add(c.Owner)
	}
	for _, r := range replies {
		add(r.Owner)
	}
	return ids
}
