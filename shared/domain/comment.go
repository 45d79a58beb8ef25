package domain

import "time"

const DeletedCommentContent = "**comment has been deleted**"

type CommentCreationData struct {
	Content  Content  `validate:"required"`
	ThreadId ThreadId `validate:"required"`
	Owner    UserId   `validate:"required"`
}

type AddedComment struct {
	Id      CommentId `json:"id"`
	Content Content   `json:"content"`
	Owner   UserId    `json:"owner"`
}

type Comment struct {
	Id        CommentId
	Content   Content
	CreatedAt time.Time
	ThreadId  ThreadId
	Owner     UserId
	IsDeleted bool
	// Seq is the storage insertion order, used to break CreatedAt ties.
	Seq int64
}

// RenderedContent applies redaction: deleted comments never expose their text.
func (c Comment) RenderedContent() Content {
	if c.IsDeleted {
		return DeletedCommentContent
	}
	return c.Content
}

// ThreadComment is a comment as listed inside its thread, with the number
// of likes it had at read time.
type ThreadComment struct {
	Comment
	LikeCount int
}

type CommentView struct {
	Id        CommentId   `json:"id"`
	Username  Username    `json:"username"`
	Date      time.Time   `json:"date"`
	Content   Content     `json:"content"`
	LikeCount int         `json:"likeCount"`
	Replies   []ReplyView `json:"replies"`
}
