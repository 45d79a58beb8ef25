package domain

import "time"

const DeletedReplyContent = "**reply has been deleted**"

type ReplyCreationData struct {
	Content   Content   `validate:"required"`
	CommentId CommentId `validate:"required"`
	Owner     UserId    `validate:"required"`
}

type AddedReply struct {
	Id      ReplyId `json:"id"`
	Content Content `json:"content"`
	Owner   UserId  `json:"owner"`
}

type Reply struct {
	Id        ReplyId
	Content   Content
	CreatedAt time.Time
	CommentId CommentId
	Owner     UserId
	IsDeleted bool
	// Seq is the storage insertion order, used to break CreatedAt ties.
	Seq int64
}

func (r Reply) RenderedContent() Content {
	if r.IsDeleted {
		return DeletedReplyContent
	}
	return r.Content
}

type ReplyView struct {
	Id       ReplyId   `json:"id"`
	Content  Content   `json:"content"`
	Date     time.Time `json:"date"`
	Username Username  `json:"username"`
}
