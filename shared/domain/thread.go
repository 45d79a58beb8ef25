package domain

import (
	"time"
)

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Title ThreadTitle `validate:"required"`
	Body  ThreadBody  `validate:"required"`
	Owner UserId      `validate:"required"`
}

type AddedThread struct {
	Id    ThreadId    `json:"id"`
	Title ThreadTitle `json:"title"`
	Owner UserId      `json:"owner"`
}

type Thread struct {
	Id        ThreadId
	Title     ThreadTitle
	Body      ThreadBody
	CreatedAt time.Time
	Owner     UserId
}

// ThreadView is the read-only projection returned by thread detail.
// Built per request, never persisted.
type ThreadView struct {
	Id       ThreadId      `json:"id"`
	Title    ThreadTitle   `json:"title"`
	Body     ThreadBody    `json:"body"`
	Date     time.Time     `json:"date"`
	Username Username      `json:"username"`
	Comments []CommentView `json:"comments"`
}
