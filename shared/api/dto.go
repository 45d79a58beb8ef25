package api

import "github.com/forum-dev/forum/shared/domain"

// Response envelope shared by every endpoint.

const (
	StatusSuccess = "success"
	StatusFail    = "fail"  // client error, message is safe to show
	StatusError   = "error" // server error, message is generic
)

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type AddedThreadData struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}

type AddedCommentData struct {
	AddedComment domain.AddedComment `json:"addedComment"`
}

type AddedReplyData struct {
	AddedReply domain.AddedReply `json:"addedReply"`
}

type ThreadData struct {
	Thread domain.ThreadView `json:"thread"`
}

// LikeData is not part of the original contract; clients may ignore it.
type LikeData struct {
	Liked bool `json:"liked"`
}
