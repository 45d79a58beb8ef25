package domain

type (
	UserId    = string
	ThreadId  = string
	CommentId = string
	ReplyId   = string
	LikeId    = string

	ThreadTitle = string
	ThreadBody  = string
	Content     = string
	Username    = string

	// Payload is a decoded JSON request body. Kept untyped so type
	// mismatches can be reported instead of failing the decode.
	Payload = map[string]any
)
