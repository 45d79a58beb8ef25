package domain

// At most one Like exists per (UserId, CommentId).
type Like struct {
	Id        LikeId
	UserId    UserId
	CommentId CommentId
}
