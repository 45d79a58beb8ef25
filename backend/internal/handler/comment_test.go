package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forum-dev/forum/shared/domain"
	internal_errors "github.com/forum-dev/forum/shared/errors"
)

func TestCreateComment(t *testing.T) {
	t.Run("successful creation", func(t *testing.T) {
		mock := &MockCommentService{
			MockCreate: func(payload domain.Payload, owner domain.UserId, threadId domain.ThreadId) (domain.AddedComment, error) {
				assert.Equal(t, domain.Payload{"content": "sebuah comment"}, payload)
				assert.Equal(t, testUser, owner)
				assert.Equal(t, "thread-123", threadId)
				return domain.AddedComment{Id: "comment-123", Content: "sebuah comment", Owner: owner}, nil
			},
		}
		router := setupRouter(&Handler{comment: mock}, testUser)

		rr := doRequest(router, http.MethodPost, "/threads/thread-123/comments", `{"content":"sebuah comment"}`)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.JSONEq(t, `{"status":"success","data":{"addedComment":{"id":"comment-123","content":"sebuah comment","owner":"user-123"}}}`, rr.Body.String())
	})

	t.Run("thread not found", func(t *testing.T) {
		mock := &MockCommentService{
			MockCreate: func(domain.Payload, domain.UserId, domain.ThreadId) (domain.AddedComment, error) {
				return domain.AddedComment{}, internal_errors.NotFound("thread not found")
			},
		}
		router := setupRouter(&Handler{comment: mock}, testUser)

		rr := doRequest(router, http.MethodPost, "/threads/thread-x/comments", `{"content":"x"}`)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestDeleteComment(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mock := &MockCommentService{
			MockDelete: func(threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
				assert.Equal(t, "thread-1", threadId)
				assert.Equal(t, "comment-1", commentId)
				assert.Equal(t, testUser, owner)
				return nil
			},
		}
		router := setupRouter(&Handler{comment: mock}, testUser)

		rr := doRequest(router, http.MethodDelete, "/threads/thread-1/comments/comment-1", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"success"}`, rr.Body.String())
	})

	t.Run("forbidden", func(t *testing.T) {
		mock := &MockCommentService{
			MockDelete: func(domain.ThreadId, domain.CommentId, domain.UserId) error {
				return internal_errors.Forbidden("you are not allowed to access this resource")
			},
		}
		router := setupRouter(&Handler{comment: mock}, testUser)

		rr := doRequest(router, http.MethodDelete, "/threads/thread-1/comments/comment-1", "")

		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "fail", decodeBody(t, rr)["status"])
	})
}

func TestToggleCommentLike(t *testing.T) {
	t.Run("like", func(t *testing.T) {
		mock := &MockCommentService{
			MockToggleLike: func(userId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId) (bool, error) {
				assert.Equal(t, testUser, userId)
				assert.Equal(t, "thread-1", threadId)
				assert.Equal(t, "comment-1", commentId)
				return true, nil
			},
		}
		router := setupRouter(&Handler{comment: mock}, testUser)

		rr := doRequest(router, http.MethodPut, "/threads/thread-1/comments/comment-1/likes", "")

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{"status":"success","data":{"liked":true}}`, rr.Body.String())
	})

	t.Run("comment not found", func(t *testing.T) {
		mock := &MockCommentService{
			MockToggleLike: func(domain.UserId, domain.ThreadId, domain.CommentId) (bool, error) {
				return false, internal_errors.NotFound("comment not found")
			},
		}
		router := setupRouter(&Handler{comment: mock}, testUser)

		rr := doRequest(router, http.MethodPut, "/threads/thread-1/comments/comment-x/likes", "")

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "comment not found", decodeBody(t, rr)["message"])
	})
}
