package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/forum-dev/forum/shared/domain"
	mw "github.com/forum-dev/forum/shared/middleware"
)

// --- Mocks ---

type MockThreadService struct {
	MockCreate    func(payload domain.Payload, owner domain.UserId) (domain.AddedThread, error)
	MockGetDetail func(id domain.ThreadId) (domain.ThreadView, error)
}

func (m *MockThreadService) Create(_ context.Context, payload domain.Payload, owner domain.UserId) (domain.AddedThread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(payload, owner)
	}
	return domain.AddedThread{}, nil
}

func (m *MockThreadService) GetDetail(_ context.Context, id domain.ThreadId) (domain.ThreadView, error) {
	if m.MockGetDetail != nil {
		return m.MockGetDetail(id)
	}
	return domain.ThreadView{Id: id}, nil
}

type MockCommentService struct {
	MockCreate     func(payload domain.Payload, owner domain.UserId, threadId domain.ThreadId) (domain.AddedComment, error)
	MockDelete     func(threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error
	MockToggleLike func(userId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId) (bool, error)
}

func (m *MockCommentService) Create(_ context.Context, payload domain.Payload, owner domain.UserId, threadId domain.ThreadId) (domain.AddedComment, error) {
	if m.MockCreate != nil {
		return m.MockCreate(payload, owner, threadId)
	}
	return domain.AddedComment{}, nil
}

func (m *MockCommentService) Delete(_ context.Context, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
	if m.MockDelete != nil {
		return m.MockDelete(threadId, commentId, owner)
	}
	return nil
}

func (m *MockCommentService) ToggleLike(_ context.Context, userId domain.UserId, threadId domain.ThreadId, commentId domain.CommentId) (bool, error) {
	if m.MockToggleLike != nil {
		return m.MockToggleLike(userId, threadId, commentId)
	}
	return true, nil
}

type MockReplyService struct {
	MockCreate func(payload domain.Payload, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error)
	MockDelete func(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.UserId) error
}

func (m *MockReplyService) Create(_ context.Context, payload domain.Payload, threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) (domain.AddedReply, error) {
	if m.MockCreate != nil {
		return m.MockCreate(payload, threadId, commentId, owner)
	}
	return domain.AddedReply{}, nil
}

func (m *MockReplyService) Delete(_ context.Context, threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, owner domain.UserId) error {
	if m.MockDelete != nil {
		return m.MockDelete(threadId, commentId, replyId, owner)
	}
	return nil
}

// --- Helpers ---

const testUser = "user-123"

// withUser stands in for the auth middleware.
func withUser(userId domain.UserId) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), mw.UserIdKey, userId)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func setupRouter(h *Handler, userId domain.UserId) *chi.Mux {
	router := chi.NewRouter()
	router.Get("/threads/{threadId}", h.GetThread)
	router.Group(func(r chi.Router) {
		if userId != "" {
			r.Use(withUser(userId))
		}
		r.Post("/threads", h.CreateThread)
		r.Post("/threads/{threadId}/comments", h.CreateComment)
		r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
		r.Put("/threads/{threadId}/comments/{commentId}/likes", h.ToggleCommentLike)
		r.Post("/threads/{threadId}/comments/{commentId}/replies", h.CreateReply)
		r.Delete("/threads/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
	})
	return router
}

func doRequest(router http.Handler, method, url, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}
