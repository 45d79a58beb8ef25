package pg

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	internal_errors "github.com/forum-dev/forum/shared/errors"
)

func TestInsertError(t *testing.T) {
	cases := map[string]string{
		"threads_owner_fkey":            "user not found",
		"comments_thread_id_fkey":       "thread not found",
		"comments_owner_fkey":           "user not found",
		"replies_comment_id_fkey":       "comment not found",
		"comment_likes_comment_id_fkey": "comment not found",
		"comment_likes_user_id_fkey":    "user not found",
	}
	for constraint, message := range cases {
		t.Run(constraint, func(t *testing.T) {
			err := insertError(&pq.Error{Code: "23503", Constraint: constraint}, "comment")
			assert.Equal(t, http.StatusNotFound, internal_errors.StatusCode(err))
			assert.EqualError(t, err, message)
		})
	}

	t.Run("Other errors stay internal", func(t *testing.T) {
		boom := errors.New("connection reset")
		err := insertError(boom, "thread")
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, http.StatusInternalServerError, internal_errors.StatusCode(err))
		assert.EqualError(t, err, "failed to insert thread: connection reset")
	})

	t.Run("Wrapped violation", func(t *testing.T) {
		err := insertError(fmt.Errorf("exec: %w", &pq.Error{Code: "23503", Constraint: "threads_owner_fkey"}), "thread")
		assert.True(t, internal_errors.IsNotFound(err))
	})
}
