package jwt

import (
	"testing"
	"time"

	internal_errors "github.com/forum-dev/forum/shared/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	service := New("secret", time.Hour)

	tokenStr, err := service.NewToken("user-123")
	require.NoError(t, err)

	token, err := service.DecodeToken(tokenStr)
	require.NoError(t, err)

	userId, err := service.UserId(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userId)
}

func TestDecodeToken_Rejects(t *testing.T) {
	service := New("secret", time.Hour)

	t.Run("Wrong key", func(t *testing.T) {
		tokenStr, err := New("other", time.Hour).NewToken("user-123")
		require.NoError(t, err)
		_, err = service.DecodeToken(tokenStr)
		assert.Equal(t, 401, internal_errors.StatusCode(err))
	})

	t.Run("Expired", func(t *testing.T) {
		tokenStr, err := New("secret", -time.Minute).NewToken("user-123")
		require.NoError(t, err)
		_, err = service.DecodeToken(tokenStr)
		assert.Equal(t, 401, internal_errors.StatusCode(err))
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := service.DecodeToken("not-a-token")
		assert.Equal(t, 401, internal_errors.StatusCode(err))
	})
}

func TestUserId_MissingClaim(t *testing.T) {
	service := New("secret", time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"uid": 5})

	_, err := service.UserId(token)
	assert.Equal(t, 401, internal_errors.StatusCode(err))
}
