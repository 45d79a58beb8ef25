package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/forum-dev/forum/shared/domain"
	internal_errors "github.com/forum-dev/forum/shared/errors"
	jwt_internal "github.com/forum-dev/forum/shared/jwt"
	"github.com/forum-dev/forum/shared/utils"
)

// Key to store the caller id in the request context
type key int

const UserIdKey key = 0

var (
	errNoToken         = errors.New("missing authentication")
	errNoUserInContext = &internal_errors.ErrorWithStatusCode{Message: "missing authentication", StatusCode: http.StatusUnauthorized}
)

type Auth struct {
	jwtService jwt_internal.JwtService
}

func NewAuth(jwtService jwt_internal.JwtService) *Auth {
	return &Auth{jwtService: jwtService}
}

// NeedAuth rejects requests without a valid bearer token and stores the
// caller id in the request context otherwise.
func (a *Auth) NeedAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userId, err := a.extractUserId(r)
			if errors.Is(err, errNoToken) {
				utils.WriteFail(w, http.StatusUnauthorized, err.Error())
				return
			}
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), UserIdKey, userId)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (a *Auth) extractUserId(r *http.Request) (domain.UserId, error) {
	tokenString, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !found || tokenString == "" {
		return "", errNoToken
	}

	token, err := a.jwtService.DecodeToken(tokenString)
	if err != nil {
		return "", err
	}
	return a.jwtService.UserId(token)
}

func GetUserIdFromContext(r *http.Request) (domain.UserId, bool) {
	userId, ok := r.Context().Value(UserIdKey).(domain.UserId)
	return userId, ok && userId != ""
}
