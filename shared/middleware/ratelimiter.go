package middleware

import (
	"net/http"

	"github.com/forum-dev/forum/shared/logger"
	"github.com/forum-dev/forum/shared/middleware/ratelimiter"
	"github.com/forum-dev/forum/shared/utils"
)

func RateLimit(rl *ratelimiter.UserRateLimiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}
			if !rl.Allow(identity) {
				logger.Log.Debug("rate limit exceeded", "identity", identity, "path", r.URL.Path)
				utils.WriteFail(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// UserIdentity keys the limiter by the authenticated caller. Must run after NeedAuth.
func UserIdentity(r *http.Request) (string, error) {
	userId, ok := GetUserIdFromContext(r)
	if !ok {
		return "", errNoUserInContext
	}
	return "user_" + userId, nil
}
