package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/forum-dev/forum/backend/internal/setup"
	mw "github.com/forum-dev/forum/shared/middleware"
	"github.com/forum-dev/forum/shared/middleware/metrics"
	"github.com/forum-dev/forum/shared/utils"
)

// New creates and configures the router with all the routes.
// The write limiter is shared by every mutating endpoint of a user.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: deps.Config.Public.CorsAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(mw.SecurityHeaders(deps.Config.Public.SecureHeaders))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteFail(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteFail(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	h := deps.Handler

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", metrics.Handler())

	r.Get("/threads/{threadId}", h.GetThread)

	r.Group(func(r chi.Router) {
		r.Use(deps.AuthMiddleware.NeedAuth())
		r.Use(mw.RateLimit(deps.WriteLimiter, mw.UserIdentity))

		r.Post("/threads", h.CreateThread)
		r.Route("/threads/{threadId}/comments", func(r chi.Router) {
			r.Post("/", h.CreateComment)
			r.Delete("/{commentId}", h.DeleteComment)
			r.Put("/{commentId}/likes", h.ToggleCommentLike)
			r.Post("/{commentId}/replies", h.CreateReply)
			r.Delete("/{commentId}/replies/{replyId}", h.DeleteReply)
		})
	})

	return r
}
