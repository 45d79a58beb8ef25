package setup

import (
	"context"
	"fmt"
	"time"

	"github.com/forum-dev/forum/backend/internal/handler"
	"github.com/forum-dev/forum/backend/internal/service"
	"github.com/forum-dev/forum/backend/internal/storage/memory"
	"github.com/forum-dev/forum/backend/internal/storage/pg"
	"github.com/forum-dev/forum/shared/config"
	"github.com/forum-dev/forum/shared/domain"
	"github.com/forum-dev/forum/shared/idgen"
	"github.com/forum-dev/forum/shared/jwt"
	"github.com/forum-dev/forum/shared/logger"
	mw "github.com/forum-dev/forum/shared/middleware"
	"github.com/forum-dev/forum/shared/middleware/ratelimiter"
)

// Storage is everything the process needs from a storage backend.
type Storage interface {
	service.ThreadStorage
	service.CommentStorage
	service.ReplyStorage
	service.UserStorage
	UpsertUsers(ctx context.Context, users ...domain.User) error
	Ping(ctx context.Context) error
}

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        Storage
	Handler        *handler.Handler
	AuthMiddleware *mw.Auth
	WriteLimiter   *ratelimiter.UserRateLimiter

	closeStorage func() error
}

// OpenStorage builds the backend selected by config. The returned close
// function releases its resources.
func OpenStorage(ctx context.Context, cfg *config.Config) (Storage, func() error, error) {
	switch cfg.Public.Storage {
	case config.StoragePostgres:
		storage, err := pg.New(ctx, cfg, idgen.UUID)
		if err != nil {
			return nil, nil, err
		}
		return storage, storage.Cleanup, nil
	case config.StorageMemory:
		logger.Log.Warn("using in-memory storage, data is lost on restart")
		return memory.New(idgen.UUID, time.Now), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage %q", cfg.Public.Storage)
	}
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, closeStorage, err := OpenStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	guard := service.NewGuard(storage, storage, storage)
	thread := service.NewThread(storage, storage, storage, storage, guard)
	comment := service.NewComment(storage, guard)
	reply := service.NewReply(storage, guard)

	jwtService := jwt.New(cfg.JwtKey(), jwt.DefaultTTL)

	limit := cfg.Public.WriteRateLimit
	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        handler.New(thread, comment, reply, storage),
		AuthMiddleware: mw.NewAuth(jwtService),
		WriteLimiter:   ratelimiter.New(limit.Rps, limit.Burst, time.Hour),
		closeStorage:   closeStorage,
	}, nil
}

func (d *Dependencies) Cleanup() error {
	d.WriteLimiter.Stop()
	return d.closeStorage()
}
