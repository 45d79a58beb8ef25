package pg_test

import (
	"github.com/forum-dev/forum/backend/internal/service"
	"github.com/forum-dev/forum/backend/internal/storage/pg"
)

var (
	_ service.ThreadStorage  = (*pg.Storage)(nil)
	_ service.CommentStorage = (*pg.Storage)(nil)
	_ service.ReplyStorage   = (*pg.Storage)(nil)
	_ service.UserStorage    = (*pg.Storage)(nil)
)
