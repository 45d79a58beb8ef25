package memory_test

import (
	"github.com/forum-dev/forum/backend/internal/service"
	"github.com/forum-dev/forum/backend/internal/storage/memory"
)

var (
	_ service.ThreadStorage  = (*memory.Storage)(nil)
	_ service.CommentStorage = (*memory.Storage)(nil)
	_ service.ReplyStorage   = (*memory.Storage)(nil)
	_ service.UserStorage    = (*memory.Storage)(nil)
)
