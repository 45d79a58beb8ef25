package pg

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/forum-dev/forum/shared/config"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestConnString(t *testing.T) {
	got := ConnString(config.Pg{Host: "db", Port: 5433, User: "u", Password: "p", Dbname: "forum"})
	assert.Equal(t, "host=db port=5433 user=u password=p dbname=forum sslmode=disable", got)
}

func TestWithDefaults(t *testing.T) {
	assert.Equal(t, DefaultPool(), withDefaults(config.PgPool{}))

	custom := config.PgPool{MaxOpenConns: 3, MaxIdleConns: 1, ConnMaxLifetime: time.Second, ConnMaxIdleTime: time.Second}
	assert.Equal(t, custom, withDefaults(custom))

	partial := withDefaults(config.PgPool{MaxOpenConns: 7})
	assert.Equal(t, 7, partial.MaxOpenConns)
	assert.Equal(t, DefaultPool().MaxIdleConns, partial.MaxIdleConns)
}

func TestErrorClassification(t *testing.T) {
	unique := fmt.Errorf("failed to insert like: %w", &pq.Error{Code: "23505"})
	fk := &pq.Error{Code: "23503"}

	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsForeignKeyViolation(unique))
	assert.True(t, IsForeignKeyViolation(fk))
	assert.False(t, IsUniqueViolation(errors.New("plain")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestViolatedConstraint(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pq.Error{Code: "23503", Constraint: "threads_owner_fkey"})
	assert.Equal(t, "threads_owner_fkey", ViolatedConstraint(err))
	assert.Empty(t, ViolatedConstraint(errors.New("plain")))
}
