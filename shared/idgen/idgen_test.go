package idgen

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorNew(t *testing.T) {
	gen := Generator(UUID)

	id := gen.New(Thread)
	require.True(t, strings.HasPrefix(id, "thread-"), id)
	_, err := uuid.Parse(strings.TrimPrefix(id, "thread-"))
	assert.NoError(t, err)

	assert.NotEqual(t, gen.New(Comment), gen.New(Comment))
}

func TestSequence(t *testing.T) {
	gen := Sequence()
	assert.Equal(t, "reply-1", gen.New(Reply))
	assert.Equal(t, "like-2", gen.New(Like))
	for i := 0; i < 8; i++ {
		gen()
	}
	assert.Equal(t, "comment-11", gen.New(Comment))
}
