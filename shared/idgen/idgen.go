// Package idgen produces opaque, kind-prefixed entity ids ("thread-...", "comment-...").
package idgen

import (
	"strconv"

	"github.com/google/uuid"
)

type Kind string

const (
	Thread  Kind = "thread"
	Comment Kind = "comment"
	Reply   Kind = "reply"
	Like    Kind = "like"
)

// Generator returns a fresh unique token on every call.
type Generator func() string

func UUID() string {
	return uuid.NewString()
}

func (g Generator) New(kind Kind) string {
	return string(kind) + "-" + g()
}

// Sequence returns a deterministic generator ("1", "2", ...) for tests.
func Sequence() Generator {
	n := 0
	return func() string {
		n++
		return strconv.Itoa(n)
	}
}
