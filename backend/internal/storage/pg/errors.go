package pg

import (
	"fmt"
	"strings"

	internal_errors "github.com/forum-dev/forum/shared/errors"
	shared_pg "github.com/forum-dev/forum/shared/storage/pg"
)

// insertError maps a foreign key violation to a 404 naming the missing
// referenced row. The parent can vanish between the guard and the insert,
// and owners are only known once mirrored from the auth service.
func insertError(err error, entity string) error {
	if shared_pg.IsForeignKeyViolation(err) {
		return internal_errors.NotFound(missingReference(shared_pg.ViolatedConstraint(err)))
	}
	return fmt.Errorf("failed to insert %s: %w", entity, err)
}

// Constraint names follow the postgres default <table>_<column>_fkey.
func missingReference(constraint string) string {
	switch {
	case strings.HasSuffix(constraint, "_thread_id_fkey"):
		return "thread not found"
	case strings.HasSuffix(constraint, "_comment_id_fkey"):
		return "comment not found"
	default:
		return "user not found"
	}
}
