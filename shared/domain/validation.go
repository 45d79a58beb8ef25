package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	internal_errors "github.com/forum-dev/forum/shared/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func NewThreadCreationData(payload Payload, owner UserId) (ThreadCreationData, error) {
	props, mismatch := readProperties(payload, "title", "body")
	data := ThreadCreationData{Title: props["title"], Body: props["body"], Owner: owner}
	return data, checkCreationData(data, mismatch, "thread")
}

func NewCommentCreationData(payload Payload, threadId ThreadId, owner UserId) (CommentCreationData, error) {
	props, mismatch := readProperties(payload, "content")
	data := CommentCreationData{Content: props["content"], ThreadId: threadId, Owner: owner}
	return data, checkCreationData(data, mismatch, "comment")
}

func NewReplyCreationData(payload Payload, commentId CommentId, owner UserId) (ReplyCreationData, error) {
	props, mismatch := readProperties(payload, "content")
	data := ReplyCreationData{Content: props["content"], CommentId: commentId, Owner: owner}
	return data, checkCreationData(data, mismatch, "reply")
}

// readProperties copies the string properties named by keys out of payload.
// Empty values (absent, null, "", false, 0) stay empty so the required rule
// reports them. Any other non-string value is kept in its printed form, so it
// counts as present, and flags a type mismatch.
func readProperties(payload Payload, keys ...string) (map[string]string, bool) {
	props := make(map[string]string, len(keys))
	mismatch := false
	for _, key := range keys {
		switch v := payload[key].(type) {
		case nil:
		case string:
			props[key] = v
		case bool:
			if v {
				props[key] = "true"
				mismatch = true
			}
		case float64:
			if v != 0 {
				props[key] = fmt.Sprint(v)
				mismatch = true
			}
		default:
			props[key] = fmt.Sprint(v)
			mismatch = true
		}
	}
	return props, mismatch
}

// missing properties win over type mismatches
func checkCreationData(data any, mismatch bool, entity string) error {
	if err := validate.Struct(data); err != nil {
		return &internal_errors.ValidationError{
			Reason:  internal_errors.MissingProperty,
			Message: fmt.Sprintf("cannot create new %s because required property is missing", entity),
		}
	}
	if mismatch {
		return &internal_errors.ValidationError{
			Reason:  internal_errors.TypeMismatch,
			Message: fmt.Sprintf("cannot create new %s because data type is invalid", entity),
		}
	}
	return nil
}
