package errorx

import (
	"errors"
	"fmt"
)

// Kind is the stable, machine-readable error code returned to clients.
type Kind string

const (
	BadRequest        Kind = "bad_request"
	InvalidIdentity   Kind = "invalid_identity"
	InvalidCategory   Kind = "invalid_category"
	InvalidStats      Kind = "invalid_stats"
	InvalidRole       Kind = "invalid_role"
	SelfFollow        Kind = "self_follow"
	CommentEmpty      Kind = "comment_empty"
	CommentTooLong    Kind = "comment_too_long"
	PostEmpty         Kind = "post_empty"
	NotFound          Kind = "not_found"
	IdentityExhausted Kind = "identity_exhausted"
	StorageFailure    Kind = "storage_failure"
)

// Error pairs a Kind with a human readable message. The wrapped cause is
// kept for logging only and never rendered to clients.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches any *Error of the same kind, so errors.Is(err, errorx.New(k, "")) works.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Storage wraps a datastore error. The public message is generic.
func Storage(cause error) *Error {
	return &Error{Kind: StorageFailure, Message: "storage operation failed", cause: cause}
}

// KindOf returns the kind of err, StorageFailure for foreign errors and "" for nil.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return StorageFailure
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// Public returns the message safe to show to a client.
func Public(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "storage operation failed"
}
