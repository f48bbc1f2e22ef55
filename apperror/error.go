package apperror

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInfrastructure Kind = iota
	KindConflict
	KindValidation
	KindUnauthorized
	KindForbidden
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	default:
		return "infrastructure"
	}
}

// Error is the typed failure returned by every domain operation. Two errors
// are the same failure when their codes match, so errors.Is works against
// the sentinels below even after Wrap or Detail.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

func newError(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

var (
	ErrEmailAlreadyExists = newError(KindConflict, "email_already_exists", "email already exists")
	ErrDuplicateWorkspace = newError(KindConflict, "duplicate_workspace", "workspace already exists")

	ErrInvalidMembership = newError(KindValidation, "invalid_membership", "invalid membership")
	ErrInvalidArgument   = newError(KindValidation, "invalid_argument", "invalid argument")
	ErrInvalidRequest    = newError(KindValidation, "invalid_request", "invalid request")

	ErrInvalidToken   = newError(KindUnauthorized, "invalid_token", "invalid token")
	ErrExpiredToken   = newError(KindUnauthorized, "expired_token", "token has expired")
	ErrMalformedToken = newError(KindUnauthorized, "malformed_token", "malformed token")

	ErrInvalidCredentials        = newError(KindForbidden, "invalid_credentials", "invalid email or password")
	ErrCrossWorkspaceDenied      = newError(KindForbidden, "cross_workspace_denied", "chat belongs to another workspace")
	ErrNotWorkspaceOwner         = newError(KindForbidden, "not_workspace_owner", "only the workspace owner can delete the chat")
	ErrOwnershipAssignmentFailed = newError(KindForbidden, "ownership_assignment_failed", "owner is not a member of the workspace")
	ErrNotChatMember             = newError(KindForbidden, "not_chat_member", "user is not a member of the chat")

	ErrNotFound         = newError(KindNotFound, "not_found", "not found")
	ErrWorkspaceMissing = newError(KindNotFound, "workspace_missing", "workspace of chat does not exist")

	ErrSigningError        = newError(KindInfrastructure, "signing_error", "failed to sign token")
	ErrMalformedCredential = newError(KindInfrastructure, "malformed_credential", "malformed password hash")
)

// Detail returns a copy of sentinel carrying a more specific message.
func Detail(sentinel *Error, message string) *Error {
	return &Error{Kind: sentinel.Kind, Code: sentinel.Code, Message: message}
}

// Wrap returns a copy of sentinel with cause attached.
func Wrap(sentinel *Error, cause error) *Error {
	return &Error{Kind: sentinel.Kind, Code: sentinel.Code, Message: sentinel.Message, Err: cause}
}

// KindOf reports the kind of err, falling back to KindInfrastructure for
// anything that is not an *Error.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInfrastructure
}
