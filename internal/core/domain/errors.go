package domain

import "errors"

// Error kinds the HTTP layer translates into status codes. Services and
// adapters return these (possibly wrapped); nothing below the handlers
// decides a status code.
var (
	ErrEmailExists    = errors.New("email already exists")
	ErrBadCredentials = errors.New("invalid email or password")
	ErrUserNotFound   = errors.New("user not found")
	ErrTaskNotFound   = errors.New("task not found")

	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)
