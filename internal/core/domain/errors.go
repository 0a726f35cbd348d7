package domain

import (
	"fmt"
	"strings"
)

// Code identifies an error class across the API surface. Codes are part of
// the wire contract: clients branch on them, so they never change meaning.
type Code string

const (
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeForbidden    Code = "FORBIDDEN"
	CodeMissingToken Code = "MISSING_TOKEN"
	CodeTokenExpired Code = "TOKEN_EXPIRED"
	CodeTokenInvalid Code = "INVALID_TOKEN"
	CodeUserNotFound Code = "USER_NOT_FOUND"
	CodeNotFound     Code = "NOT_FOUND"
	CodeConflict     Code = "CONFLICT"
	CodeValidation   Code = "VALIDATION_ERROR"
	CodeConfig       Code = "CONFIG_ERROR"
	CodeInternal     Code = "INTERNAL_ERROR"
)

// Error is the uniform typed failure returned by every fallible operation in
// the core. Handlers translate it to an HTTP status at the boundary.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches errors by code so errors.Is works against the sentinels below
// even when an error has been wrapped with additional context.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

var (
	ErrUnauthorized       = &Error{CodeUnauthorized, "authentication required"}
	ErrMissingToken       = &Error{CodeMissingToken, "authentication required"}
	ErrTokenExpired       = &Error{CodeTokenExpired, "session expired"}
	ErrTokenInvalid       = &Error{CodeTokenInvalid, "invalid token"}
	ErrUserNotFound       = &Error{CodeUserNotFound, "user not found"}
	ErrInvalidCredentials = &Error{CodeUnauthorized, "invalid username or password"}
	ErrUsernameTaken      = &Error{CodeConflict, "username already exists"}
	ErrArticleNotFound    = &Error{CodeNotFound, "article not found"}
	ErrCategoryNotFound   = &Error{CodeNotFound, "category not found"}
	ErrCommentNotFound    = &Error{CodeNotFound, "comment not found"}
	ErrConfig             = &Error{CodeConfig, "server configuration error"}
	ErrInternal           = &Error{CodeInternal, "internal server error"}
)

// Forbidden builds the denial returned when a principal's role is not in a
// route's allow-list. The message names the roles that would have been
// accepted.
func Forbidden(required ...Role) *Error {
	names := make([]string, len(required))
	for i, r := range required {
		names[i] = string(r)
	}
	return &Error{
		Code:    CodeForbidden,
		Message: fmt.Sprintf("insufficient privileges, required roles: %s", strings.Join(names, ", ")),
	}
}
