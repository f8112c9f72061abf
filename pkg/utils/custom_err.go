package utils

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an AppError. The kind, not the message, decides the
// HTTP status and whether details may reach the client.
type ErrorKind string

const (
	KindUnauthenticated ErrorKind = "UNAUTHENTICATED"
	KindForbidden       ErrorKind = "FORBIDDEN"
	KindValidation      ErrorKind = "VALIDATION_FAILED"
	KindConflict        ErrorKind = "CONFLICT"
	KindNotFound        ErrorKind = "NOT_FOUND"
	KindUpstream        ErrorKind = "UPSTREAM_FAILURE"
	KindStorage         ErrorKind = "STORAGE_FAILURE"
)

// Client facing messages that tests and handlers share.
const (
	MsgUnauthorized     = "Unauthorized"
	MsgForbidden        = "Forbidden: insufficient permissions"
	MsgInternal         = "Internal server error"
	MsgCategoryExists   = "A category with this name already exists"
	MsgDestinationExist = "A destination with this name already exists"
	MsgEmailExists      = "An account with this email already exists"
	MsgBadCredentials   = "Invalid email or password"
)

type AppError struct {
	Kind    ErrorKind
	Field   string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func Unauthenticated() *AppError {
	return &AppError{Kind: KindUnauthenticated, Message: MsgUnauthorized}
}

func Forbidden() *AppError {
	return &AppError{Kind: KindForbidden, Message: MsgForbidden}
}

func Validation(field, message string) *AppError {
	return &AppError{Kind: KindValidation, Field: field, Message: message}
}

func Conflict(field, message string) *AppError {
	return &AppError{Kind: KindConflict, Field: field, Message: message}
}

func NotFound(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func Upstream(err error) *AppError {
	return &AppError{Kind: KindUpstream, Message: MsgInternal, Err: err}
}

func Storage(err error) *AppError {
	return &AppError{Kind: KindStorage, Message: MsgInternal, Err: err}
}

// KindOf returns the kind of the first AppError in err's chain, or "" when
// err carries none.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}
