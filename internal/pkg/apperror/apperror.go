package apperror

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindUnauthorized
	KindForbidden
	KindInvalidArgument
	KindConflict
	KindServiceUnavailable
	KindUpstreamFormat
)

// AppError is the taxonomy services speak. Controllers never build HTTP
// responses from raw errors; the error-handler middleware maps kinds to
// status codes in one place.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

func NotFound(message string) *AppError {
	return New(KindNotFound, message)
}

func Unauthorized(message string) *AppError {
	return New(KindUnauthorized, message)
}

func Forbidden(message string) *AppError {
	return New(KindForbidden, message)
}

func InvalidArgument(message string) *AppError {
	return New(KindInvalidArgument, message)
}

func Conflict(message string) *AppError {
	return New(KindConflict, message)
}

func ServiceUnavailable(message string, err error) *AppError {
	return Wrap(KindServiceUnavailable, message, err)
}

func UpstreamFormat(message string, err error) *AppError {
	return Wrap(KindUpstreamFormat, message, err)
}

// KindOf extracts the taxonomy kind, defaulting to internal for plain errors.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}
