package apperrors

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

// Kind classifies workflow errors so controllers can map them to HTTP
// statuses without string matching.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindInvalidArgument
)

type Error struct {
	kind Kind
	err  error
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Kind() Kind {
	return e.kind
}

func NotFound(format string, args ...interface{}) error {
	return &Error{kind: KindNotFound, err: errors.Errorf(format, args...)}
}

func Conflict(format string, args ...interface{}) error {
	return &Error{kind: KindConflict, err: errors.Errorf(format, args...)}
}

func InvalidArgument(format string, args ...interface{}) error {
	return &Error{kind: KindInvalidArgument, err: errors.Errorf(format, args...)}
}

// Wrap keeps the cause chain while attaching a kind.
func Wrap(err error, kind Kind, message string) error {
	if err == nil {
		return nil
	}
	return &Error{kind: kind, err: errors.Wrap(err, message)}
}

func GetKind(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return KindInternal
}

func IsKind(err error, kind Kind) bool {
	return err != nil && GetKind(err) == kind
}

// HTTPStatus maps the error kind to the REST status code.
func HTTPStatus(err error) int {
	switch GetKind(err) {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	case KindInvalidArgument:
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}
