// Package apperr is the failure taxonomy every request boundary speaks:
// each failing operation produces a tagged error, and a single translator
// maps the tag to an HTTP status.
package apperr

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Kind int

const (
	KindInternal Kind = iota // storage fault or unexpected defect
	KindValidation
	KindNotFound
	KindBusinessRule // e.g. insufficient stock
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func BusinessRule(format string, args ...any) *Error {
	return &Error{Kind: KindBusinessRule, Message: fmt.Sprintf(format, args...)}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// KindOf classifies any error. Storage lookups that miss surface
// gorm.ErrRecordNotFound and classify as NotFound without wrapping at
// every call site; everything untagged is internal.
func KindOf(err error) Kind {
	var apperr *Error
	if errors.As(err, &apperr) {
		return apperr.Kind
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return KindNotFound
	}
	return KindInternal
}
