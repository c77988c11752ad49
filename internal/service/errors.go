package service

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure for transport mapping.
type Kind string

const (
	KindValidation Kind = "validation"
	KindPinning    Kind = "pinning"
	KindStore      Kind = "store"
)

var (
	ErrNoFile    = errors.New("no file uploaded")
	ErrEmptyFile = errors.New("uploaded file is empty")
)

// Error is the tagged failure returned by LandService. Detail is safe to show
// to callers; Err keeps the cause for logs and errors.Is.
type Error struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of err, or "" when err is not a *Error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return ""
}

func validationError(err error) *Error {
	return &Error{Kind: KindValidation, Detail: err.Error(), Err: err}
}

func pinningError(err error) *Error {
	return &Error{Kind: KindPinning, Detail: err.Error(), Err: err}
}

func storeError(detail string, err error) *Error {
	return &Error{Kind: KindStore, Detail: detail, Err: err}
}
