package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an application error into the failure taxonomy shared by
// every service: invalid input, missing entity, illegal state, external
// collaborator failure, or unexpected internal failure.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindExternal
)

// AppError is a classified application error with a stable machine-readable
// code and a human-readable message.
type AppError struct {
	Kind    Kind
	Code    string
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

// New creates a classified error
func New(kind Kind, code, message string) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message}
}

// Wrap creates a classified error wrapping an underlying cause
func Wrap(kind Kind, code, message string, err error) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message, Err: err}
}

// Validation reports malformed or missing input, rejected before any mutation
func Validation(code, message string) *AppError {
	return New(KindValidation, code, message)
}

// NotFound reports an absent referenced entity
func NotFound(code, message string) *AppError {
	return New(KindNotFound, code, message)
}

// Conflict reports an illegal state transition or duplicate mutation
func Conflict(code, message string) *AppError {
	return New(KindConflict, code, message)
}

// External reports a failure of an external collaborator
func External(code, message string, err error) *AppError {
	return Wrap(KindExternal, code, message, err)
}

// Internal reports an unexpected persistence or infrastructure failure
func Internal(message string, err error) *AppError {
	return Wrap(KindInternal, "internal_error", message, err)
}

// KindOf returns the kind of err, or KindInternal for unclassified errors
func KindOf(err error) Kind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// CodeOf returns the machine code of err, or "internal_error" when unclassified
func CodeOf(err error) string {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code
	}
	return "internal_error"
}

// Is reports whether err is an AppError carrying the given code
func Is(err error, code string) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}
