// Package apperror classifies domain errors so transport code can map them
// to status codes without knowing which domain package raised them.
package apperror

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Call sites attach messages through the *f constructors and
// callers classify with errors.Is against these.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// NotFoundf builds an error matching ErrNotFound.
func NotFoundf(format string, args ...any) error {
	return &kindError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

// Validationf builds an error matching ErrValidation.
func Validationf(format string, args ...any) error {
	return &kindError{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

// Conflictf builds an error matching ErrConflict.
func Conflictf(format string, args ...any) error {
	return &kindError{kind: ErrConflict, msg: fmt.Sprintf(format, args...)}
}
