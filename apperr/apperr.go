// Package apperr carries an HTTP status alongside an error so handlers
// can map failures from the service layers onto responses without
// string matching.
package apperr

import (
	"fmt"
	"net/http"
)

type Error struct {
	Err        error
	Msg        string
	StatusCode int
}

func New(err error, statusCode int, msg string, args ...any) *Error {
	return &Error{
		Err:        err,
		Msg:        fmt.Sprintf(msg, args...),
		StatusCode: statusCode,
	}
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports a missing or empty required field.
func Validation(msg string, args ...any) *Error {
	return New(nil, http.StatusBadRequest, msg, args...)
}

// NotFound reports a referenced record that does not exist.
func NotFound(msg string, args ...any) *Error {
	return New(nil, http.StatusNotFound, msg, args...)
}

// InvalidInput reports an upload that cannot be processed.
func InvalidInput(err error, msg string, args ...any) *Error {
	return New(err, http.StatusBadRequest, msg, args...)
}

// Generation reports a failure of the language-model service or an
// unusable payload from it.
func Generation(err error, msg string, args ...any) *Error {
	return New(err, http.StatusInternalServerError, msg, args...)
}
