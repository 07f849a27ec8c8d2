// Package apperr defines the error classes surfaced to API callers and how
// each one maps onto an HTTP status.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	CodeValidation      Code = "VALIDATION_ERROR"
	CodeAuth            Code = "AUTH_ERROR"
	CodeNotFound        Code = "NOT_FOUND"
	CodeNoAirports      Code = "NO_AIRPORTS_FOUND"
	CodeProvider        Code = "PROVIDER_ERROR"
	CodeInternalFailure Code = "INTERNAL_FAILURE"
)

// Error is the structured error carried from the provider clients up to the
// HTTP handlers. UpstreamStatus is zero for transport failures.
type Error struct {
	Code           Code
	Message        string
	UpstreamStatus int
	UpstreamBody   string
	Err            error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus maps the error class onto the response status.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeAuth:
		return http.StatusServiceUnavailable
	case CodeNotFound, CodeNoAirports:
		return http.StatusNotFound
	case CodeProvider:
		if e.UpstreamStatus >= 400 && e.UpstreamStatus < 500 {
			return http.StatusBadRequest
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func Validation(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

// Auth builds an AuthError. status and body are the credential endpoint's
// response, zero/empty when credentials were never sent.
func Auth(msg string, status int, body string, err error) *Error {
	return &Error{Code: CodeAuth, Message: msg, UpstreamStatus: status, UpstreamBody: body, Err: err}
}

// NoAirports reports an empty ranked airport set for a city.
func NoAirports(city string, radiusKm float64, scanned int) *Error {
	return &Error{
		Code:    CodeNoAirports,
		Message: fmt.Sprintf("No airports found near %s (searched %d airports in %gkm radius)", city, scanned, radiusKm),
	}
}

// Provider reports a non-2xx response from an upstream API.
func Provider(op string, status int, body string) *Error {
	return &Error{
		Code:           CodeProvider,
		Message:        fmt.Sprintf("%s: upstream returned %d %s - %s", op, status, http.StatusText(status), body),
		UpstreamStatus: status,
		UpstreamBody:   body,
	}
}

// Transport reports a failure to reach an upstream API (dial, timeout, decode).
func Transport(op string, err error) *Error {
	return &Error{Code: CodeProvider, Message: op + " failed", Err: err}
}

// As returns the *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// CodeOf returns the class of err, CodeInternalFailure for unclassified errors.
func CodeOf(err error) Code {
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return CodeInternalFailure
}

func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}
