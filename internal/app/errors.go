package app

import (
	"fmt"

	"github.com/pkg/errors"
)

// InvalidRequestError is returned when fetch parameters are invalid.
type InvalidRequestError string

// Error implements error interface.
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequest tells that this error is 'invalid request'.
// Returns always true.
func (InvalidRequestError) IsInvalidRequest() bool {
	return true
}

// IsInvalidRequestError checks if given error is caused by invalid request.
func IsInvalidRequestError(err error) bool {
	type invalidReqErr interface {
		IsInvalidRequest() bool
	}

	err = errors.Cause(err)
	if e, ok := err.(invalidReqErr); ok {
		return e.IsInvalidRequest()
	}

	return false
}

// UserNotFoundError is returned when the queried github user does not exist.
type UserNotFoundError struct {
	Username string
}

// Error implements error interface.
func (e UserNotFoundError) Error() string {
	return fmt.Sprintf("user %q not found", e.Username)
}

// IsUserNotFound tells that this error is 'user not found'.
// Returns always true.
func (UserNotFoundError) IsUserNotFound() bool {
	return true
}

// IsUserNotFoundError checks if given error is caused by a missing user.
func IsUserNotFoundError(err error) bool {
	type notFoundErr interface {
		IsUserNotFound() bool
	}

	err = errors.Cause(err)
	if e, ok := err.(notFoundErr); ok {
		return e.IsUserNotFound()
	}

	return false
}

// RateLimitExceededError is returned when the api quota is exhausted.
type RateLimitExceededError string

// Error implements error interface.
func (e RateLimitExceededError) Error() string {
	return string(e)
}

// IsRateLimitExceeded tells that this error is 'rate limit exceeded'.
// Returns always true.
func (RateLimitExceededError) IsRateLimitExceeded() bool {
	return true
}

// IsRateLimitExceededError checks if given error is caused by an exhausted api quota.
func IsRateLimitExceededError(err error) bool {
	type rateLimitErr interface {
		IsRateLimitExceeded() bool
	}

	err = errors.Cause(err)
	if e, ok := err.(rateLimitErr); ok {
		return e.IsRateLimitExceeded()
	}

	return false
}

// TooManyRequestsError is returned when requests are sent too frequently.
type TooManyRequestsError string

// Error implements error interface.
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// IsTooManyRequests tells that this error is 'too many requests'.
// Returns always true.
func (TooManyRequestsError) IsTooManyRequests() bool {
	return true
}

// IsTooManyRequestsError checks if given error is caused by request throttling.
func IsTooManyRequestsError(err error) bool {
	type tooManyErr interface {
		IsTooManyRequests() bool
	}

	err = errors.Cause(err)
	if e, ok := err.(tooManyErr); ok {
		return e.IsTooManyRequests()
	}

	return false
}

// TimeoutError is returned when a request exceeds its wall-clock ceiling.
type TimeoutError string

// Error implements error interface.
func (e TimeoutError) Error() string {
	return string(e)
}

// IsTimeout tells that this error is 'timeout'.
// Returns always true.
func (TimeoutError) IsTimeout() bool {
	return true
}

// IsTimeoutError checks if given error is caused by a request timeout.
func IsTimeoutError(err error) bool {
	type timeoutErr interface {
		IsTimeout() bool
	}

	err = errors.Cause(err)
	if e, ok := err.(timeoutErr); ok {
		return e.IsTimeout()
	}

	return false
}

// ParseError is returned when a successful response carries a body that
// cannot be decoded.
type ParseError string

// Error implements error interface.
func (e ParseError) Error() string {
	return string(e)
}

// IsParseError checks if given error is caused by an undecodable response body.
func IsParseError(err error) bool {
	_, ok := errors.Cause(err).(ParseError)
	return ok
}

// NetworkError is returned on transport-level failures (dns, connection
// reset and the like). It carries the underlying cause.
type NetworkError struct {
	Cause error
}

// Error implements error interface.
func (e NetworkError) Error() string {
	return "network error: " + e.Cause.Error()
}

// Unwrap returns the underlying transport failure.
func (e NetworkError) Unwrap() error {
	return e.Cause
}

// IsNetworkError checks if given error is caused by a transport failure.
func IsNetworkError(err error) bool {
	_, ok := errors.Cause(err).(NetworkError)
	return ok
}

// HTTPError is the catch-all for http responses with status >= 400 that have
// no dedicated translation. The body is kept raw, never interpreted.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

// Error implements error interface.
func (e HTTPError) Error() string {
	return fmt.Sprintf("got invalid http status code: %d", e.StatusCode)
}

// AsHTTPError extracts an HTTPError from err's cause chain.
func AsHTTPError(err error) (HTTPError, bool) {
	e, ok := errors.Cause(err).(HTTPError)
	return e, ok
}
