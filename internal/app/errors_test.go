package app_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/pwalczyk/github-activity/internal/app"
)

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{
			name:  "user not found",
			err:   app.UserNotFoundError{Username: "octocat"},
			check: app.IsUserNotFoundError,
			want:  true,
		},
		{
			name:  "wrapped user not found",
			err:   errors.Wrap(app.UserNotFoundError{Username: "octocat"}, "fetching user activity"),
			check: app.IsUserNotFoundError,
			want:  true,
		},
		{
			name:  "other error is not user not found",
			err:   errors.New("boom"),
			check: app.IsUserNotFoundError,
			want:  false,
		},
		{
			name:  "rate limit exceeded",
			err:   errors.Wrap(app.RateLimitExceededError("quota exhausted"), "ctx"),
			check: app.IsRateLimitExceededError,
			want:  true,
		},
		{
			name:  "too many requests",
			err:   app.TooManyRequestsError("slow down"),
			check: app.IsTooManyRequestsError,
			want:  true,
		},
		{
			name:  "timeout",
			err:   errors.Wrap(app.TimeoutError("deadline"), "ctx"),
			check: app.IsTimeoutError,
			want:  true,
		},
		{
			name:  "parse error",
			err:   app.ParseError("bad json"),
			check: app.IsParseError,
			want:  true,
		},
		{
			name:  "network error",
			err:   app.NetworkError{Cause: errors.New("connection reset")},
			check: app.IsNetworkError,
			want:  true,
		},
		{
			name:  "invalid request",
			err:   app.InvalidRequestError("empty username"),
			check: app.IsInvalidRequestError,
			want:  true,
		},
		{
			name:  "timeout is not a network error",
			err:   app.TimeoutError("deadline"),
			check: app.IsNetworkError,
			want:  false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}

func TestAsHTTPError(t *testing.T) {
	t.Parallel()

	httpErr, ok := app.AsHTTPError(errors.Wrap(app.HTTPError{StatusCode: 500, Body: []byte("oops")}, "ctx"))
	assert.True(t, ok)
	assert.Equal(t, 500, httpErr.StatusCode)
	assert.Equal(t, []byte("oops"), httpErr.Body)

	_, ok = app.AsHTTPError(errors.New("boom"))
	assert.False(t, ok)
}

func TestUserNotFoundErrorMessage(t *testing.T) {
	t.Parallel()

	err := app.UserNotFoundError{Username: "octocat"}
	assert.Contains(t, err.Error(), "octocat")
}

func TestNetworkErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("dns failure")
	err := app.NetworkError{Cause: cause}
	assert.Equal(t, cause, err.Unwrap())
	assert.Contains(t, err.Error(), "dns failure")
}
