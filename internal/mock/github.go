package mock

import (
	"context"

	"github.com/pwalczyk/github-activity/internal/app"
)

// GithubClient mocks app.GithubClient.
type GithubClient struct {
	UserProfileFunc func(ctx context.Context, username string) (app.Profile, error)
	UserEventsFunc  func(ctx context.Context, username string, perPage int) ([]app.Event, error)
	RateLimitFunc   func(ctx context.Context) (app.RateLimit, error)
}

// UserProfile returns the public profile for given username.
func (m *GithubClient) UserProfile(ctx context.Context, username string) (app.Profile, error) {
	if m.UserProfileFunc != nil {
		return m.UserProfileFunc(ctx, username)
	}

	return app.Profile{}, nil
}

// UserEvents returns recent public events for given username.
func (m *GithubClient) UserEvents(ctx context.Context, username string, perPage int) ([]app.Event, error) {
	if m.UserEventsFunc != nil {
		return m.UserEventsFunc(ctx, username, perPage)
	}

	return []app.Event{}, nil
}

// RateLimit returns the core api quota state.
func (m *GithubClient) RateLimit(ctx context.Context) (app.RateLimit, error) {
	if m.RateLimitFunc != nil {
		return m.RateLimitFunc(ctx)
	}

	return app.RateLimit{}, nil
}
