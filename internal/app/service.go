package app

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// GithubClient returns github user profile and activity data.
type GithubClient interface {
	UserProfile(ctx context.Context, username string) (Profile, error)
	UserEvents(ctx context.Context, username string, perPage int) ([]Event, error)
	RateLimit(ctx context.Context) (RateLimit, error)
}

// CacheStore provides ttl-bounded storage for fetched results. Values are
// opaque to the store.
type CacheStore interface {
	Get(key string, ttl time.Duration) (json.RawMessage, bool)
	Put(key string, data json.RawMessage)
}

const (
	defaultCacheTTL = 5 * time.Minute

	// The api serves at most 100 events per page.
	maxPerPage = 100
)

// Service is the main app entry point. It orchestrates the cache store and
// the github client into the fetch pipeline.
type Service struct {
	client GithubClient
	store  CacheStore
	ttl    time.Duration
	l      logrus.FieldLogger
}

// NewService creates new Service instance. ttl <= 0 falls back to the
// default 5 minute cache window.
func NewService(client GithubClient, store CacheStore, ttl time.Duration, l logrus.FieldLogger) *Service {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}

	return &Service{
		client: client,
		store:  store,
		ttl:    ttl,
		l:      l,
	}
}

// Fetch returns the user's profile merged with their recent public events,
// filtered by opts.Since and truncated to opts.Limit.
//
// With caching enabled a fresh cached result short-circuits all network
// calls; after a network fetch the result is written back best-effort.
// Cache failures never fail the fetch, they are inspected and logged.
func (s *Service) Fetch(ctx context.Context, username string, opts FetchOptions) (*ActivityResult, error) {
	if username == "" {
		return nil, InvalidRequestError("username cannot be empty")
	}
	if opts.Limit < 1 {
		return nil, InvalidRequestError("limit must be greater than zero")
	}

	key := cacheKey(username, opts)
	if opts.CacheEnabled {
		if data, ok := s.store.Get(key, s.ttl); ok {
			var result ActivityResult
			if err := json.Unmarshal(data, &result); err == nil {
				s.l.WithField("key", key).Debug("serving result from cache")
				return &result, nil
			}
			s.l.WithField("key", key).Warn("discarding unreadable cache entry")
		}
	}

	// The since filter runs client-side, so over-fetch raw events to likely
	// satisfy the limit after filtering. No re-fetch if it under-fills.
	perPage := opts.Limit * 2
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	var (
		profile Profile
		events  []Event
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = s.client.UserProfile(gctx, username)
		return err
	})
	g.Go(func() error {
		var err error
		events, err = s.client.UserEvents(gctx, username, perPage)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, translateAPIError(err, username)
	}

	if opts.Since != nil {
		filtered := make([]Event, 0, len(events))
		for _, e := range events {
			if !e.CreatedAt.Before(*opts.Since) {
				filtered = append(filtered, e)
			}
		}
		events = filtered
	}
	if len(events) > opts.Limit {
		events = events[:opts.Limit]
	}

	result := &ActivityResult{
		Profile: profile,
		Events:  events,
	}

	if opts.CacheEnabled {
		if data, err := json.Marshal(result); err != nil {
			s.l.WithError(err).Warn("couldn't serialize result for cache")
		} else {
			s.store.Put(key, data)
		}
	}

	return result, nil
}

// RateLimitRemaining reports the remaining api quota. Best effort: any
// failure is swallowed and reported as ok=false.
func (s *Service) RateLimitRemaining(ctx context.Context) (RateLimit, bool) {
	rl, err := s.client.RateLimit(ctx)
	if err != nil {
		s.l.WithError(err).Debug("rate limit pre-check failed")
		return RateLimit{}, false
	}

	return rl, true
}

// cacheKey derives the cache key deterministically from the request
// parameters. Same inputs always produce the same key.
func cacheKey(username string, opts FetchOptions) string {
	since := "all"
	if opts.Since != nil {
		since = opts.Since.Format("2006-01-02")
	}

	return "events_" + username + "_" + strconv.Itoa(opts.Limit) + "_" + since
}

// translateAPIError maps the statuses with dedicated meanings for this api.
// Everything else propagates wrapped.
func translateAPIError(err error, username string) error {
	if httpErr, ok := AsHTTPError(err); ok {
		switch httpErr.StatusCode {
		case 404:
			return UserNotFoundError{Username: username}
		case 403:
			return RateLimitExceededError("github api rate limit exceeded, retry later or provide an auth token")
		case 429:
			return TooManyRequestsError("too many requests to the github api")
		}
	}

	return errors.Wrap(err, "fetching user activity")
}
