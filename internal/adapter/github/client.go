// Package github adapts the github rest api to the app interfaces.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pwalczyk/github-activity/internal/app"
)

// HTTPDoer can execute http request.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client fetches user profiles and public activity from the github rest api.
// This struct is an adapter for app.GithubClient.
type Client struct {
	doer      HTTPDoer
	address   string
	authToken string
	userAgent string
	timeout   time.Duration

	responseMaxSize int
}

var _ app.GithubClient = &Client{}

// NewClient creates new github client.
// authToken is optional.
func NewClient(doer HTTPDoer, address string, authToken string, userAgent string) *Client {
	return &Client{
		doer:      doer,
		address:   address,
		authToken: authToken,
		userAgent: userAgent,
		timeout:   15 * time.Second,

		responseMaxSize: 1024 * 1024 * 10,
	}
}

// UserProfile returns the public profile for given username.
func (c *Client) UserProfile(ctx context.Context, username string) (app.Profile, error) {
	if username == "" {
		return app.Profile{}, app.InvalidRequestError("username cannot be empty")
	}

	body, err := c.get(ctx, "/users/"+url.PathEscape(username), nil)
	if err != nil {
		return app.Profile{}, err
	}

	var resp profileResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return app.Profile{}, app.ParseError(fmt.Sprintf("unmarshalling profile response: %v", err))
	}

	return resp.toProfile(), nil
}

// UserEvents returns up to perPage recent public events for given username,
// in the api's reverse-chronological order.
func (c *Client) UserEvents(ctx context.Context, username string, perPage int) ([]app.Event, error) {
	if username == "" {
		return nil, app.InvalidRequestError("username cannot be empty")
	}
	if perPage < 1 || perPage > 100 {
		return nil, app.InvalidRequestError("perPage must be in range <1..100>")
	}

	v := make(url.Values)
	v.Set("per_page", strconv.Itoa(perPage))

	body, err := c.get(ctx, "/users/"+url.PathEscape(username)+"/events", v)
	if err != nil {
		return nil, err
	}

	var resp eventsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, app.ParseError(fmt.Sprintf("unmarshalling events response: %v", err))
	}

	return resp.toEvents(), nil
}

// RateLimit returns the core api quota state.
func (c *Client) RateLimit(ctx context.Context) (app.RateLimit, error) {
	body, err := c.get(ctx, "/rate_limit", nil)
	if err != nil {
		return app.RateLimit{}, err
	}

	var resp rateLimitResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return app.RateLimit{}, app.ParseError(fmt.Sprintf("unmarshalling rate limit response: %v", err))
	}

	return resp.toRateLimit(), nil
}

func (c *Client) get(ctx context.Context, endpoint string, query url.Values) ([]byte, error) {
	u, err := url.Parse(c.address + endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequest(http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating http request: %w", err)
	}

	return c.makeRequest(ctx, req)
}

func (c *Client) makeRequest(ctx context.Context, req *http.Request) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.authToken != "" {
		req.Header.Set("Authorization", "token "+c.authToken)
	}

	resp, err := c.doer.Do(req.WithContext(ctx))
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, app.TimeoutError(fmt.Sprintf("request to %s timed out after %s", req.URL.Path, c.timeout))
		}
		return nil, app.NetworkError{Cause: err}
	}
	// Always drain body before close to allow connection reuse.
	defer func() {
		_, _ = io.CopyN(io.Discard, resp.Body, 1024)
		resp.Body.Close()
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, int64(c.responseMaxSize)))
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, app.TimeoutError(fmt.Sprintf("request to %s timed out after %s", req.URL.Path, c.timeout))
		}
		return nil, app.NetworkError{Cause: fmt.Errorf("reading http response body: %w", err)}
	}

	if resp.StatusCode >= 400 {
		return nil, app.HTTPError{StatusCode: resp.StatusCode, Body: b}
	}

	return b, nil
}
