package github

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pwalczyk/github-activity/internal/app"
	"github.com/pwalczyk/github-activity/internal/mock"
)

const testProfileJSON = `{
	"login": "octocat",
	"name": "The Octocat",
	"bio": "Just a cat",
	"location": "San Francisco",
	"followers": 100,
	"following": 10,
	"public_repos": 8
}`

const testEventsJSON = `[
	{
		"type": "PushEvent",
		"created_at": "2024-02-10T12:00:00Z",
		"repo": {"name": "octocat/hello-world"},
		"payload": {"size": 2, "ref": "refs/heads/main"}
	},
	{
		"type": "WatchEvent",
		"created_at": "2024-02-09T12:00:00Z",
		"repo": {"name": "golang/go"},
		"payload": {"action": "started"}
	}
]`

func TestClientUserProfile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		doer     *mock.HTTPDoer
		username string
		want     app.Profile
		wantErr  func(error) bool
	}{
		{
			name:     "empty username",
			username: "",
			wantErr:  app.IsInvalidRequestError,
		},
		{
			name: "status ok, body ok",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{[]byte(testProfileJSON)},
			},
			username: "octocat",
			want: app.Profile{
				Login:       "octocat",
				Name:        "The Octocat",
				Bio:         "Just a cat",
				Location:    "San Francisco",
				Followers:   100,
				Following:   10,
				PublicRepos: 8,
			},
		},
		{
			name: "status not found",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusNotFound},
				Bodies:   [][]byte{[]byte(`{"message": "Not Found"}`)},
			},
			username: "nosuchuser",
			wantErr: func(err error) bool {
				httpErr, ok := app.AsHTTPError(err)
				return ok && httpErr.StatusCode == http.StatusNotFound
			},
		},
		{
			name: "status ok, malformed body",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{[]byte(`{not json`)},
			},
			username: "octocat",
			wantErr:  app.IsParseError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.doer, "https://fake", "secrettoken", "github-activity-cli")
			got, err := c.UserProfile(context.Background(), tt.username)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			require.Len(t, tt.doer.Responses, 1)
			req := tt.doer.Responses[0].Request
			assert.Equal(t, "/users/octocat", req.URL.Path)
			checkAPIHeaders(t, req)
		})
	}
}

func TestClientUserEvents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		doer      *mock.HTTPDoer
		username  string
		perPage   int
		wantCount int
		wantErr   func(error) bool
	}{
		{
			name:     "empty username",
			username: "",
			perPage:  30,
			wantErr:  app.IsInvalidRequestError,
		},
		{
			name:     "perPage too small",
			username: "octocat",
			perPage:  0,
			wantErr:  app.IsInvalidRequestError,
		},
		{
			name:     "perPage too large",
			username: "octocat",
			perPage:  101,
			wantErr:  app.IsInvalidRequestError,
		},
		{
			name: "status ok, body ok",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{[]byte(testEventsJSON)},
			},
			username:  "octocat",
			perPage:   30,
			wantCount: 2,
		},
		{
			name: "status ok, malformed body",
			doer: &mock.HTTPDoer{
				Statuses: []int{http.StatusOK},
				Bodies:   [][]byte{[]byte(`{not json`)},
			},
			username: "octocat",
			perPage:  30,
			wantErr:  app.IsParseError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.doer, "https://fake", "secrettoken", "github-activity-cli")
			got, err := c.UserEvents(context.Background(), tt.username, tt.perPage)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantCount)

			require.Len(t, tt.doer.Responses, 1)
			req := tt.doer.Responses[0].Request
			assert.Equal(t, "/users/octocat/events", req.URL.Path)
			assert.Equal(t, "30", req.URL.Query().Get("per_page"))
			checkAPIHeaders(t, req)
		})
	}
}

func TestClientRateLimit(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		Statuses: []int{http.StatusOK},
		Bodies:   [][]byte{[]byte(`{"resources": {"core": {"limit": 60, "remaining": 42}}}`)},
	}

	c := NewClient(doer, "https://fake", "", "github-activity-cli")
	got, err := c.RateLimit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, app.RateLimit{Limit: 60, Remaining: 42}, got)

	require.Len(t, doer.Responses, 1)
	req := doer.Responses[0].Request
	assert.Equal(t, "/rate_limit", req.URL.Path)
	// Without a token no authorization header is sent.
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestClientNetworkError(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		DoFunc: func(r *http.Request) (*http.Response, error) {
			return nil, assert.AnError
		},
	}

	c := NewClient(doer, "https://fake", "", "github-activity-cli")
	_, err := c.UserProfile(context.Background(), "octocat")
	require.Error(t, err)
	assert.True(t, app.IsNetworkError(err), "unexpected error: %v", err)
}

func TestClientTimeout(t *testing.T) {
	t.Parallel()

	doer := &mock.HTTPDoer{
		DoFunc: func(r *http.Request) (*http.Response, error) {
			<-r.Context().Done()
			return nil, r.Context().Err()
		},
	}

	c := NewClient(doer, "https://fake", "", "github-activity-cli")
	c.timeout = 20 * time.Millisecond

	_, err := c.UserProfile(context.Background(), "octocat")
	require.Error(t, err)
	assert.True(t, app.IsTimeoutError(err), "unexpected error: %v", err)
}

func checkAPIHeaders(t *testing.T, r *http.Request) {
	t.Helper()

	assert.Equal(t, "application/vnd.github.v3+json", r.Header.Get("Accept"))
	assert.Equal(t, "github-activity-cli", r.Header.Get("User-Agent"))
	assert.Equal(t, "token secrettoken", r.Header.Get("Authorization"))
}
