package app

import (
	"strings"
	"time"
)

// EventKind classifies github activity events into the fixed set of kinds
// the formatter knows how to render. Unknown api types map to KindOther.
type EventKind string

// Known event kinds.
const (
	KindPush        EventKind = "Push"
	KindCreate      EventKind = "Create"
	KindIssues      EventKind = "Issues"
	KindPullRequest EventKind = "PullRequest"
	KindWatch       EventKind = "Watch"
	KindFork        EventKind = "Fork"
	KindRelease     EventKind = "Release"
	KindOther       EventKind = "Other"
)

// Profile is a snapshot of a github user's public profile, fetched once per
// invocation. Zero string values mean the field is not set on github.
type Profile struct {
	Login       string `json:"login"`
	Name        string `json:"name,omitempty"`
	Bio         string `json:"bio,omitempty"`
	Location    string `json:"location,omitempty"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	PublicRepos int    `json:"publicRepos"`
}

// EventPayload carries the kind-specific fields of an event. Only the fields
// relevant to the event's kind are populated.
type EventPayload struct {
	CommitCount    int    `json:"commitCount,omitempty"`
	Ref            string `json:"ref,omitempty"`
	RefType        string `json:"refType,omitempty"`
	Action         string `json:"action,omitempty"`
	Number         int    `json:"number,omitempty"`
	ForkeeFullName string `json:"forkeeFullName,omitempty"`
	TagName        string `json:"tagName,omitempty"`
}

// Branch returns the push target branch name without the refs/heads/ prefix.
func (p EventPayload) Branch() string {
	return strings.TrimPrefix(p.Ref, "refs/heads/")
}

// Event is one unit of public user activity. Events keep the api's
// reverse-chronological order end to end; nothing in the pipeline re-sorts.
type Event struct {
	Kind      EventKind    `json:"kind"`
	RawType   string       `json:"rawType"`
	Repo      string       `json:"repo"`
	CreatedAt time.Time    `json:"createdAt"`
	Payload   EventPayload `json:"payload"`
}

// ActivityResult is the unit that gets cached and rendered: the user's
// profile merged with the filtered, limited event list.
type ActivityResult struct {
	Profile Profile `json:"profile"`
	Events  []Event `json:"events"`
}

// FetchOptions control a single Fetch call.
type FetchOptions struct {
	Limit        int
	Since        *time.Time
	CacheEnabled bool
}

// RateLimit reports the remaining api quota.
type RateLimit struct {
	Limit     int
	Remaining int
}
