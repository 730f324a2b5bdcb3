package github

import (
	"encoding/json"
	"time"

	"github.com/pwalczyk/github-activity/internal/app"
)

type profileResponse struct {
	Login       string `json:"login"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	PublicRepos int    `json:"public_repos"`
}

func (r profileResponse) toProfile() app.Profile {
	return app.Profile{
		Login:       r.Login,
		Name:        r.Name,
		Bio:         r.Bio,
		Location:    r.Location,
		Followers:   r.Followers,
		Following:   r.Following,
		PublicRepos: r.PublicRepos,
	}
}

type eventsResponse []eventResponse

type eventResponse struct {
	Type      string          `json:"type"`
	CreatedAt time.Time       `json:"created_at"`
	Repo      eventRepo       `json:"repo"`
	Payload   json.RawMessage `json:"payload"`
}

type eventRepo struct {
	Name string `json:"name"`
}

func (r eventsResponse) toEvents() []app.Event {
	es := make([]app.Event, 0, len(r))
	for _, el := range r {
		es = append(es, el.toEvent())
	}

	return es
}

// toEvent classifies the api event type and decodes its kind-specific
// payload. An undecodable payload demotes the event to KindOther so it
// still renders as a generic line.
func (r eventResponse) toEvent() app.Event {
	e := app.Event{
		Kind:      classifyKind(r.Type),
		RawType:   r.Type,
		Repo:      r.Repo.Name,
		CreatedAt: r.CreatedAt,
	}

	var err error
	switch e.Kind {
	case app.KindPush:
		var p pushPayload
		if err = json.Unmarshal(r.Payload, &p); err == nil {
			e.Payload.CommitCount = p.Size
			e.Payload.Ref = p.Ref
		}
	case app.KindCreate:
		var p createPayload
		if err = json.Unmarshal(r.Payload, &p); err == nil {
			e.Payload.Ref = p.Ref
			e.Payload.RefType = p.RefType
		}
	case app.KindIssues:
		var p issuesPayload
		if err = json.Unmarshal(r.Payload, &p); err == nil {
			e.Payload.Action = p.Action
			e.Payload.Number = p.Issue.Number
		}
	case app.KindPullRequest:
		var p pullRequestPayload
		if err = json.Unmarshal(r.Payload, &p); err == nil {
			e.Payload.Action = p.Action
			e.Payload.Number = p.PullRequest.Number
		}
	case app.KindFork:
		var p forkPayload
		if err = json.Unmarshal(r.Payload, &p); err == nil {
			e.Payload.ForkeeFullName = p.Forkee.FullName
		}
	case app.KindRelease:
		var p releasePayload
		if err = json.Unmarshal(r.Payload, &p); err == nil {
			e.Payload.TagName = p.Release.TagName
		}
	case app.KindWatch, app.KindOther:
		// No payload fields needed.
	}
	if err != nil {
		e.Kind = app.KindOther
		e.Payload = app.EventPayload{}
	}

	return e
}

func classifyKind(apiType string) app.EventKind {
	switch apiType {
	case "PushEvent":
		return app.KindPush
	case "CreateEvent":
		return app.KindCreate
	case "IssuesEvent":
		return app.KindIssues
	case "PullRequestEvent":
		return app.KindPullRequest
	case "WatchEvent":
		return app.KindWatch
	case "ForkEvent":
		return app.KindFork
	case "ReleaseEvent":
		return app.KindRelease
	default:
		return app.KindOther
	}
}

type pushPayload struct {
	Size int    `json:"size"`
	Ref  string `json:"ref"`
}

type createPayload struct {
	Ref     string `json:"ref"`
	RefType string `json:"ref_type"`
}

type issuesPayload struct {
	Action string `json:"action"`
	Issue  struct {
		Number int `json:"number"`
	} `json:"issue"`
}

type pullRequestPayload struct {
	Action      string `json:"action"`
	PullRequest struct {
		Number int `json:"number"`
	} `json:"pull_request"`
}

type forkPayload struct {
	Forkee struct {
		FullName string `json:"full_name"`
	} `json:"forkee"`
}

type releasePayload struct {
	Release struct {
		TagName string `json:"tag_name"`
	} `json:"release"`
}

type rateLimitResponse struct {
	Resources struct {
		Core struct {
			Limit     int `json:"limit"`
			Remaining int `json:"remaining"`
		} `json:"core"`
	} `json:"resources"`
}

func (r rateLimitResponse) toRateLimit() app.RateLimit {
	return app.RateLimit{
		Limit:     r.Resources.Core.Limit,
		Remaining: r.Resources.Core.Remaining,
	}
}
