// Package render turns activity results into display text.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/pwalczyk/github-activity/internal/app"
)

// Describe renders one event as a single line without the time suffix.
// Pure: the output depends on the event alone.
func Describe(e app.Event) string {
	switch e.Kind {
	case app.KindPush:
		noun := "commits"
		if e.Payload.CommitCount == 1 {
			noun = "commit"
		}
		return fmt.Sprintf("Pushed %d %s to %s (%s)", e.Payload.CommitCount, noun, e.Repo, e.Payload.Branch())
	case app.KindCreate:
		if e.Payload.RefType == "repository" {
			return fmt.Sprintf("Created repository in %s", e.Repo)
		}
		return fmt.Sprintf("Created %s %q in %s", e.Payload.RefType, e.Payload.Ref, e.Repo)
	case app.KindIssues:
		return fmt.Sprintf("%s issue #%d in %s", titleCase(e.Payload.Action), e.Payload.Number, e.Repo)
	case app.KindPullRequest:
		return fmt.Sprintf("%s PR #%d in %s", titleCase(e.Payload.Action), e.Payload.Number, e.Repo)
	case app.KindWatch:
		return "Starred " + e.Repo
	case app.KindFork:
		return fmt.Sprintf("Forked %s to %s", e.Repo, e.Payload.ForkeeFullName)
	case app.KindRelease:
		return fmt.Sprintf("Released %s in %s", e.Payload.TagName, e.Repo)
	case app.KindOther:
		return fmt.Sprintf("%s in %s", strings.TrimSuffix(e.RawType, "Event"), e.Repo)
	}

	return fmt.Sprintf("%s in %s", strings.TrimSuffix(e.RawType, "Event"), e.Repo)
}

// Line renders one event with its relative time appended.
func Line(e app.Event, now time.Time) string {
	return Describe(e) + " " + RelativeTime(now, e.CreatedAt)
}

// RelativeTime renders how long ago t was, relative to now. Anything 30 days
// old or more renders as a calendar date instead of a relative form.
func RelativeTime(now, t time.Time) string {
	d := now.Sub(t)

	if minutes := int(d / time.Minute); minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}
	if hours := int(d / time.Hour); hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	if days := int(d / (24 * time.Hour)); days < 30 {
		return fmt.Sprintf("%dd ago", days)
	}

	return t.Format("Jan 2, 2006")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
