package render

import (
	"fmt"
	"io"
	"time"

	"github.com/pwalczyk/github-activity/internal/app"
)

// Renderer composes the profile header, the optional stats block and the
// event lines into the final output.
type Renderer struct {
	out io.Writer
	now func() time.Time
}

// NewRenderer creates new Renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{
		out: out,
		now: time.Now,
	}
}

// Render writes the full view for result. stats may be nil. With groupByDate
// events are partitioned by local calendar date in first-seen date order,
// each section keeping its events in original order.
func (r *Renderer) Render(result *app.ActivityResult, stats *app.StatsSummary, groupByDate bool) {
	now := r.now()

	r.renderHeader(result.Profile)
	if stats != nil {
		r.renderStats(*stats)
	}

	if len(result.Events) == 0 {
		fmt.Fprintln(r.out, "No activity found.")
		return
	}

	if groupByDate {
		r.renderGrouped(result.Events, now)
		return
	}
	for _, e := range result.Events {
		fmt.Fprintf(r.out, "- %s\n", Line(e, now))
	}
}

func (r *Renderer) renderHeader(p app.Profile) {
	if p.Name != "" {
		fmt.Fprintf(r.out, "%s (%s)\n", p.Login, p.Name)
	} else {
		fmt.Fprintln(r.out, p.Login)
	}
	if p.Bio != "" {
		fmt.Fprintln(r.out, p.Bio)
	}
	if p.Location != "" {
		fmt.Fprintf(r.out, "Location: %s\n", p.Location)
	}
	fmt.Fprintf(r.out, "%d followers, %d following, %d public repos\n\n", p.Followers, p.Following, p.PublicRepos)
}

func (r *Renderer) renderStats(s app.StatsSummary) {
	fmt.Fprintln(r.out, "Activity summary:")
	for _, kc := range s.EventTypeCounts {
		fmt.Fprintf(r.out, "  %s: %d\n", kc.Kind, kc.Count)
	}
	if len(s.RepoCounts) > 0 {
		fmt.Fprintln(r.out, "Top repositories:")
		for _, rc := range s.RepoCounts {
			fmt.Fprintf(r.out, "  %s: %d\n", rc.Repo, rc.Count)
		}
	}
	fmt.Fprintln(r.out)
}

func (r *Renderer) renderGrouped(events []app.Event, now time.Time) {
	byDate := make(map[string][]app.Event)
	var dates []string

	for _, e := range events {
		date := e.CreatedAt.Local().Format("2006-01-02")
		if _, ok := byDate[date]; !ok {
			dates = append(dates, date)
		}
		byDate[date] = append(byDate[date], e)
	}

	for _, date := range dates {
		fmt.Fprintf(r.out, "%s:\n", date)
		for _, e := range byDate[date] {
			fmt.Fprintf(r.out, "  - %s\n", Line(e, now))
		}
	}
}
