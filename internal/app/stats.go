package app

import "sort"

// KindCount is one row of the event type frequency table.
type KindCount struct {
	Kind  EventKind `json:"kind"`
	Count int       `json:"count"`
}

// RepoCount is one row of the repository frequency table.
type RepoCount struct {
	Repo  string `json:"repo"`
	Count int    `json:"count"`
}

// StatsSummary aggregates event frequencies for display. Both tables are
// ordered by descending count; ties keep the first-seen order.
type StatsSummary struct {
	EventTypeCounts []KindCount `json:"eventTypeCounts"`
	RepoCounts      []RepoCount `json:"repoCounts"`
}

const topReposCount = 5

// Summarize computes frequency tables over event kinds and repositories in
// a single pass. The repository table is truncated to the top 5.
func Summarize(events []Event) StatsSummary {
	kindIdx := make(map[EventKind]int)
	repoIdx := make(map[string]int)
	var kinds []KindCount
	var repos []RepoCount

	for _, e := range events {
		if i, ok := kindIdx[e.Kind]; ok {
			kinds[i].Count++
		} else {
			kindIdx[e.Kind] = len(kinds)
			kinds = append(kinds, KindCount{Kind: e.Kind, Count: 1})
		}

		if i, ok := repoIdx[e.Repo]; ok {
			repos[i].Count++
		} else {
			repoIdx[e.Repo] = len(repos)
			repos = append(repos, RepoCount{Repo: e.Repo, Count: 1})
		}
	}

	// Stable sort keeps insertion order for equal counts.
	sort.SliceStable(kinds, func(i, j int) bool {
		return kinds[i].Count > kinds[j].Count
	})
	sort.SliceStable(repos, func(i, j int) bool {
		return repos[i].Count > repos[j].Count
	})

	if len(repos) > topReposCount {
		repos = repos[:topReposCount]
	}

	return StatsSummary{
		EventTypeCounts: kinds,
		RepoCounts:      repos,
	}
}
