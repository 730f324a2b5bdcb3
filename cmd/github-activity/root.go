package main

import (
	"context"
	"encoding/json"
	"fmt"
	netHttp "net/http"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pwalczyk/github-activity/internal/adapter/github"
	"github.com/pwalczyk/github-activity/internal/app"
	"github.com/pwalczyk/github-activity/internal/cache"
	"github.com/pwalczyk/github-activity/internal/limiter"
	"github.com/pwalczyk/github-activity/internal/render"
)

type rootFlags struct {
	limit   int
	raw     bool
	noCache bool
	since   string
	stats   bool
	group   bool
	verbose bool
}

func newRootCmd(l *logrus.Logger) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "github-activity <username>",
		Short: "Show recent public github activity for a user",
		Long: `github-activity fetches a github user's public activity feed, merges it
with their profile and renders it as a readable feed or raw json.
Results are cached for a few minutes to avoid redundant api calls.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			if flags.verbose {
				l.SetLevel(logrus.DebugLevel)
			}
			return run(cmd.Context(), l, args[0], flags)
		},
	}

	cmd.Flags().IntVarP(&flags.limit, "limit", "l", 15, "maximum number of events to display")
	cmd.Flags().BoolVarP(&flags.raw, "raw", "r", false, "emit the result as json instead of rendered text")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "bypass the cache and skip the cache write")
	cmd.Flags().StringVar(&flags.since, "since", "", "only show events on or after this date (YYYY-MM-DD)")
	cmd.Flags().BoolVarP(&flags.stats, "stats", "s", false, "show an activity statistics block")
	cmd.Flags().BoolVarP(&flags.group, "group", "g", false, "group events by calendar date")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(ctx context.Context, l *logrus.Logger, username string, flags rootFlags) error {
	var conf Config
	if err := envconfig.Process("", &conf); err != nil {
		return fmt.Errorf("couldn't parse config: %w", err)
	}

	token := conf.GithubAPIToken
	if t := loadFileToken(conf.ConfigPath, l.WithField("component", "config")); t != "" {
		token = t
	}

	httpClient := &netHttp.Client{
		Timeout: 30 * time.Second,
	}
	limitedHTTPClient := limiter.NewHTTPDoer(
		httpClient,
		conf.GithubAPIRateLimit,
	)

	githubClient := github.NewClient(
		limitedHTTPClient,
		conf.GithubAPIAddress,
		token,
		conf.UserAgent,
	)

	store := cache.NewFileStore(
		cacheFilePath(conf.CachePath),
		l.WithField("component", "cache"),
	)

	service := app.NewService(
		githubClient,
		store,
		conf.CacheTTL,
		l.WithField("component", "service"),
	)

	opts := app.FetchOptions{
		Limit:        flags.limit,
		CacheEnabled: !flags.noCache,
	}
	if flags.since != "" {
		since, err := time.Parse("2006-01-02", flags.since)
		if err != nil {
			return fmt.Errorf("invalid --since date %q, use YYYY-MM-DD", flags.since)
		}
		opts.Since = &since
	}

	// Best-effort telemetry, only worth an extra api call when debugging.
	if flags.verbose {
		if rl, ok := service.RateLimitRemaining(ctx); ok {
			l.Debugf("github api quota: %d/%d remaining", rl.Remaining, rl.Limit)
		}
	}

	result, err := service.Fetch(ctx, username, opts)
	if err != nil {
		return err
	}

	// Persisting the cache is best effort, the result is already in hand.
	if opts.CacheEnabled {
		if err := store.Flush(); err != nil {
			l.WithError(err).Warn("couldn't persist cache")
		}
	}

	if flags.raw {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling result: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	var stats *app.StatsSummary
	if flags.stats {
		s := app.Summarize(result.Events)
		stats = &s
	}
	render.NewRenderer(os.Stdout).Render(result, stats, flags.group)

	return nil
}
