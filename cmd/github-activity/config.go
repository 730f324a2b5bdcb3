package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

// Config is the container for app configuration
type Config struct {
	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubAPIToken - auth token for rest github api (optional, rate limit is lower without this token)
	GithubAPIToken string `default:""`

	// GithubAPIRateLimit - max frequency for github rest api calls per second
	GithubAPIRateLimit float64 `default:"5"`

	// UserAgent - product identifier sent with every api request
	UserAgent string `default:"github-activity-cli"`

	// ConfigPath - path to the optional json credential file, defaults to ~/.github-activity.json
	ConfigPath string `default:""`

	// CachePath - filepath for the activity cache, defaults to ~/.github-activity-cache.json
	CachePath string `default:""`

	// CacheTTL - maximum lifetime for cache entries
	CacheTTL time.Duration `default:"5m"`
}

// fileConfig is the optional json credential file. Its token takes
// precedence over the environment token.
type fileConfig struct {
	GithubToken string `json:"githubToken"`
}

// loadFileToken reads the optional credential file. A missing or malformed
// file is a logged warning only, never an error.
func loadFileToken(path string, l logrus.FieldLogger) string {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		path = filepath.Join(home, ".github-activity.json")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			l.WithError(err).Warn("couldn't read config file")
		}
		return ""
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		l.WithError(err).Warn("couldn't parse config file")
		return ""
	}

	return fc.GithubToken
}

// cacheFilePath resolves the cache file location.
func cacheFilePath(configured string) string {
	if configured != "" {
		return configured
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return filepath.Join(home, ".github-activity-cache.json")
}
