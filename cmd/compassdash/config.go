package main

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix is the prefix of environment variables read into Config.
const envPrefix = "COMPASSDASH"

// Config is the container for app configuration
type Config struct {
	// HTTPServerAddress - listen address for http server
	HTTPServerAddress string `default:"0.0.0.0:8080"`

	// HTTPProfileServerAddress - listen address for profiler http server. If empty, profiler server is disabled
	HTTPProfileServerAddress string `default:""`

	// ServiceResponseTimeout - timeout for single http request handling
	ServiceResponseTimeout time.Duration `default:"30s"`

	// LoadTimeout - timeout for each dashboard load routine. Zero disables the limit
	LoadTimeout time.Duration `default:"15s"`

	// LogLevel - logrus level name
	LogLevel string `default:"info"`

	// GithubAPIAddress - address for rest api with protocol
	GithubAPIAddress string `default:"https://api.github.com"`

	// GithubAPIRateLimit - max frequency for github rest api calls. Zero or less disables throttling
	GithubAPIRateLimit float64 `default:"5"`

	// GithubAPIBurst - max burst of github rest api calls
	GithubAPIBurst int `default:"4"`

	// GithubClientCacheSize - maximum number of elements in github client cache
	GithubClientCacheSize int `default:"1000"`

	// GithubClientCacheTTL - maximum lifetime for github client cache entries
	GithubClientCacheTTL time.Duration `default:"5m"`

	// RepoOwner - owner of the dashboard repository
	RepoOwner string `default:"sayeeg-11"`

	// RepoName - name of the dashboard repository
	RepoName string `default:"OpenSource-Compass"`

	// LeadLogin - contributor login highlighted in contributors grid
	LeadLogin string `default:"sayeeg-11"`

	// ProgramsPath - program data file path or http(s) url
	ProgramsPath string `default:"data/programs.json"`

	// SiteTitle - html document title
	SiteTitle string `default:"OpenSource Compass"`

	// OutputDir - directory for static site files
	OutputDir string `default:"public"`
}

func loadConfig() (Config, error) {
	var conf Config
	err := envconfig.Process(envPrefix, &conf)
	return conf, err
}
