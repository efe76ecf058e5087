package github

import (
	"context"
	"fmt"
	"time"

	"github.com/opensource-compass/compassdash/internal/app"
	"github.com/prometheus/client_golang/prometheus"
)

// InstrumentedClient wraps github client and records call outcomes as prometheus metrics.
type InstrumentedClient struct {
	client   app.GithubClient
	calls    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ app.GithubClient = &InstrumentedClient{}

// NewInstrumentedClient creates new InstrumentedClient and registers its collectors in reg.
func NewInstrumentedClient(client app.GithubClient, reg prometheus.Registerer) (*InstrumentedClient, error) {
	c := InstrumentedClient{
		client: client,
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "compassdash",
				Subsystem: "github",
				Name:      "calls_total",
				Help:      "Number of github api calls by method and result.",
			},
			[]string{"method", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "compassdash",
				Subsystem: "github",
				Name:      "call_duration_seconds",
				Help:      "Duration of github api calls.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}

	if err := reg.Register(c.calls); err != nil {
		return nil, fmt.Errorf("registering calls counter: %w", err)
	}
	if err := reg.Register(c.duration); err != nil {
		return nil, fmt.Errorf("registering duration histogram: %w", err)
	}

	return &c, nil
}

// Repository returns star and fork counts of given repository.
func (c *InstrumentedClient) Repository(ctx context.Context, owner string, name string) (app.RepoStats, error) {
	defer c.observe("repository", time.Now())

	stats, err := c.client.Repository(ctx, owner, name)
	c.count("repository", err)
	return stats, err
}

// CommitCount returns approximate number of commits in given repository.
func (c *InstrumentedClient) CommitCount(ctx context.Context, owner string, name string) (app.CommitTotal, error) {
	defer c.observe("commits", time.Now())

	total, err := c.client.CommitCount(ctx, owner, name)
	c.count("commits", err)
	return total, err
}

// Contributors returns repository contributors.
func (c *InstrumentedClient) Contributors(ctx context.Context, owner string, name string, count int) ([]app.Contributor, error) {
	defer c.observe("contributors", time.Now())

	contributors, err := c.client.Contributors(ctx, owner, name, count)
	c.count("contributors", err)
	return contributors, err
}

// Events returns most recent repository events.
func (c *InstrumentedClient) Events(ctx context.Context, owner string, name string, count int) ([]app.ActivityEvent, error) {
	defer c.observe("events", time.Now())

	events, err := c.client.Events(ctx, owner, name, count)
	c.count("events", err)
	return events, err
}

func (c *InstrumentedClient) observe(method string, start time.Time) {
	c.duration.WithLabelValues(method).Observe(time.Since(start).Seconds())
}

func (c *InstrumentedClient) count(method string, err error) {
	c.calls.WithLabelValues(method, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case app.IsInvalidRequestError(err):
		return "invalid"
	}
	return app.FetchErrorKind(err).String()
}
