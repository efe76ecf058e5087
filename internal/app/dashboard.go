package app

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Limits for github listings.
const (
	ContributorsLimit = 100
	EventsLimit       = 10
	ActivityLimit     = 10
)

// GithubClient returns details about single github repository.
//go:generate mockgen -destination mock/githubclient.go -package mock github.com/opensource-compass/compassdash/internal/app GithubClient
type GithubClient interface {
	Repository(ctx context.Context, owner string, name string) (RepoStats, error)
	CommitCount(ctx context.Context, owner string, name string) (CommitTotal, error)
	Contributors(ctx context.Context, owner string, name string, count int) ([]Contributor, error)
	Events(ctx context.Context, owner string, name string, count int) ([]ActivityEvent, error)
}

// ContributorTotals are aggregate counters derived from contributors list.
type ContributorTotals struct {
	Contributors int
	PRs          int
	Points       int
}

// DashboardState is everything dashboard knows after loading.
// Each load routine writes only its own fields.
type DashboardState struct {
	Repo         Result[RepoStats]
	Commits      Result[CommitTotal]
	Contributors Result[[]Contributor]
	Activity     Result[[]ActivityEvent]
	Pager        Pager
}

// Totals computes aggregate counters. Returns zero value if contributors aren't loaded.
func (s DashboardState) Totals() ContributorTotals {
	var sum int
	for _, c := range s.Contributors.Value {
		if c.Contributions > 0 {
			sum += c.Contributions
		}
	}

	return ContributorTotals{
		Contributors: len(s.Contributors.Value),
		PRs:          estimatePRs(sum),
		Points:       estimatePoints(sum),
	}
}

// PageContributors returns contributors in current page window.
func (s DashboardState) PageContributors() []Contributor {
	start, end := s.Pager.Window(len(s.Contributors.Value))
	return s.Contributors.Value[start:end]
}

// Dashboard aggregates contributor and activity statistics for one repository.
type Dashboard struct {
	client  GithubClient
	owner   string
	repo    string
	timeout time.Duration
	l       logrus.FieldLogger

	state DashboardState
}

// NewDashboard creates new Dashboard instance.
// timeout limits each load routine, zero means no limit.
func NewDashboard(
	client GithubClient,
	owner string,
	repo string,
	timeout time.Duration,
	l logrus.FieldLogger,
) *Dashboard {
	return &Dashboard{
		client:  client,
		owner:   owner,
		repo:    repo,
		timeout: timeout,
		l:       l,
		state: DashboardState{
			Pager: NewPager(DefaultPageSize),
		},
	}
}

// State returns copy of current dashboard state.
func (d *Dashboard) State() DashboardState {
	return d.state
}

// Load runs all load routines one after another.
// Failure in one routine doesn't stop the others.
func (d *Dashboard) Load(ctx context.Context) {
	d.LoadRepoSummary(ctx)
	d.LoadContributors(ctx)
	d.LoadRecentActivity(ctx)
}

// LoadRepoSummary fetches star and fork counts and approximate commit total.
// Both requests are made independently.
func (d *Dashboard) LoadRepoSummary(ctx context.Context) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	stats, err := d.client.Repository(ctx, d.owner, d.repo)
	if err != nil {
		d.l.Errorf("fetching repository %s/%s info: %v", d.owner, d.repo, err)
		d.state.Repo = Failed[RepoStats](err)
	} else {
		d.state.Repo = Ok(stats)
	}

	total, err := d.client.CommitCount(ctx, d.owner, d.repo)
	if err != nil {
		d.l.Errorf("fetching repository %s/%s commit count: %v", d.owner, d.repo, err)
		d.state.Commits = Failed[CommitTotal](err)
		return
	}
	d.state.Commits = Ok(total)
}

// LoadContributors fetches up to ContributorsLimit contributors in api order.
// Resets pagination to the first page.
func (d *Dashboard) LoadContributors(ctx context.Context) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	d.state.Pager = d.state.Pager.Goto(1, 0)

	contributors, err := d.client.Contributors(ctx, d.owner, d.repo, ContributorsLimit)
	if err != nil {
		d.l.Errorf("fetching contributors of %s/%s: %v", d.owner, d.repo, err)
		d.state.Contributors = Failed[[]Contributor](err)
		return
	}
	d.state.Contributors = Ok(contributors)
}

// LoadRecentActivity fetches latest repository events.
// Only pull request and push events are kept, at most ActivityLimit of them.
func (d *Dashboard) LoadRecentActivity(ctx context.Context) {
	ctx, cancel := d.withTimeout(ctx)
	defer cancel()

	events, err := d.client.Events(ctx, d.owner, d.repo, EventsLimit)
	if err != nil {
		d.l.Errorf("fetching recent activity of %s/%s: %v", d.owner, d.repo, err)
		d.state.Activity = Failed[[]ActivityEvent](err)
		return
	}
	d.state.Activity = Ok(FilterActivity(events, ActivityLimit))
}

// GoToPreviousPage moves one page back. No-op on first page.
func (d *Dashboard) GoToPreviousPage() {
	d.state.Pager = d.state.Pager.Prev(len(d.state.Contributors.Value))
}

// GoToNextPage moves one page forward. No-op on last page.
func (d *Dashboard) GoToNextPage() {
	d.state.Pager = d.state.Pager.Next(len(d.state.Contributors.Value))
}

// GoToPage moves to given page, clamped to available pages.
func (d *Dashboard) GoToPage(page int) {
	d.state.Pager = d.state.Pager.Goto(page, len(d.state.Contributors.Value))
}

func (d *Dashboard) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if d.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d.timeout)
}

// FilterActivity keeps pull request and push events in original order, at most limit of them.
func FilterActivity(events []ActivityEvent, limit int) []ActivityEvent {
	result := make([]ActivityEvent, 0, limit)
	for _, e := range events {
		if len(result) >= limit {
			break
		}
		if e.Kind == EventPullRequest || e.Kind == EventPush {
			result = append(result, e)
		}
	}

	return result
}
