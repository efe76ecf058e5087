package app

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Service is main apps entry point.
// Dashboard state is built fresh for every call, program catalog is loaded only once.
type Service struct {
	githubClient GithubClient
	programs     ProgramSource
	owner        string
	repo         string
	timeout      time.Duration
	l            logrus.FieldLogger

	catalogOnce sync.Once
	catalog     *Catalog
}

// NewService creates new Service instance.
func NewService(
	githubClient GithubClient,
	programs ProgramSource,
	owner string,
	repo string,
	timeout time.Duration,
	l logrus.FieldLogger,
) *Service {
	return &Service{
		githubClient: githubClient,
		programs:     programs,
		owner:        owner,
		repo:         repo,
		timeout:      timeout,
		l:            l,
	}
}

// LoadDashboard loads summary, contributors and activity, then moves to given contributors page.
func (s *Service) LoadDashboard(ctx context.Context, page int) DashboardState {
	d := NewDashboard(s.githubClient, s.owner, s.repo, s.timeout, s.l)
	d.Load(ctx)
	d.GoToPage(page)

	return d.State()
}

// LoadActivity loads only recent activity.
func (s *Service) LoadActivity(ctx context.Context) DashboardState {
	d := NewDashboard(s.githubClient, s.owner, s.repo, s.timeout, s.l)
	d.LoadRecentActivity(ctx)

	return d.State()
}

// LoadCatalog returns program catalog. Programs are loaded on first call only,
// later calls return the same catalog, whatever the outcome of the first load was.
// Returned catalog must be treated as read only.
func (s *Service) LoadCatalog(ctx context.Context) *Catalog {
	s.catalogOnce.Do(func() {
		c := NewCatalog(s.programs, s.l)
		// Load outlives the request that triggered it.
		c.LoadPrograms(context.WithoutCancel(ctx))
		s.catalog = c
	})

	return s.catalog
}
