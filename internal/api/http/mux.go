package http

import (
	"context"
	"net/http"
	"time"

	"github.com/opensource-compass/compassdash/internal/app"
	"github.com/opensource-compass/compassdash/internal/view"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// Service loads dashboard and catalog state.
// LoadCatalog returns shared catalog, handlers only read from it.
//go:generate mockgen -destination mock/service.go -package mock github.com/opensource-compass/compassdash/internal/api/http Service
type Service interface {
	LoadDashboard(ctx context.Context, page int) app.DashboardState
	LoadActivity(ctx context.Context) app.DashboardState
	LoadCatalog(ctx context.Context) *app.Catalog
}

// NewMux creates router for app's http server.
// gatherer may be nil, then /metrics isn't served.
func NewMux(
	service Service,
	renderer *view.Renderer,
	site Site,
	gatherer prometheus.Gatherer,
	timeout time.Duration,
	l logrus.FieldLogger,
) *http.ServeMux {
	timeoutMiddleware := NewTimeoutMiddleware(timeout)
	logMiddleware := NewLoggingMiddleware(l)
	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return logMiddleware(timeoutMiddleware(h))
	}

	m := http.NewServeMux()
	m.HandleFunc("GET /{$}", wrap(NewPageHandler(service, renderer, site, l)))
	m.HandleFunc("GET /contributors", wrap(NewContributorsHandler(service, renderer, site, l)))
	m.HandleFunc("GET /activity", wrap(NewActivityHandler(service, renderer, l)))
	m.HandleFunc("GET /programs", wrap(NewProgramsHandler(service, renderer, l)))
	m.HandleFunc("GET /api/dashboard", wrap(NewDashboardAPIHandler(service, site, l)))
	if gatherer != nil {
		m.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return m
}
