package http

import (
	"bytes"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/opensource-compass/compassdash/internal/app"
	"github.com/opensource-compass/compassdash/internal/view"
	"github.com/sirupsen/logrus"
)

const (
	defaultHandlerPageValue = 1
	htmlContentType         = "text/html; charset=utf-8"
	jsonContentType         = "application/json; charset=utf-8"
)

// Site holds static page parameters.
type Site struct {
	Title string
	Owner string
	Repo  string
	Lead  string
}

// NewPageHandler creates handlerfunc returning whole dashboard page.
func NewPageHandler(service Service, renderer *view.Renderer, site Site, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := getIntParam(r, "page", defaultHandlerPageValue)
		state := service.LoadDashboard(r.Context(), page)
		catalog := view.Catalog(service.LoadCatalog(r.Context()), getFilter(r))
		catalog.Filterable = true

		p := view.Page{
			Title:     site.Title,
			Dashboard: view.NewDashboardView(site.Owner, site.Repo, state, site.Lead, view.QueryPageURL("/")),
			Catalog:   catalog,
		}
		writeHTML(w, l, func(buf *bytes.Buffer) error {
			return renderer.Page(buf, p)
		})
	}
}

// NewContributorsHandler creates handlerfunc returning contributors grid fragment.
func NewContributorsHandler(service Service, renderer *view.Renderer, site Site, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := getIntParam(r, "page", defaultHandlerPageValue)
		state := service.LoadDashboard(r.Context(), page)
		v := view.Contributors(state, site.Lead, view.QueryPageURL(r.URL.Path))

		writeHTML(w, l, func(buf *bytes.Buffer) error {
			return renderer.Contributors(buf, v)
		})
	}
}

// NewActivityHandler creates handlerfunc returning activity feed fragment.
func NewActivityHandler(service Service, renderer *view.Renderer, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := view.Activity(service.LoadActivity(r.Context()))

		writeHTML(w, l, func(buf *bytes.Buffer) error {
			return renderer.Activity(buf, v)
		})
	}
}

// NewProgramsHandler creates handlerfunc returning filtered program catalog fragment.
func NewProgramsHandler(service Service, renderer *view.Renderer, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := view.Catalog(service.LoadCatalog(r.Context()), getFilter(r))

		writeHTML(w, l, func(buf *bytes.Buffer) error {
			return renderer.Catalog(buf, v)
		})
	}
}

// NewDashboardAPIHandler creates handlerfunc returning dashboard view model as json.
func NewDashboardAPIHandler(service Service, site Site, l logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := getIntParam(r, "page", defaultHandlerPageValue)
		state := service.LoadDashboard(r.Context(), page)
		v := view.NewDashboardView(site.Owner, site.Repo, state, site.Lead, view.QueryPageURL(r.URL.Path))

		w.Header().Set("Content-type", jsonContentType)
		if err := jsoniter.ConfigFastest.NewEncoder(w).Encode(v); err != nil {
			l.Errorf("encoding dashboard response: %v", err)
		}
	}
}

// writeHTML renders into buffer first, so that failed render results in clean 500 response.
func writeHTML(w http.ResponseWriter, l logrus.FieldLogger, render func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		l.Errorf("rendering html: %v", err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-type", htmlContentType)
	_, _ = buf.WriteTo(w)
}

func getIntParam(r *http.Request, name string, defaultValue int) int {
	value := defaultValue
	if vs := r.URL.Query().Get(name); vs != "" {
		if v, err := strconv.Atoi(vs); err == nil {
			value = v
		}
	}

	return value
}

func getFilter(r *http.Request) app.Filter {
	q := r.URL.Query()
	f := app.Filter{
		Search:   q.Get("search"),
		Category: q.Get("category"),
	}
	if f.Category == "" {
		f.Category = app.CategoryAll
	}

	return f
}
