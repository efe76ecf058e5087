// Package static writes dashboard as a set of static html files.
package static

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/opensource-compass/compassdash/internal/app"
	"github.com/opensource-compass/compassdash/internal/view"
	"github.com/sirupsen/logrus"
)

// Site holds static page parameters.
type Site struct {
	Title string
	Owner string
	Repo  string
	Lead  string
}

// Generator writes one html file per contributors page.
type Generator struct {
	dashboard *app.Dashboard
	catalog   *app.Catalog
	renderer  *view.Renderer
	site      Site
	l         logrus.FieldLogger
}

// NewGenerator creates new Generator instance.
func NewGenerator(
	dashboard *app.Dashboard,
	catalog *app.Catalog,
	renderer *view.Renderer,
	site Site,
	l logrus.FieldLogger,
) *Generator {
	return &Generator{
		dashboard: dashboard,
		catalog:   catalog,
		renderer:  renderer,
		site:      site,
		l:         l,
	}
}

// Generate loads dashboard and catalog once, then writes index.html and page-N.html files into dir.
// Returns paths of written files.
func (g *Generator) Generate(ctx context.Context, dir string) ([]string, error) {
	g.dashboard.Load(ctx)
	g.catalog.LoadPrograms(ctx)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output dir: %w", err)
	}

	catalog := view.Catalog(g.catalog, app.Filter{Category: app.CategoryAll})

	// Empty contributors list still gets its index page.
	pages := app.NewPager(app.DefaultPageSize).TotalPages(len(g.dashboard.State().Contributors.Value))
	if pages < 1 {
		pages = 1
	}

	files := make([]string, 0, pages)
	for page := 1; page <= pages; page++ {
		g.dashboard.GoToPage(page)

		p := view.Page{
			Title:     g.site.Title,
			Dashboard: view.NewDashboardView(g.site.Owner, g.site.Repo, g.dashboard.State(), g.site.Lead, view.StaticPageURL),
			Catalog:   catalog,
		}
		var buf bytes.Buffer
		if err := g.renderer.Page(&buf, p); err != nil {
			return files, fmt.Errorf("rendering page %d: %w", page, err)
		}

		path := filepath.Join(dir, view.StaticPageURL(page))
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return files, fmt.Errorf("writing page %d: %w", page, err)
		}
		g.l.Debugf("written %s", path)
		files = append(files, path)
	}

	return files, nil
}
