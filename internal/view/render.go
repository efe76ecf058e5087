package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer writes view models as html.
// Output is a pure function of the view model, so rendering is idempotent.
type Renderer struct {
	t *template.Template
}

// NewRenderer parses embedded templates.
func NewRenderer() (*Renderer, error) {
	t, err := template.New("page.html").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &Renderer{t: t}, nil
}

// Page renders the whole document.
func (r *Renderer) Page(w io.Writer, p Page) error {
	return r.execute(w, "page.html", p)
}

// Contributors renders contributors grid with pagination.
func (r *Renderer) Contributors(w io.Writer, v ContributorsView) error {
	return r.execute(w, "contributors", v)
}

// Activity renders activity feed.
func (r *Renderer) Activity(w io.Writer, v ActivityView) error {
	return r.execute(w, "activity", v)
}

// Catalog renders program catalog.
func (r *Renderer) Catalog(w io.Writer, v CatalogView) error {
	return r.execute(w, "catalog", v)
}

func (r *Renderer) execute(w io.Writer, name string, data interface{}) error {
	if err := r.t.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("executing %s template: %w", name, err)
	}
	return nil
}
