package app

import (
	"context"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

// CategoryAll matches programs of every category.
const CategoryAll = "all"

// ProgramSource returns list of program records.
//go:generate mockgen -destination mock/programsource.go -package mock github.com/opensource-compass/compassdash/internal/app ProgramSource
type ProgramSource interface {
	Programs(ctx context.Context) ([]Program, error)
}

// Filter selects visible programs.
type Filter struct {
	Search   string
	Category string
}

// Matches tells if program passes both search and category predicates.
func (f Filter) Matches(p Program) bool {
	search := strings.ToLower(f.Search)
	if !strings.Contains(strings.ToLower(p.Name), search) {
		return false
	}

	return f.Category == "" || f.Category == CategoryAll || p.Category == f.Category
}

// Catalog is searchable, filterable list of programs.
type Catalog struct {
	source ProgramSource
	l      logrus.FieldLogger

	programs Result[[]Program]
}

// NewCatalog creates new Catalog instance.
func NewCatalog(source ProgramSource, l logrus.FieldLogger) *Catalog {
	return &Catalog{
		source: source,
		l:      l,
	}
}

// LoadPrograms loads full program list.
func (c *Catalog) LoadPrograms(ctx context.Context) {
	programs, err := c.source.Programs(ctx)
	if err != nil {
		c.l.Errorf("loading programs: %v", err)
		c.programs = Failed[[]Program](err)
		return
	}
	c.programs = Ok(programs)
}

// Programs returns load outcome with full program list.
func (c *Catalog) Programs() Result[[]Program] {
	return c.programs
}

// ApplyFilters returns loaded programs matching filter.
// Loaded list is never modified.
func (c *Catalog) ApplyFilters(f Filter) []Program {
	return FilterPrograms(c.programs.Value, f)
}

// Categories returns sorted distinct categories of loaded programs.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range c.programs.Value {
		if p.Category == "" || seen[p.Category] {
			continue
		}
		seen[p.Category] = true
		categories = append(categories, p.Category)
	}
	sort.Strings(categories)

	return categories
}

// FilterPrograms returns new slice with programs matching filter.
func FilterPrograms(programs []Program, f Filter) []Program {
	result := make([]Program, 0, len(programs))
	for _, p := range programs {
		if f.Matches(p) {
			result = append(result, p)
		}
	}

	return result
}
