package view

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/opensource-compass/compassdash/internal/app"
)

// Placeholders and notices shown instead of missing data.
const (
	Unavailable             = "—"
	Unknown                 = "..."
	ActivityUnavailableText = "Unable to load recent activity."
	ProgramsEmptyText       = "No programs found matching your criteria."
	ProgramsUnavailableText = "Programs are currently unavailable."
)

const (
	cardAvatarSize     = 120
	activityAvatarSize = 60
	activityDateLayout = "Jan 2, 2006"
)

// Counters are dashboard summary values, already formatted.
type Counters struct {
	Contributors string `json:"contributors"`
	Commits      string `json:"commits"`
	PRs          string `json:"prs"`
	Points       string `json:"points"`
	Stars        string `json:"stars"`
	Forks        string `json:"forks"`
}

// ContributorCard is a single contributor tile.
type ContributorCard struct {
	Login       string `json:"login"`
	ProfileURL  string `json:"profileUrl"`
	AvatarURL   string `json:"avatarUrl"`
	PRs         int    `json:"prs"`
	Points      int    `json:"points"`
	Highlighted bool   `json:"highlighted"`
}

// Class returns css class list of the card.
func (c ContributorCard) Class() string {
	if c.Highlighted {
		return "contributor-card highlighted"
	}
	return "contributor-card"
}

// Pagination describes page controls.
type Pagination struct {
	Page         int    `json:"page"`
	TotalPages   int    `json:"totalPages"`
	Info         string `json:"info"`
	PrevDisabled bool   `json:"prevDisabled"`
	NextDisabled bool   `json:"nextDisabled"`
	PrevURL      string `json:"prevUrl,omitempty"`
	NextURL      string `json:"nextUrl,omitempty"`
}

// ContributorsView is the contributors grid with its pagination.
type ContributorsView struct {
	Cards      []ContributorCard `json:"cards"`
	Pagination Pagination        `json:"pagination"`
}

// ActivityItem is one line of activity feed.
type ActivityItem struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatarUrl"`
	Message   string `json:"message"`
	Date      string `json:"date"`
}

// ActivityView is the activity feed. Notice replaces the list when set.
type ActivityView struct {
	Items  []ActivityItem `json:"items"`
	Notice string         `json:"notice,omitempty"`
}

// ProgramCard is a single program tile.
type ProgramCard struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Timeline    string `json:"timeline"`
	Reward      string `json:"reward"`
	Link        string `json:"link"`
}

// CatalogView is the program grid. Notice replaces the grid when set.
type CatalogView struct {
	Cards      []ProgramCard `json:"cards"`
	Notice     string        `json:"notice,omitempty"`
	Search     string        `json:"search"`
	Category   string        `json:"category"`
	Categories []string      `json:"categories"`
	Filterable bool          `json:"-"`
}

// DashboardView groups all dashboard parts.
type DashboardView struct {
	Repo         string           `json:"repo"`
	Counters     Counters         `json:"counters"`
	Contributors ContributorsView `json:"contributors"`
	Activity     ActivityView     `json:"activity"`
}

// Page is the whole rendered document.
type Page struct {
	Title     string
	Dashboard DashboardView
	Catalog   CatalogView
}

// PageURLFunc returns link to given contributors page.
type PageURLFunc func(page int) string

// QueryPageURL links pages with ?page=N query.
func QueryPageURL(path string) PageURLFunc {
	return func(page int) string {
		v := make(url.Values)
		v.Set("page", strconv.Itoa(page))
		return path + "?" + v.Encode()
	}
}

// StaticPageURL links pages as static files: index.html for the first page, page-N.html for others.
func StaticPageURL(page int) string {
	if page <= 1 {
		return "index.html"
	}
	return fmt.Sprintf("page-%d.html", page)
}

// NewDashboardView builds dashboard view model from dashboard state.
func NewDashboardView(owner string, repo string, s app.DashboardState, lead string, pageURL PageURLFunc) DashboardView {
	return DashboardView{
		Repo:         owner + "/" + repo,
		Counters:     NewCounters(s),
		Contributors: Contributors(s, lead, pageURL),
		Activity:     Activity(s),
	}
}

// NewCounters formats summary counters. Every counter degrades independently.
func NewCounters(s app.DashboardState) Counters {
	c := Counters{
		Contributors: Unknown,
		Commits:      Unknown,
		PRs:          Unknown,
		Points:       Unknown,
		Stars:        Unknown,
		Forks:        Unknown,
	}

	switch {
	case s.Repo.OK():
		c.Stars = strconv.Itoa(s.Repo.Value.Stars)
		c.Forks = strconv.Itoa(s.Repo.Value.Forks)
	case s.Repo.Loaded:
		c.Stars = Unavailable
		c.Forks = Unavailable
	}

	if s.Commits.OK() && s.Commits.Value.Known && s.Commits.Value.Count > 0 {
		c.Commits = strconv.Itoa(s.Commits.Value.Count)
	}

	switch {
	case s.Contributors.OK():
		totals := s.Totals()
		c.Contributors = strconv.Itoa(totals.Contributors)
		c.PRs = strconv.Itoa(totals.PRs)
		c.Points = strconv.Itoa(totals.Points)
	case s.Contributors.Loaded:
		c.Contributors = Unavailable
		c.PRs = Unavailable
		c.Points = Unavailable
	}

	return c
}

// Contributors maps current page window to cards and computes pagination controls.
// pageURL may be nil, then navigation links are left empty.
func Contributors(s app.DashboardState, lead string, pageURL PageURLFunc) ContributorsView {
	contributors := s.PageContributors()
	cards := make([]ContributorCard, 0, len(contributors))
	for _, c := range contributors {
		cards = append(cards, ContributorCard{
			Login:       c.Login,
			ProfileURL:  c.ProfileURL,
			AvatarURL:   sizedAvatarURL(c.AvatarURL, cardAvatarSize),
			PRs:         c.EstimatedPRs(),
			Points:      c.EstimatedPoints(),
			Highlighted: lead != "" && c.Login == lead,
		})
	}

	return ContributorsView{
		Cards:      cards,
		Pagination: NewPagination(s.Pager, len(s.Contributors.Value), pageURL),
	}
}

// NewPagination computes page controls for list of total items.
func NewPagination(p app.Pager, total int, pageURL PageURLFunc) Pagination {
	totalPages := p.TotalPages(total)
	page := 0
	if totalPages > 0 {
		page = p.Goto(p.Page, total).Page
	}

	pg := Pagination{
		Page:         page,
		TotalPages:   totalPages,
		Info:         fmt.Sprintf("Page %d of %d", page, totalPages),
		PrevDisabled: page <= 1,
		NextDisabled: page >= totalPages,
	}
	if pageURL != nil {
		if !pg.PrevDisabled {
			pg.PrevURL = pageURL(page - 1)
		}
		if !pg.NextDisabled {
			pg.NextURL = pageURL(page + 1)
		}
	}

	return pg
}

// Activity maps loaded events to feed items.
func Activity(s app.DashboardState) ActivityView {
	if s.Activity.Loaded && s.Activity.Err != nil {
		return ActivityView{
			Items:  []ActivityItem{},
			Notice: ActivityUnavailableText,
		}
	}

	items := make([]ActivityItem, 0, len(s.Activity.Value))
	for _, e := range s.Activity.Value {
		var date string
		if !e.CreatedAt.IsZero() {
			date = e.CreatedAt.Format(activityDateLayout)
		}
		items = append(items, ActivityItem{
			Login:     e.ActorLogin,
			AvatarURL: sizedAvatarURL(e.ActorAvatarURL, activityAvatarSize),
			Message:   e.Message(),
			Date:      date,
		})
	}

	return ActivityView{Items: items}
}

// Programs maps program list to cards. Empty list gets the empty notice.
func Programs(programs []app.Program) CatalogView {
	if len(programs) == 0 {
		return CatalogView{
			Cards:  []ProgramCard{},
			Notice: ProgramsEmptyText,
		}
	}

	cards := make([]ProgramCard, 0, len(programs))
	for _, p := range programs {
		cards = append(cards, ProgramCard{
			Name:        p.Name,
			Category:    p.Category,
			Description: p.Description,
			Timeline:    p.Timeline,
			Reward:      p.Stipend,
			Link:        p.Link,
		})
	}

	return CatalogView{Cards: cards}
}

// Catalog builds catalog view of programs matching filter.
// Failed load gets the unavailable notice.
func Catalog(c *app.Catalog, f app.Filter) CatalogView {
	if f.Category == "" {
		f.Category = app.CategoryAll
	}

	var v CatalogView
	if r := c.Programs(); r.Loaded && r.Err != nil {
		v = CatalogView{
			Cards:  []ProgramCard{},
			Notice: ProgramsUnavailableText,
		}
	} else {
		v = Programs(c.ApplyFilters(f))
	}
	v.Search = f.Search
	v.Category = f.Category
	v.Categories = c.Categories()

	return v
}

func sizedAvatarURL(raw string, size int) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	q := u.Query()
	q.Set("s", strconv.Itoa(size))
	u.RawQuery = q.Encode()

	return u.String()
}
