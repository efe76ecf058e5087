package app

// DefaultPageSize is the number of contributor cards on one page.
const DefaultPageSize = 8

// Pager holds pagination state over in-memory list.
// Page is 1-indexed.
type Pager struct {
	Page     int
	PageSize int
}

// NewPager creates pager positioned at first page.
func NewPager(pageSize int) Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Pager{
		Page:     1,
		PageSize: pageSize,
	}
}

// TotalPages returns ceil(total/pageSize). Zero items means zero pages.
func (p Pager) TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	size := p.size()
	return (total + size - 1) / size
}

// Window returns [start, end) bounds of current page for list of given length.
func (p Pager) Window(total int) (int, int) {
	if total <= 0 {
		return 0, 0
	}
	page := p.clamp(p.Page, total)
	size := p.size()
	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	return start, end
}

// HasPrev tells if previous page exists.
func (p Pager) HasPrev(total int) bool {
	return total > 0 && p.Page > 1
}

// HasNext tells if next page exists.
func (p Pager) HasNext(total int) bool {
	return p.Page < p.TotalPages(total)
}

// Prev returns pager moved one page back. No-op on first page.
func (p Pager) Prev(total int) Pager {
	if p.HasPrev(total) {
		p.Page--
	}
	return p
}

// Next returns pager moved one page forward. No-op on last page.
func (p Pager) Next(total int) Pager {
	if p.HasNext(total) {
		p.Page++
	}
	return p
}

// Goto returns pager at given page, clamped to [1, TotalPages(total)].
func (p Pager) Goto(page int, total int) Pager {
	p.Page = p.clamp(page, total)
	return p
}

// size returns PageSize, or DefaultPageSize for zero value pager.
func (p Pager) size() int {
	if p.PageSize <= 0 {
		return DefaultPageSize
	}
	return p.PageSize
}

func (p Pager) clamp(page int, total int) int {
	last := p.TotalPages(total)
	if page > last {
		page = last
	}
	if page < 1 {
		page = 1
	}
	return page
}
