package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagerTotalPages(t *testing.T) {
	p := NewPager(DefaultPageSize)

	tests := []struct {
		total int
		want  int
	}{
		{total: 0, want: 0},
		{total: 1, want: 1},
		{total: 7, want: 1},
		{total: 8, want: 1},
		{total: 9, want: 2},
		{total: 16, want: 2},
		{total: 17, want: 3},
		{total: 100, want: 13},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.TotalPages(tt.total), "total %d", tt.total)
	}
}

func TestPagerNavigation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		total    int
		steps    []string
		wantPage int
	}{
		{
			name:     "prev on first page is no-op",
			total:    20,
			steps:    []string{"prev", "prev"},
			wantPage: 1,
		},
		{
			name:     "next stops at last page",
			total:    20,
			steps:    []string{"next", "next", "next", "next"},
			wantPage: 3,
		},
		{
			name:     "next then prev",
			total:    20,
			steps:    []string{"next", "next", "prev"},
			wantPage: 2,
		},
		{
			name:     "empty list",
			total:    0,
			steps:    []string{"next", "prev", "next"},
			wantPage: 1,
		},
		{
			name:     "single page",
			total:    8,
			steps:    []string{"next"},
			wantPage: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPager(DefaultPageSize)
			for _, s := range tt.steps {
				switch s {
				case "next":
					p = p.Next(tt.total)
				case "prev":
					p = p.Prev(tt.total)
				}
				if tt.total > 0 {
					assert.GreaterOrEqual(t, p.Page, 1)
					assert.LessOrEqual(t, p.Page, p.TotalPages(tt.total))
				}
			}
			assert.Equal(t, tt.wantPage, p.Page)
		})
	}
}

func TestPagerBoundaries(t *testing.T) {
	p := NewPager(DefaultPageSize)

	assert.False(t, p.HasPrev(0))
	assert.False(t, p.HasNext(0))

	assert.False(t, p.HasPrev(20))
	assert.True(t, p.HasNext(20))

	p = p.Goto(3, 20)
	assert.True(t, p.HasPrev(20))
	assert.False(t, p.HasNext(20))
}

func TestPagerGoto(t *testing.T) {
	p := NewPager(DefaultPageSize)

	assert.Equal(t, 1, p.Goto(-5, 20).Page)
	assert.Equal(t, 1, p.Goto(0, 20).Page)
	assert.Equal(t, 2, p.Goto(2, 20).Page)
	assert.Equal(t, 3, p.Goto(99, 20).Page)
	assert.Equal(t, 1, p.Goto(4, 0).Page)
}

func TestPagerWindow(t *testing.T) {
	p := NewPager(DefaultPageSize)

	start, end := p.Window(0)
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)

	start, end = p.Window(20)
	assert.Equal(t, 0, start)
	assert.Equal(t, 8, end)

	start, end = p.Goto(3, 20).Window(20)
	assert.Equal(t, 16, start)
	assert.Equal(t, 20, end)

	// Stale page number after list shrinks.
	p.Page = 5
	start, end = p.Window(10)
	assert.Equal(t, 8, start)
	assert.Equal(t, 10, end)
}

func TestNewPagerDefaultSize(t *testing.T) {
	assert.Equal(t, DefaultPageSize, NewPager(0).PageSize)
	assert.Equal(t, 3, NewPager(3).PageSize)
}

func TestPagerZeroValue(t *testing.T) {
	var p Pager

	assert.Equal(t, 2, p.TotalPages(9))

	start, end := p.Window(9)
	assert.Equal(t, 0, start)
	assert.Equal(t, DefaultPageSize, end)

	p = p.Goto(5, 9)
	assert.Equal(t, 2, p.Page)
	start, end = p.Window(9)
	assert.Equal(t, 8, start)
	assert.Equal(t, 9, end)
}
