package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{1, 20, 1, 20},
		{0, 20, 1, 20},
		{-5, 20, 1, 20},
		{3, 0, 3, DefaultLimit},
		{3, -1, 3, DefaultLimit},
		{3, 500, 3, MaxLimit},
		{3, MaxLimit, 3, MaxLimit},
	}

	for _, tc := range cases {
		page, limit := Clamp(tc.page, tc.limit)
		assert.Equal(t, tc.wantPage, page, "page for input (%d, %d)", tc.page, tc.limit)
		assert.Equal(t, tc.wantLimit, limit, "limit for input (%d, %d)", tc.page, tc.limit)
	}
}

func TestNewPage_Metadata(t *testing.T) {
	t.Parallel()

	// 11 matches at 10 per page: a second, partial page exists.
	p := NewPage(make([]int, 10), 11, 1, 10)
	assert.Equal(t, int64(11), p.Total)
	assert.Equal(t, 2, p.TotalPages)
	assert.True(t, p.HasNext)
	assert.False(t, p.HasPrev)

	p = NewPage(make([]int, 1), 11, 2, 10)
	assert.Equal(t, 2, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestNewPage_ExactMultiple(t *testing.T) {
	t.Parallel()

	p := NewPage(make([]int, 10), 20, 2, 10)
	assert.Equal(t, 2, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}

func TestNewPage_Empty(t *testing.T) {
	t.Parallel()

	p := NewPage([]int{}, 0, 1, 20)
	assert.Equal(t, int64(0), p.Total)
	assert.Equal(t, 0, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.False(t, p.HasPrev)
	assert.NotNil(t, p.Data)
}

func TestNewPage_PageBeyondEnd(t *testing.T) {
	t.Parallel()

	// Out-of-range pages return empty data but keep real totals.
	p := NewPage([]int{}, 11, 5, 10)
	assert.Equal(t, int64(11), p.Total)
	assert.Equal(t, 2, p.TotalPages)
	assert.False(t, p.HasNext)
	assert.True(t, p.HasPrev)
}
