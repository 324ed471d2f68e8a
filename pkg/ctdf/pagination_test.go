package ctdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Paginate(items, 1, 2))
	assert.Equal(t, []int{3, 4}, Paginate(items, 2, 2))
	assert.Equal(t, []int{5}, Paginate(items, 3, 2))
	assert.Empty(t, Paginate(items, 4, 2))
	assert.Equal(t, items, Paginate(items, 1, 100))
	assert.Empty(t, Paginate(items, 0, 2))
	assert.Empty(t, Paginate([]int{}, 1, 20))
}

func TestPaginateHugePage(t *testing.T) {
	items := []int{1, 2, 3}
	maxInt := int(^uint(0) >> 1)

	assert.Empty(t, Paginate(items, 100000000000000000, 100))
	assert.Empty(t, Paginate(items, maxInt, 100))
	assert.Empty(t, Paginate(items, maxInt, maxInt))
	assert.Equal(t, items, Paginate(items, 1, maxInt))
	assert.Equal(t, 1, PageCount(len(items), maxInt))
}

func TestPageCount(t *testing.T) {
	tests := []struct {
		total int
		limit int
		pages int
	}{
		{0, 20, 0},
		{1, 20, 1},
		{20, 20, 1},
		{21, 20, 2},
		{100, 7, 15},
	}

	for _, test := range tests {
		assert.Equal(t, test.pages, PageCount(test.total, test.limit))
	}
}

func TestPaginateCoversEveryItemOnce(t *testing.T) {
	items := make([]int, 47)
	for i := range items {
		items[i] = i
	}

	for _, limit := range []int{1, 5, 20, 47, 100} {
		seen := []int{}
		pages := PageCount(len(items), limit)

		for page := 1; page <= pages; page++ {
			seen = append(seen, Paginate(items, page, limit)...)
		}

		assert.Equal(t, items, seen)
		assert.Empty(t, Paginate(items, pages+1, limit))
	}
}
