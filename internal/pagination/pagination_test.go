package pagination

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name         string
		page, size   int
		wantPage     int
		wantPageSize int
	}{
		{"defaults", 0, 0, 1, DefaultPageSize},
		{"negative page", -3, 25, 1, 25},
		{"oversized page size", 2, 1000, 2, MaxPageSize},
		{"in range untouched", 4, 50, 4, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page, size := Clamp(tc.page, tc.size)
			assert.Equal(t, tc.wantPage, page)
			assert.Equal(t, tc.wantPageSize, size)
		})
	}
}

func TestPageDerivedFields(t *testing.T) {
	p := Page[int]{Items: []int{1, 2, 3}, Page: 2, PageSize: 3, TotalCount: 7}

	assert.Equal(t, 3, p.TotalPages())
	assert.True(t, p.HasNext())
	assert.True(t, p.HasPrevious())

	last := Page[int]{Page: 3, PageSize: 3, TotalCount: 7}
	assert.False(t, last.HasNext())

	empty := Page[int]{Page: 1, PageSize: 10}
	assert.Zero(t, empty.TotalPages())
	assert.False(t, empty.HasNext())
	assert.False(t, empty.HasPrevious())
}

func TestMapPreservesPagingState(t *testing.T) {
	src := Page[int]{Items: []int{1, 2}, Page: 3, PageSize: 2, TotalCount: 9}

	dst := Map(src, strconv.Itoa)

	assert.Equal(t, []string{"1", "2"}, dst.Items)
	assert.Equal(t, src.Meta(), dst.Meta())
}
