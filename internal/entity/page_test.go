package entity_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/portal/internal/entity"
)

func TestPaginate(t *testing.T) {
	t.Parallel()

	items := make([]int, 23)
	for i := range items {
		items[i] = i
	}

	for _, tt := range []struct {
		name       string
		items      []int
		number     int
		wantItems  int
		wantPages  int
		wantNumber int
	}{
		{name: "first page", items: items, number: 1, wantItems: 10, wantPages: 3, wantNumber: 1},
		{name: "last partial page", items: items, number: 3, wantItems: 3, wantPages: 3, wantNumber: 3},
		{name: "past the end", items: items, number: 4, wantItems: 0, wantPages: 3, wantNumber: 4},
		{name: "zero page is first", items: items, number: 0, wantItems: 10, wantPages: 3, wantNumber: 1},
		{name: "fewer than a page", items: items[:4], number: 1, wantItems: 4, wantPages: 1, wantNumber: 1},
		{name: "empty", items: nil, number: 1, wantItems: 0, wantPages: 0, wantNumber: 1},
		{name: "max int page", items: items[:3], number: math.MaxInt, wantItems: 0, wantPages: 1, wantNumber: math.MaxInt},
		{name: "page just past overflow", items: items, number: math.MaxInt/entity.DefaultPageSize + 2, wantItems: 0, wantPages: 3, wantNumber: math.MaxInt/entity.DefaultPageSize + 2},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := entity.Paginate(tt.items, tt.number, entity.DefaultPageSize)

			require.Len(t, p.Items, tt.wantItems)
			require.Equal(t, tt.wantPages, p.TotalPages)
			require.Equal(t, tt.wantNumber, p.Number)
			require.Equal(t, len(tt.items), p.TotalItems)
		})
	}
}
