package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProductsPagination(t *testing.T) {
	tests := []struct {
		name               string
		page               int32
		limit              int32
		total              int64
		expectedTotalPages int32
	}{
		{name: "exact multiple", page: 1, limit: 10, total: 20, expectedTotalPages: 2},
		{name: "partial last page", page: 2, limit: 10, total: 21, expectedTotalPages: 3},
		{name: "empty result", page: 1, limit: 10, total: 0, expectedTotalPages: 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			actual := NewProducts(nil, test.page, test.limit, test.total)
			assert.EqualValues(t, test.page, actual.Pagination.Page)
			assert.EqualValues(t, test.limit, actual.Pagination.Limit)
			assert.EqualValues(t, test.total, actual.Pagination.Total)
			assert.EqualValues(t, test.expectedTotalPages, actual.Pagination.TotalPages)
		})
	}
}
