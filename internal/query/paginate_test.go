package query_test

import (
	"testing"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/internal/query"

	"github.com/stretchr/testify/assert"
)

func numbered(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

func TestPaginate(t *testing.T) {
	t.Run("Empty collection is page 1 of 1", func(t *testing.T) {
		page := query.Paginate([]domain.Job{}, 10, 1)
		assert.Empty(t, page.Data)
		assert.NotNil(t, page.Data)
		assert.Equal(t, 1, page.TotalPages)
		assert.Equal(t, 0, page.Total)
	})

	t.Run("Last partial page", func(t *testing.T) {
		page := query.Paginate(numbered(23), 10, 3)
		assert.Equal(t, []int{21, 22, 23}, page.Data)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 23, page.Total)
		assert.Equal(t, 3, page.Page)
	})

	t.Run("Exact multiple has no trailing empty page", func(t *testing.T) {
		page := query.Paginate(numbered(20), 10, 2)
		assert.Equal(t, 2, page.TotalPages)
		assert.Len(t, page.Data, 10)
	})

	t.Run("Out of range pages are not clamped", func(t *testing.T) {
		beyond := query.Paginate(numbered(5), 10, 4)
		assert.Empty(t, beyond.Data)
		assert.Equal(t, 4, beyond.Page)
		assert.Equal(t, 1, beyond.TotalPages)

		zero := query.Paginate(numbered(5), 10, 0)
		assert.Empty(t, zero.Data)
	})

	t.Run("Non-positive page size falls back to the default", func(t *testing.T) {
		page := query.Paginate(numbered(15), 0, 1)
		assert.Equal(t, query.DefaultPageSize, page.PageSize)
		assert.Len(t, page.Data, 10)
	})

	t.Run("Page data does not alias the input", func(t *testing.T) {
		items := numbered(3)
		page := query.Paginate(items, 10, 1)
		page.Data[0] = 99
		assert.Equal(t, 1, items[0])
	})
}

// The pages of any collection reassemble it exactly.
func TestPaginateCoverage(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10, 11, 23, 57} {
		for _, size := range []int{1, 3, 10, 25} {
			items := numbered(n)
			first := query.Paginate(items, size, 1)
			wantPages := (n + size - 1) / size
			if wantPages < 1 {
				wantPages = 1
			}
			assert.Equal(t, wantPages, first.TotalPages, "n=%d size=%d", n, size)

			var all []int
			for p := 1; p <= first.TotalPages; p++ {
				all = append(all, query.Paginate(items, size, p).Data...)
			}
			if n == 0 {
				assert.Empty(t, all)
				continue
			}
			assert.Equal(t, items, all, "n=%d size=%d", n, size)
		}
	}
}

func TestJobSearchResetsPage(t *testing.T) {
	s := domain.NewJobSearch().WithPage(4)
	assert.Equal(t, 4, s.Page)

	s = s.WithFilter(domain.JobFilter{Location: "Remote"})
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, "Remote", s.Filter.Location)

	s = s.WithPage(3).WithSort(domain.SortTitle)
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, domain.SortTitle, s.Sort)
}
