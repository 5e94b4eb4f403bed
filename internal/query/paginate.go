package query

import "go-jobboard-backend/internal/domain"

// DefaultPageSize is the job listing page size
const DefaultPageSize = 10

// TotalPages is ceil(n/pageSize) but never less than 1, so an empty
// collection still reads as "page 1 of 1".
func TotalPages(n, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	pages := (n + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate slices one page out of items. page is 1-based and is not clamped:
// a page outside [1, TotalPages] yields no items.
func Paginate[T any](items []T, pageSize, page int) domain.PaginatedResult[T] {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	result := domain.PaginatedResult[T]{
		Data:       []T{},
		Total:      len(items),
		Page:       page,
		PageSize:   pageSize,
		TotalPages: TotalPages(len(items), pageSize),
	}
	if page < 1 {
		return result
	}

	start := (page - 1) * pageSize
	if start >= len(items) {
		return result
	}
	end := min(start+pageSize, len(items))
	result.Data = append(result.Data, items[start:end]...)
	return result
}
