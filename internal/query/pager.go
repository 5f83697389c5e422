package query

import (
	"fmt" // Error formatting

	"gorm.io/gorm" // GORM ORM library
)

// PageInfo describes the slice the pager actually returned
type PageInfo struct {
	Page       int   // Effective 1-based page, after clamping
	TotalPages int   // ceil(TotalItems / page size), 0 when empty
	TotalItems int64 // Count of all matching records
}

// Paginate executes the deferred query in two passes: a count, then a
// bounded fetch into dest. A page past the end returns the last valid
// page rather than an empty list, matching the behavior CRM clients
// already rely on.
func Paginate(q *gorm.DB, page, pageSize int, dest any) (*PageInfo, error) {
	if pageSize < 1 {
		return nil, fmt.Errorf("%w: page_size must be positive", ErrInvalidParameter)
	}
	if page < 1 {
		page = 1
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPagination, err)
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	offset := (page - 1) * pageSize
	// The select is applied here, after the count pass: counting runs
	// as count(*), the fetch scans only appuser columns despite joins
	if err := q.Select("appuser.*").Offset(offset).Limit(pageSize).Find(dest).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPagination, err)
	}

	return &PageInfo{Page: page, TotalPages: totalPages, TotalItems: total}, nil
}
