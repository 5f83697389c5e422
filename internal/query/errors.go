package query

import "errors"

// Failure classes surfaced by the query layer. Handlers map these to
// HTTP statuses with errors.Is.
var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrInvalidSortField = errors.New("invalid sort field")
	ErrFilter           = errors.New("error applying filters")
	ErrPagination       = errors.New("error applying sorting or pagination")
)
