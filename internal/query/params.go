package query

import (
	"fmt"     // Error formatting
	"net/url" // Query parameter values
	"sort"    // Deterministic key ordering
	"strconv" // String to int conversion
	"strings" // Key suffix handling
)

// Bound distinguishes the three forms of a date-range key
type Bound int

const (
	BoundOn     Bound = iota // bare key: within that calendar day
	BoundAfter               // _after suffix: on or after that day
	BoundBefore              // _before suffix: on or before that day
)

// Filter is one validated exact-match filter
type Filter struct {
	Key   string // recognized filter key
	Value string // raw query value
}

// RangeFilter is one validated date-range filter
type RangeFilter struct {
	Base  string // key family, e.g. "last_activity"
	Value string // raw date value, YYYY-MM-DD
	Bound Bound  // which bound the key expressed
}

// Params is the validated form of the query string
type Params struct {
	Page     int           // 1-based page number
	PageSize int           // records per page
	SortBy   string        // allow-listed sortable path
	Desc     bool          // descending sort
	Filters  []Filter      // exact-match filters, in key order
	Ranges   []RangeFilter // date-range filters, in key order
}

// ParseParams partitions the query string into pagination, sort and
// recognized filter keys. Any unrecognized key rejects the whole
// request: silently ignoring typos would make a misspelled filter
// return the unfiltered dataset.
func ParseParams(values url.Values) (*Params, error) {
	p := &Params{Page: 1, PageSize: 10, SortBy: "id"}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var unknown []string
	for _, key := range keys {
		value := values.Get(key)
		switch key {
		case "page":
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("%w: page must be a positive integer, got %q", ErrInvalidParameter, value)
			}
			p.Page = n
		case "page_size":
			n, err := strconv.Atoi(value)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("%w: page_size must be a positive integer, got %q", ErrInvalidParameter, value)
			}
			p.PageSize = n
		case "sort_by":
			p.SortBy = value
		case "order":
			switch value {
			case "asc":
				p.Desc = false
			case "desc":
				p.Desc = true
			default:
				return nil, fmt.Errorf("%w: order must be %q or %q, got %q", ErrInvalidParameter, "asc", "desc", value)
			}
		default:
			if _, ok := filterColumns[key]; ok {
				p.Filters = append(p.Filters, Filter{Key: key, Value: value})
				continue
			}
			if base, bound, ok := rangeKey(key); ok {
				p.Ranges = append(p.Ranges, RangeFilter{Base: base, Value: value, Bound: bound})
				continue
			}
			unknown = append(unknown, key)
		}
	}

	if len(unknown) > 0 {
		return nil, fmt.Errorf("%w: unrecognized query parameters: %s", ErrInvalidParameter, strings.Join(unknown, ", "))
	}
	if _, ok := sortColumns[p.SortBy]; !ok {
		return nil, fmt.Errorf("%w: %q is not a sortable field", ErrInvalidSortField, p.SortBy)
	}
	return p, nil
}

// rangeKey resolves a key of the form base, base_after or base_before
// against the date-range families
func rangeKey(key string) (string, Bound, bool) {
	base, bound := key, BoundOn
	if b, ok := strings.CutSuffix(key, "_after"); ok {
		base, bound = b, BoundAfter
	} else if b, ok := strings.CutSuffix(key, "_before"); ok {
		base, bound = b, BoundBefore
	}
	if _, ok := rangeColumns[base]; !ok {
		return "", 0, false
	}
	return base, bound, true
}
