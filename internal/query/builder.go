package query

import (
	"fmt"     // Error formatting
	"strconv" // Numeric filter validation
	"strings" // Sort prefix check
	"time"    // Calendar-day bounds

	"loyalty_service/internal/domain" // Domain models

	"github.com/sirupsen/logrus" // Structured logging
	"gorm.io/gorm"               // GORM ORM library
)

const dayLayout = "2006-01-02"

// Build composes the filtered, sorted query over appuser joined with
// address and, when referenced, customerrelationship. The returned
// query is deferred: nothing executes until the pager counts and
// fetches it.
func Build(base *gorm.DB, p *Params) (*gorm.DB, error) {
	q := base.Model(&domain.AppUser{}).
		Joins("LEFT JOIN address ON address.id = appuser.address_id").
		Preload("Address")

	if p.touchesRelationship() {
		q = q.Joins("LEFT JOIN customerrelationship ON customerrelationship.appuser_id = appuser.id")
	}

	for _, f := range p.Filters {
		col := filterColumns[f.Key]
		switch col.kind {
		case kindIExact:
			q = q.Where("LOWER("+col.expr+") = LOWER(?)", f.Value)
		case kindNumber:
			n, err := strconv.Atoi(f.Value)
			if err != nil {
				return nil, fmt.Errorf("%w: %s must be an integer, got %q", ErrFilter, f.Key, f.Value)
			}
			q = q.Where(col.expr+" = ?", n)
		case kindDate:
			day, err := parseDay(f.Key, f.Value)
			if err != nil {
				return nil, err
			}
			q = q.Where(col.expr+" >= ? AND "+col.expr+" < ?", day, day.Add(24*time.Hour))
		}
		logrus.WithFields(logrus.Fields{"key": f.Key, "value": f.Value}).Debug("filtering by field")
	}

	for _, r := range p.Ranges {
		col := rangeColumns[r.Base]
		day, err := parseDay(r.Base, r.Value)
		if err != nil {
			return nil, err
		}
		switch r.Bound {
		case BoundOn:
			q = q.Where(col.expr+" >= ? AND "+col.expr+" < ?", day, day.Add(24*time.Hour))
		case BoundAfter:
			q = q.Where(col.expr+" >= ?", day)
		case BoundBefore:
			// Inclusive of the named day
			q = q.Where(col.expr+" < ?", day.Add(24*time.Hour))
		}
		logrus.WithFields(logrus.Fields{"key": r.Base, "bound": r.Bound, "value": r.Value}).Debug("filtering by date range")
	}

	dir := " ASC"
	if p.Desc {
		dir = " DESC"
	}
	order := sortColumns[p.SortBy] + dir
	if p.SortBy != "id" {
		// Deterministic tie-break so pagination is reproducible when
		// the sorted column has duplicate values
		order += ", appuser.id ASC"
	}
	return q.Order(order), nil
}

// touchesRelationship reports whether any filter, range or sort needs
// the customerrelationship join
func (p *Params) touchesRelationship() bool {
	for _, f := range p.Filters {
		if filterColumns[f.Key].entity == entityRelationship {
			return true
		}
	}
	for _, r := range p.Ranges {
		if rangeColumns[r.Base].entity == entityRelationship {
			return true
		}
	}
	return strings.HasPrefix(p.SortBy, "customerrelationship__")
}

// parseDay parses a YYYY-MM-DD value at calendar-date granularity
func parseDay(key, value string) (time.Time, error) {
	day, err := time.Parse(dayLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a date in YYYY-MM-DD form, got %q", ErrFilter, key, value)
	}
	return day, nil
}
