package query_test

import (
	"net/url"
	"testing"

	"loyalty_service/internal/query"

	"github.com/stretchr/testify/require"
)

func TestBuildCountryFilterIsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)

	users, info := run(t, db, "country=lesotho")
	require.EqualValues(t, 1, info.TotalItems)
	require.Equal(t, []string{"Cynthia"}, firstNames(users))

	users, _ = run(t, db, "country=LESOTHO")
	require.Equal(t, []string{"Cynthia"}, firstNames(users))
}

func TestBuildRoutesFiltersToOwningEntity(t *testing.T) {
	db := newTestDB(t)

	// AppUser field
	users, _ := run(t, db, "first_name=CYNTHIA")
	require.Equal(t, []string{"Cynthia"}, firstNames(users))

	// Address field
	users, _ = run(t, db, "city=vienna&sort_by=first_name")
	require.Equal(t, []string{"Alice", "Bob"}, firstNames(users))

	// CustomerRelationship field
	users, _ = run(t, db, "points=2663219")
	require.Equal(t, []string{"Cynthia"}, firstNames(users))
}

func TestBuildCombinedFiltersAllApply(t *testing.T) {
	db := newTestDB(t)

	users, info := run(t, db, "country=austria&gender=m")
	require.EqualValues(t, 1, info.TotalItems)
	require.Equal(t, []string{"Bob"}, firstNames(users))

	// Same country, contradictory gender
	_, info = run(t, db, "country=lesotho&gender=m")
	require.EqualValues(t, 0, info.TotalItems)
}

func TestBuildRelatedIDFilters(t *testing.T) {
	db := newTestDB(t)

	users, _ := run(t, db, "address_id=1")
	require.Equal(t, []string{"Cynthia"}, firstNames(users))

	users, _ = run(t, db, "relationship_id=2")
	require.Equal(t, []string{"Bob"}, firstNames(users))
}

func TestBuildBirthdayFilter(t *testing.T) {
	db := newTestDB(t)

	users, _ := run(t, db, "birthday=1960-10-27")
	require.Equal(t, []string{"Cynthia"}, firstNames(users))

	_, info := run(t, db, "birthday=1999-01-01")
	require.EqualValues(t, 0, info.TotalItems)
}

func TestBuildCreatedDateRanges(t *testing.T) {
	db := newTestDB(t)

	users, _ := run(t, db, "appuser_created=2024-01-10")
	require.Equal(t, []string{"Bob"}, firstNames(users))

	users, _ = run(t, db, "appuser_created_after=2024-06-01&sort_by=first_name")
	require.Equal(t, []string{"Alice", "Cynthia"}, firstNames(users))

	// _before is inclusive of the named day
	users, _ = run(t, db, "appuser_created_before=2024-01-10")
	require.Equal(t, []string{"Bob"}, firstNames(users))
}

func TestBuildLastActivityRanges(t *testing.T) {
	db := newTestDB(t)

	users, _ := run(t, db, "last_activity_after=2024-06-01")
	require.Equal(t, []string{"Alice"}, firstNames(users))

	users, _ = run(t, db, "last_activity_before=2023-12-31")
	require.Equal(t, []string{"Bob"}, firstNames(users))
}

func TestBuildRejectsMalformedValues(t *testing.T) {
	db := newTestDB(t)

	for _, raw := range []string{"appuser_created=notadate", "birthday=27-10-1960", "points=lots", "id=x"} {
		values, err := url.ParseQuery(raw)
		require.NoError(t, err)
		p, err := query.ParseParams(values)
		require.NoError(t, err, raw)
		_, err = query.Build(db, p)
		require.ErrorIs(t, err, query.ErrFilter, raw)
	}
}

func TestBuildSortAscendingAndDescending(t *testing.T) {
	db := newTestDB(t)

	users, _ := run(t, db, "sort_by=first_name")
	require.Equal(t, []string{"Alice", "Bob", "Cynthia"}, firstNames(users))

	users, _ = run(t, db, "sort_by=first_name&order=desc")
	require.Equal(t, []string{"Cynthia", "Bob", "Alice"}, firstNames(users))
}

func TestBuildSortTieBreaksByID(t *testing.T) {
	db := newTestDB(t)

	// Bob and Alice share a last name; Bob has the lower id
	users, _ := run(t, db, "sort_by=last_name")
	require.Equal(t, []string{"Bob", "Alice", "Cynthia"}, firstNames(users))
}

func TestBuildSortByRelationshipPoints(t *testing.T) {
	db := newTestDB(t)

	// The join multiplies Alice by her two relationships, matching the
	// row multiplicity of the source system
	users, info := run(t, db, "sort_by=customerrelationship__points&order=desc")
	require.EqualValues(t, 4, info.TotalItems)
	require.Equal(t, []string{"Cynthia", "Alice", "Alice", "Bob"}, firstNames(users))
}
