package query_test

import (
	"net/url"
	"testing"
	"time"

	"loyalty_service/internal/domain"
	"loyalty_service/internal/query"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory database with the loyalty schema and a
// small fixed dataset:
//
//	Cynthia Wallace  (Lesotho)  1 relationship, 2663219 points
//	Bob Smith        (Austria)  1 relationship, 10 points
//	Alice Smith      (Austria)  2 relationships, 500 and 800 points
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A pooled second connection would see an empty :memory: database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&domain.Address{}, &domain.AppUser{}, &domain.CustomerRelationship{}))
	seed(t, db)
	return db
}

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()

	lesotho := domain.Address{Street: "Stanley Manors", StreetNumber: "46852", CityCode: "21040", City: "Russellmouth", Country: "Lesotho"}
	austria := domain.Address{Street: "Ringstrasse", StreetNumber: "12", CityCode: "1010", City: "Vienna", Country: "Austria"}
	require.NoError(t, db.Create(&lesotho).Error)
	require.NoError(t, db.Create(&austria).Error)

	birthday := date(t, "1960-10-27")
	users := []domain.AppUser{
		{FirstName: "Cynthia", LastName: "Wallace", Gender: domain.GenderOther, CustomerID: "CUST-001", PhoneNumber: "743-698-5427x65", AddressID: lesotho.ID, Birthday: &birthday, Created: date(t, "2024-12-20")},
		{FirstName: "Bob", LastName: "Smith", Gender: domain.GenderMale, CustomerID: "CUST-002", PhoneNumber: "555-0001", AddressID: austria.ID, Created: date(t, "2024-01-10")},
		{FirstName: "Alice", LastName: "Smith", Gender: domain.GenderFemale, CustomerID: "CUST-003", PhoneNumber: "555-0002", AddressID: austria.ID, Created: date(t, "2024-06-15")},
	}
	for i := range users {
		require.NoError(t, db.Create(&users[i]).Error)
	}

	relationships := []domain.CustomerRelationship{
		{AppUserID: users[0].ID, Points: 2663219, LastActivity: date(t, "2024-02-18")},
		{AppUserID: users[1].ID, Points: 10, LastActivity: date(t, "2023-05-01")},
		{AppUserID: users[2].ID, Points: 500, LastActivity: date(t, "2024-03-01")},
		{AppUserID: users[2].ID, Points: 800, LastActivity: date(t, "2024-07-01")},
	}
	for i := range relationships {
		require.NoError(t, db.Create(&relationships[i]).Error)
	}
}

// run pushes a raw query string through the validator, builder and
// pager and returns the fetched page
func run(t *testing.T, db *gorm.DB, raw string) ([]domain.AppUser, *query.PageInfo) {
	t.Helper()
	values, err := url.ParseQuery(raw)
	require.NoError(t, err)
	p, err := query.ParseParams(values)
	require.NoError(t, err)
	q, err := query.Build(db, p)
	require.NoError(t, err)
	var users []domain.AppUser
	info, err := query.Paginate(q, p.Page, p.PageSize, &users)
	require.NoError(t, err)
	return users, info
}

func firstNames(users []domain.AppUser) []string {
	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.FirstName
	}
	return names
}
