package main

import (
	"flag" // Command-line flags
	"time" // Duration reporting

	"loyalty_service/internal/config" // Application configuration
	dbpkg "loyalty_service/internal/db"
	"loyalty_service/internal/domain" // Domain models

	"github.com/brianvoe/gofakeit/v7" // Fake data generation
	"github.com/sirupsen/logrus"      // Logrus for structured logging
	"gorm.io/gorm"                    // GORM ORM library
)

const batchSize = 1000

var genders = []string{domain.GenderMale, domain.GenderFemale, domain.GenderOther}

// Populates the database with random addresses, users and
// relationships for local testing and benchmarks
func main() {
	addressCount := flag.Int("addresses", 10000, "number of addresses to create")
	userCount := flag.Int("users", 10000, "number of users to create")
	relationshipCount := flag.Int("relationships", 20000, "number of customer relationships to create")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.LoadConfig()
	db, err := dbpkg.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	if err := dbpkg.Migrate(db); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}

	start := time.Now()
	logrus.Info("Generating records started")

	addressIDs, err := seedAddresses(db, *addressCount)
	if err != nil {
		logrus.Fatalf("failed to seed addresses: %v", err)
	}
	logrus.Infof("Inserted %d addresses", len(addressIDs))

	userIDs, err := seedUsers(db, *userCount, addressIDs)
	if err != nil {
		logrus.Fatalf("failed to seed users: %v", err)
	}
	logrus.Infof("Inserted %d users", len(userIDs))

	if err := seedRelationships(db, *relationshipCount, userIDs); err != nil {
		logrus.Fatalf("failed to seed relationships: %v", err)
	}
	logrus.Infof("Inserted %d relationships", *relationshipCount)

	logrus.Infof("Populating the database took %s", time.Since(start))
}

func seedAddresses(db *gorm.DB, n int) ([]uint, error) {
	addresses := make([]domain.Address, n)
	for i := range addresses {
		addresses[i] = domain.Address{
			Street:       gofakeit.Street(),
			StreetNumber: gofakeit.DigitN(5),
			CityCode:     gofakeit.Zip(),
			City:         gofakeit.City(),
			Country:      gofakeit.Country(),
		}
	}
	if err := db.CreateInBatches(&addresses, batchSize).Error; err != nil {
		return nil, err
	}
	ids := make([]uint, n)
	for i, a := range addresses {
		ids[i] = a.ID
	}
	return ids, nil
}

func seedUsers(db *gorm.DB, n int, addressIDs []uint) ([]uint, error) {
	usedPhones := make(map[string]struct{}, n) // Guards the unique constraint
	users := make([]domain.AppUser, n)
	for i := range users {
		phone := gofakeit.Phone()
		for {
			if _, taken := usedPhones[phone]; !taken {
				break
			}
			phone = gofakeit.Phone()
		}
		usedPhones[phone] = struct{}{}

		var birthday *time.Time
		if gofakeit.Number(0, 9) > 1 { // Birthday is optional
			b := gofakeit.DateRange(
				time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2006, 1, 1, 0, 0, 0, 0, time.UTC),
			).Truncate(24 * time.Hour)
			birthday = &b
		}

		users[i] = domain.AppUser{
			FirstName:   gofakeit.FirstName(),
			LastName:    gofakeit.LastName(),
			Gender:      genders[gofakeit.Number(0, len(genders)-1)],
			CustomerID:  gofakeit.UUID(),
			PhoneNumber: phone,
			AddressID:   addressIDs[gofakeit.Number(0, len(addressIDs)-1)],
			Birthday:    birthday,
		}
	}
	if err := db.CreateInBatches(&users, batchSize).Error; err != nil {
		return nil, err
	}
	ids := make([]uint, n)
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids, nil
}

func seedRelationships(db *gorm.DB, n int, userIDs []uint) error {
	relationships := make([]domain.CustomerRelationship, n)
	now := time.Now()
	for i := range relationships {
		relationships[i] = domain.CustomerRelationship{
			AppUserID:    userIDs[gofakeit.Number(0, len(userIDs)-1)],
			Points:       gofakeit.Number(0, 3_000_000),
			LastActivity: gofakeit.DateRange(now.AddDate(-2, 0, 0), now),
		}
	}
	return db.CreateInBatches(&relationships, batchSize).Error
}
