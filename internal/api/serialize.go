package api

import (
	"errors" // Sentinel error
	"fmt"    // Error formatting

	"loyalty_service/internal/domain" // Domain models

	"gorm.io/gorm" // GORM ORM library
)

// ErrSerialization marks a failure while projecting fetched records
// into the nested response shape. Handlers treat it as internal.
var ErrSerialization = errors.New("error serializing data")

const dayLayout = "2006-01-02"

// serializePage projects one page of users into nested entries. The
// relationships for the whole page are loaded with a single query
// keyed by the user ids, never one query per row.
func serializePage(db *gorm.DB, users []domain.AppUser) ([]EntryResponse, error) {
	results := make([]EntryResponse, 0, len(users))
	if len(users) == 0 {
		return results, nil
	}

	ids := make([]uint, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}

	var relationships []domain.CustomerRelationship
	if err := db.Where("appuser_id IN ?", ids).Order("id ASC").Find(&relationships).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	byUser := make(map[uint][]RelationshipResponse, len(users))
	for _, r := range relationships {
		byUser[r.AppUserID] = append(byUser[r.AppUserID], RelationshipResponse{
			RelationshipID: r.ID,
			Points:         r.Points,
			Created:        r.Created,
			LastActivity:   r.LastActivity,
		})
	}

	for _, u := range users {
		if u.Address.ID == 0 {
			// Every user references exactly one address; a missing one
			// means the row set is inconsistent
			return nil, fmt.Errorf("%w: user %d has no address", ErrSerialization, u.ID)
		}
		rels := byUser[u.ID]
		if rels == nil {
			rels = []RelationshipResponse{} // serialize as [], not null
		}
		var birthday *string
		if u.Birthday != nil {
			b := u.Birthday.Format(dayLayout)
			birthday = &b
		}
		results = append(results, EntryResponse{
			ID:          u.ID,
			FirstName:   u.FirstName,
			LastName:    u.LastName,
			Gender:      u.Gender,
			CustomerID:  u.CustomerID,
			PhoneNumber: u.PhoneNumber,
			Created:     u.Created,
			Birthday:    birthday,
			LastUpdated: u.LastUpdated,
			Address: AddressResponse{
				AddressID:    u.Address.ID,
				Street:       u.Address.Street,
				StreetNumber: u.Address.StreetNumber,
				CityCode:     u.Address.CityCode,
				City:         u.Address.City,
				Country:      u.Address.Country,
			},
			CustomerRelationships: rels,
		})
	}
	return results, nil
}
