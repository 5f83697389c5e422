package api

import "time"

// AddressResponse is the nested address object in an entry
type AddressResponse struct {
	AddressID    uint   `json:"address_id"`    // Address identifier
	Street       string `json:"street"`        // Street name
	StreetNumber string `json:"street_number"` // Street number
	CityCode     string `json:"city_code"`     // Postal / city code
	City         string `json:"city"`          // City name
	Country      string `json:"country"`       // Country name
}

// RelationshipResponse is one nested loyalty relationship in an entry
type RelationshipResponse struct {
	RelationshipID uint      `json:"relationship_id"` // Relationship identifier
	Points         int       `json:"points"`          // Accrued loyalty points
	Created        time.Time `json:"created"`         // Creation timestamp
	LastActivity   time.Time `json:"last_activity"`   // Latest activity timestamp
}

// EntryResponse is one user with its address and relationships
type EntryResponse struct {
	ID                    uint                   `json:"id"`                     // User identifier
	FirstName             string                 `json:"first_name"`             // First name
	LastName              string                 `json:"last_name"`              // Last name
	Gender                string                 `json:"gender"`                 // Gender code: M, F or O
	CustomerID            string                 `json:"customer_id"`            // External customer identifier
	PhoneNumber           string                 `json:"phone_number"`           // Phone number
	Created               time.Time              `json:"created"`                // Creation timestamp
	Birthday              *string                `json:"birthday"`               // Date of birth, YYYY-MM-DD or null
	LastUpdated           time.Time              `json:"last_updated"`           // Last mutation timestamp
	Address               AddressResponse        `json:"address"`                // Nested address
	CustomerRelationships []RelationshipResponse `json:"customer_relationships"` // Nested relationships
}

// ListResponse is the paginated envelope for /entries
type ListResponse struct {
	Page       int             `json:"page"`        // Effective page number
	TotalPages int             `json:"total_pages"` // Total number of pages
	TotalItems int64           `json:"total_items"` // Total matching records
	Results    []EntryResponse `json:"results"`     // Current page of entries
}
