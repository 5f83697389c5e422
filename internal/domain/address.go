package domain

// Address Model
//
// One address may be shared by many users, so addresses are never
// removed when a user is removed.
type Address struct {
	ID           uint   `gorm:"primaryKey"`     // Primary key
	Street       string `gorm:"size:255"`       // Street name
	StreetNumber string `gorm:"size:10"`        // Street number (kept as text, e.g. "46852/B")
	CityCode     string `gorm:"size:10"`        // Postal / city code
	City         string `gorm:"size:100"`       // City name
	Country      string `gorm:"size:100;index"` // Country name, indexed for filtering
}

// TableName overrides the default table name
func (Address) TableName() string { return "address" }
