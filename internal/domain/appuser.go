package domain

import "time"

// Gender codes stored on AppUser
const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

// AppUser Model
type AppUser struct {
	ID          uint       `gorm:"primaryKey"`          // Primary key
	FirstName   string     `gorm:"size:50"`             // First name
	LastName    string     `gorm:"size:50"`             // Last name
	Gender      string     `gorm:"size:1"`              // Gender code: M, F or O
	CustomerID  string     `gorm:"size:50;uniqueIndex"` // Globally unique external identifier
	PhoneNumber string     `gorm:"size:15;uniqueIndex"` // Globally unique phone number
	Created     time.Time  `gorm:"autoCreateTime"`      // Set once at creation
	AddressID   uint       // Foreign key to Address
	Address     Address    `gorm:"constraint:OnDelete:CASCADE"` // Deleting the address removes the user
	Birthday    *time.Time `gorm:"type:date"`                   // Optional date of birth
	LastUpdated time.Time  `gorm:"autoUpdateTime"`              // Bumped on every mutation
}

// TableName overrides the default table name
func (AppUser) TableName() string { return "appuser" }
