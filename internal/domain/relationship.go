package domain

import "time"

// CustomerRelationship Model
//
// A user may hold any number of relationships (loyalty enrollments);
// they are removed together with the owning user.
type CustomerRelationship struct {
	ID           uint      `gorm:"primaryKey"`                                       // Primary key
	AppUserID    uint      `gorm:"column:appuser_id;index"`                          // Foreign key to AppUser
	AppUser      AppUser   `gorm:"foreignKey:AppUserID;constraint:OnDelete:CASCADE"` // Owning user
	Points       int       // Accrued loyalty points
	Created      time.Time `gorm:"autoCreateTime"` // Set once at creation
	LastActivity time.Time // Timestamp of the latest activity
}

// TableName overrides the default table name
func (CustomerRelationship) TableName() string { return "customerrelationship" }
