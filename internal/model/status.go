package model

// Recognized license status names.
const (
	StatusPending = "Pending"
	StatusActive  = "Active"
	StatusExpired = "Expired"
	StatusRevoked = "Revoked"
)

// Statuses lists the status reference data in seeding order.
var Statuses = []string{StatusPending, StatusActive, StatusExpired, StatusRevoked}

type Status struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}
