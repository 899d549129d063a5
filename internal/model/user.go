package model

import (
	"time"
)

// User is a person attached to a business. The first user created with the
// business is its admin.
type User struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	BusinessID uint      `json:"businessId" gorm:"not null;index"`
	IsAdmin    bool      `json:"is_admin"`
	Name       string    `json:"name" gorm:"not null"`
	Email      string    `json:"email" gorm:"not null"`
	Phone      string    `json:"phone"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
