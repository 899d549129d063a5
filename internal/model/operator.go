package model

import (
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

const (
	OperatorActive   = "active"
	OperatorDisabled = "disabled"
)

// Operator is a staff account for the admin console.
type Operator struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"unique;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Role      string    `json:"role" gorm:"default:'viewer'"`
	Status    string    `json:"status" gorm:"default:'active'"`
	CreatedAt time.Time `json:"createdat"`
	UpdatedAt time.Time `json:"updatedat"`
	LastLogin time.Time `json:"lastlogin"`
}
