package model

import (
	"time"
)

const ActionValidate = "validate"

// LicenseUsage records one validation attempt. LicenseID is zero when no
// license matched the business.
type LicenseUsage struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	LicenseID  uint      `json:"licenseId" gorm:"index"`
	BusinessID uint      `json:"businessId" gorm:"index"`
	Action     string    `json:"action"`
	Success    bool      `json:"success"`
	Reason     string    `json:"reason"`
	IPAddress  string    `json:"ip_address"`
	UserAgent  string    `json:"user_agent"`
	Timestamp  time.Time `json:"timestamp" gorm:"index"`
}
