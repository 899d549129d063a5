package model

import (
	"time"
)

// License is one entitlement grant for a business. The plaintext key is never
// stored; only its ciphertext and the IV used to produce it.
type License struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	BusinessID   uint      `json:"businessId" gorm:"not null;index"`
	KeyEncrypted string    `json:"-" gorm:"not null"`
	IV           string    `json:"-" gorm:"column:iv;size:32;not null"`
	StatusID     uint      `json:"statusId" gorm:"not null;index"`
	StaffLimit   int       `json:"staffLimit" gorm:"not null;check:chk_licenses_staff_limit,staff_limit >= 0"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// LicenseView is the console projection of a license joined with its status
// and business names.
type LicenseView struct {
	License
	Status       string `json:"status"`
	BusinessName string `json:"businessName"`
}
