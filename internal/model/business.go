package model

import "time"

// Business is a firm registered through the onboarding wizard.
type Business struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"business_name" gorm:"not null"`
	CategoryID  uint      `json:"categoryId" gorm:"index"`
	TaxID       string    `json:"gst_no"`
	BranchCount int       `json:"business_branches"`
	StaffCount  int       `json:"no_of_staff"`
	CountryID   uint      `json:"countryId"`
	StateID     uint      `json:"stateId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
