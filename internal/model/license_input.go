package model

type GenerateLicenseInput struct {
	BusinessID FlexibleID `json:"businessId" validate:"required"`
	StaffLimit *int       `json:"staffLimit" validate:"required,gte=0"`
}

// ValidateLicenseInput is checked by the license service itself so that the
// missing-key and missing-business cases keep their distinct messages.
type ValidateLicenseInput struct {
	Key        string     `json:"key"`
	BusinessID FlexibleID `json:"businessId"`
}

type LicenseStatusInput struct {
	Status string `json:"status" validate:"required,oneof=Pending Active Expired Revoked"`
}

// LicenseQuery filters the console license listing.
type LicenseQuery struct {
	Page       int    `query:"page"`
	PageSize   int    `query:"page_size"`
	BusinessID uint   `query:"businessId"`
	Status     string `query:"status"`
}
