package service

import (
	"errors"
	"fmt"
)

// License errors. Handlers map these to HTTP statuses with errors.Is.
var (
	ErrMissingKey           = errors.New("license key is required")
	ErrUnregisteredBusiness = errors.New("business is not registered")
	ErrBusinessNotFound     = errors.New("business not found")
	ErrLicenseNotFound      = errors.New("license not found")
	ErrInvalidLicense       = errors.New("invalid license key")
	ErrLicenseInactive      = errors.New("license is not active")
	ErrLicenseExists        = errors.New("business already has an active license")
	ErrActiveStatusMissing  = errors.New("active status not found")
	ErrStatusUnknown        = errors.New("unknown license status")
)

// Catalog and console errors.
var (
	ErrPlanNotFound       = errors.New("plan not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrOperatorNotFound   = errors.New("operator not found")
	ErrOperatorDisabled   = errors.New("operator account is disabled")
)

// FieldError is a request error tied to one input field.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
