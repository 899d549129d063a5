package model

type AdminUserInput struct {
	Name  string `json:"name" validate:"required,max=120"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,phone"`
}

type BusinessInput struct {
	Name        string         `json:"business_name" validate:"required,max=200"`
	CategoryID  uint           `json:"categoryId" validate:"required"`
	TaxID       string         `json:"gst_no" validate:"omitempty,gstin"`
	BranchCount int            `json:"business_branches" validate:"gte=0"`
	StaffCount  int            `json:"no_of_staff" validate:"gte=0"`
	CountryID   uint           `json:"countryId" validate:"required"`
	StateID     uint           `json:"stateId" validate:"required"`
	AdminUser   AdminUserInput `json:"adminUser"`
}
