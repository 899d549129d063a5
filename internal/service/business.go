package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mantra-gor/BillSane-Admin/internal/model"
)

// BusinessService registers firms and their admin users.
type BusinessService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewBusinessService(db *gorm.DB, log *zap.Logger) *BusinessService {
	return &BusinessService{db: db, log: log.Named("business")}
}

// Create stores the business and its admin user together. Category, country
// and state must exist, and the state must belong to the country.
func (s *BusinessService) Create(ctx context.Context, in model.BusinessInput) (*model.Business, *model.User, error) {
	business := model.Business{
		Name:        strings.TrimSpace(in.Name),
		CategoryID:  in.CategoryID,
		TaxID:       strings.ToUpper(strings.TrimSpace(in.TaxID)),
		BranchCount: in.BranchCount,
		StaffCount:  in.StaffCount,
		CountryID:   in.CountryID,
		StateID:     in.StateID,
	}
	admin := model.User{
		IsAdmin: true,
		Name:    strings.TrimSpace(in.AdminUser.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.AdminUser.Email)),
		Phone:   strings.TrimSpace(in.AdminUser.Phone),
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := exists(tx, &model.Category{}, in.CategoryID, "categoryId", "category not found"); err != nil {
			return err
		}
		if err := exists(tx, &model.Country{}, in.CountryID, "countryId", "country not found"); err != nil {
			return err
		}

		var state model.State
		if err := tx.First(&state, in.StateID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &FieldError{Field: "stateId", Message: "state not found"}
			}
			return err
		}
		if state.CountryID != in.CountryID {
			return &FieldError{Field: "stateId", Message: "state does not belong to the selected country"}
		}

		if err := tx.Create(&business).Error; err != nil {
			return err
		}
		admin.BusinessID = business.ID
		return tx.Create(&admin).Error
	})
	if err != nil {
		return nil, nil, fmt.Errorf("create business: %w", err)
	}

	s.log.Info("business registered",
		zap.Uint("business_id", business.ID),
		zap.Uint("admin_user_id", admin.ID),
	)
	return &business, &admin, nil
}

// Get returns a business by id.
func (s *BusinessService) Get(ctx context.Context, id uint) (*model.Business, error) {
	var business model.Business
	if err := s.db.WithContext(ctx).First(&business, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("find business: %w", err)
	}
	return &business, nil
}

func exists(tx *gorm.DB, m interface{}, id uint, field, msg string) error {
	var n int64
	if err := tx.Model(m).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return &FieldError{Field: field, Message: msg}
	}
	return nil
}
