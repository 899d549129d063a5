package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/mantra-gor/BillSane-Admin/internal/model"
)

// MasterService serves the read-only reference lists used by the pricing
// page and the registration wizard.
type MasterService struct {
	db *gorm.DB
}

func NewMasterService(db *gorm.DB) *MasterService {
	return &MasterService{db: db}
}

func (s *MasterService) Countries(ctx context.Context) ([]model.Country, error) {
	countries := make([]model.Country, 0)
	if err := s.db.WithContext(ctx).Order("name").Find(&countries).Error; err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	return countries, nil
}

// States lists states, restricted to one country when countryID is non-zero.
func (s *MasterService) States(ctx context.Context, countryID uint) ([]model.State, error) {
	q := s.db.WithContext(ctx).Order("name")
	if countryID != 0 {
		q = q.Where("country_id = ?", countryID)
	}

	states := make([]model.State, 0)
	if err := q.Find(&states).Error; err != nil {
		return nil, fmt.Errorf("list states: %w", err)
	}
	return states, nil
}

func (s *MasterService) Categories(ctx context.Context) ([]model.Category, error) {
	categories := make([]model.Category, 0)
	if err := s.db.WithContext(ctx).Order("name").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

func (s *MasterService) Currencies(ctx context.Context) ([]model.Currency, error) {
	currencies := make([]model.Currency, 0)
	if err := s.db.WithContext(ctx).Order("code").Find(&currencies).Error; err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}
	return currencies, nil
}

// Plans lists pricing plans cheapest first.
func (s *MasterService) Plans(ctx context.Context) ([]model.Plan, error) {
	plans := make([]model.Plan, 0)
	if err := s.db.WithContext(ctx).Order("price").Order("id").Find(&plans).Error; err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}
	return plans, nil
}

func (s *MasterService) Plan(ctx context.Context, id uint) (*model.Plan, error) {
	var plan model.Plan
	if err := s.db.WithContext(ctx).First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlanNotFound
		}
		return nil, fmt.Errorf("find plan: %w", err)
	}
	return &plan, nil
}
