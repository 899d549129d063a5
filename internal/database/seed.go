package database

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/mantra-gor/BillSane-Admin/internal/model"
)

// Seed loads the reference data the onboarding flow and license service
// depend on. Every step upserts by natural key, so reruns are no-ops.
func Seed(db *gorm.DB, log *zap.Logger) error {
	steps := []struct {
		name string
		fn   func(*gorm.DB) error
	}{
		{"statuses", SeedStatuses},
		{"countries", SeedCountries},
		{"categories", SeedCategories},
		{"currencies", SeedCurrencies},
		{"plans", SeedPlans},
	}

	for _, step := range steps {
		if err := db.Transaction(step.fn); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
		log.Info("seeded", zap.String("table", step.name))
	}
	return nil
}

// SeedStatuses inserts Pending, Active, Expired and Revoked in that order.
func SeedStatuses(db *gorm.DB) error {
	for _, name := range model.Statuses {
		var s model.Status
		if err := db.Where(model.Status{Name: name}).FirstOrCreate(&s).Error; err != nil {
			return err
		}
	}
	return nil
}

func SeedCountries(db *gorm.DB) error {
	for _, cs := range countrySeeds {
		var c model.Country
		err := db.Where(model.Country{Code: cs.Code}).
			Attrs(model.Country{Name: cs.Name}).
			FirstOrCreate(&c).Error
		if err != nil {
			return err
		}

		for _, name := range cs.States {
			var s model.State
			if err := db.Where(model.State{CountryID: c.ID, Name: name}).FirstOrCreate(&s).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

func SeedCategories(db *gorm.DB) error {
	for _, name := range categorySeeds {
		var c model.Category
		if err := db.Where(model.Category{Name: name}).FirstOrCreate(&c).Error; err != nil {
			return err
		}
	}
	return nil
}

func SeedCurrencies(db *gorm.DB) error {
	for _, cs := range currencySeeds {
		var c model.Currency
		err := db.Where(model.Currency{Code: cs.Code}).
			Attrs(model.Currency{Name: cs.Name}).
			FirstOrCreate(&c).Error
		if err != nil {
			return err
		}
	}
	return nil
}

func SeedPlans(db *gorm.DB) error {
	for _, ps := range planSeeds {
		price, err := decimal.NewFromString(ps.Price)
		if err != nil {
			return fmt.Errorf("plan %s price: %w", ps.Name, err)
		}
		original, err := decimal.NewFromString(ps.OriginalPrice)
		if err != nil {
			return fmt.Errorf("plan %s original price: %w", ps.Name, err)
		}

		var p model.Plan
		err = db.Where(model.Plan{Name: ps.Name}).
			Attrs(model.Plan{
				Description:   ps.Description,
				Price:         price,
				OriginalPrice: original,
				Features:      datatypes.JSONSlice[string](ps.Features),
				IsPopular:     ps.IsPopular,
			}).
			FirstOrCreate(&p).Error
		if err != nil {
			return err
		}
	}
	return nil
}
