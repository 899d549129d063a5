package model

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Country struct {
	ID     uint    `json:"id" gorm:"primaryKey"`
	Code   string  `json:"code" gorm:"uniqueIndex;size:2;not null"`
	Name   string  `json:"name" gorm:"not null"`
	States []State `json:"states,omitempty"`
}

type State struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"not null;uniqueIndex:idx_states_country_name,priority:2"`
	CountryID uint   `json:"countryId" gorm:"not null;uniqueIndex:idx_states_country_name,priority:1"`
}

type Category struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

type Currency struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Code string `json:"code" gorm:"uniqueIndex;size:3;not null"`
	Name string `json:"name" gorm:"not null"`
}

// Plan is a pricing tier shown on the pricing page. Prices are in the minor
// display unit used by the page.
type Plan struct {
	ID            uint                        `json:"id" gorm:"primaryKey"`
	Name          string                      `json:"name" gorm:"uniqueIndex;not null"`
	Description   string                      `json:"description"`
	Price         decimal.Decimal             `json:"price" gorm:"type:decimal(12,2);not null"`
	OriginalPrice decimal.Decimal             `json:"originalPrice" gorm:"type:decimal(12,2)"`
	Features      datatypes.JSONSlice[string] `json:"features"`
	IsPopular     bool                        `json:"isPopular"`
}

// Discount returns the amount saved against the original price, or zero when
// there is no original price above the current one.
func (p Plan) Discount() decimal.Decimal {
	if p.OriginalPrice.LessThanOrEqual(p.Price) {
		return decimal.Zero
	}
	return p.OriginalPrice.Sub(p.Price)
}

// MarshalJSON adds the computed discount to the plan's fields.
func (p Plan) MarshalJSON() ([]byte, error) {
	type plan Plan
	return json.Marshal(struct {
		plan
		Discount decimal.Decimal `json:"discount"`
	}{plan(p), p.Discount()})
}
