package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/mantra-gor/BillSane-Admin/internal/model"
)

func validBusinessInput(t *testing.T, db *gorm.DB) model.BusinessInput {
	t.Helper()
	var country model.Country
	require.NoError(t, db.Where("code = ?", "IN").First(&country).Error)
	var state model.State
	require.NoError(t, db.Where("country_id = ?", country.ID).First(&state).Error)
	var category model.Category
	require.NoError(t, db.First(&category).Error)

	return model.BusinessInput{
		Name:        " Sharma Textiles ",
		CategoryID:  category.ID,
		TaxID:       "27aapfu0939f1zv",
		BranchCount: 2,
		StaffCount:  12,
		CountryID:   country.ID,
		StateID:     state.ID,
		AdminUser: model.AdminUserInput{
			Name:  "Priya Sharma",
			Email: "Priya@Example.com",
			Phone: "+919876543210",
		},
	}
}

func TestCreateBusiness(t *testing.T) {
	db := newTestDB(t)
	svc := NewBusinessService(db, zap.NewNop())
	ctx := context.Background()

	business, admin, err := svc.Create(ctx, validBusinessInput(t, db))
	require.NoError(t, err)
	assert.NotZero(t, business.ID)
	assert.Equal(t, "Sharma Textiles", business.Name)
	assert.Equal(t, "27AAPFU0939F1ZV", business.TaxID)
	assert.Equal(t, business.ID, admin.BusinessID)
	assert.True(t, admin.IsAdmin)
	assert.Equal(t, "priya@example.com", admin.Email)

	got, err := svc.Get(ctx, business.ID)
	require.NoError(t, err)
	assert.Equal(t, business.Name, got.Name)

	_, err = svc.Get(ctx, 9999)
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestCreateBusinessReferenceChecks(t *testing.T) {
	db := newTestDB(t)
	svc := NewBusinessService(db, zap.NewNop())

	var foreign model.State
	require.NoError(t, db.Joins("JOIN countries ON countries.id = states.country_id").
		Where("countries.code = ?", "US").First(&foreign).Error)

	tests := []struct {
		name  string
		edit  func(*model.BusinessInput)
		field string
	}{
		{"unknown category", func(in *model.BusinessInput) { in.CategoryID = 9999 }, "categoryId"},
		{"unknown country", func(in *model.BusinessInput) { in.CountryID = 9999 }, "countryId"},
		{"unknown state", func(in *model.BusinessInput) { in.StateID = 99999 }, "stateId"},
		{"state from another country", func(in *model.BusinessInput) { in.StateID = foreign.ID }, "stateId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validBusinessInput(t, db)
			tt.edit(&in)

			_, _, err := svc.Create(context.Background(), in)
			var fe *FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tt.field, fe.Field)
		})
	}

	var n int64
	require.NoError(t, db.Model(&model.Business{}).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, db.Model(&model.User{}).Count(&n).Error)
	assert.Zero(t, n)
}
