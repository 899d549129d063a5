package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mantra-gor/BillSane-Admin/internal/model"
)

func TestMasterLists(t *testing.T) {
	db := newTestDB(t)
	svc := NewMasterService(db)
	ctx := context.Background()

	countries, err := svc.Countries(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, countries)

	var india model.Country
	for _, c := range countries {
		if c.Code == "IN" {
			india = c
		}
	}
	require.NotZero(t, india.ID)

	all, err := svc.States(ctx, 0)
	require.NoError(t, err)
	indian, err := svc.States(ctx, india.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, indian)
	assert.Less(t, len(indian), len(all))
	for _, s := range indian {
		assert.Equal(t, india.ID, s.CountryID)
	}

	none, err := svc.States(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, none)

	categories, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, categories)

	currencies, err := svc.Currencies(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, currencies)
}

func TestPlans(t *testing.T) {
	db := newTestDB(t)
	svc := NewMasterService(db)
	ctx := context.Background()

	plans, err := svc.Plans(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, plans)
	for i := 1; i < len(plans); i++ {
		assert.True(t, plans[i-1].Price.LessThanOrEqual(plans[i].Price))
	}

	plan, err := svc.Plan(ctx, plans[0].ID)
	require.NoError(t, err)
	assert.Equal(t, plans[0].Name, plan.Name)
	assert.NotEmpty(t, plan.Features)

	_, err = svc.Plan(ctx, 9999)
	assert.ErrorIs(t, err, ErrPlanNotFound)
}
