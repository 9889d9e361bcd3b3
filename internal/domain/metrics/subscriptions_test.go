package metrics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lithrlnd12/keyhubcentral/internal/domain"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/metrics"
)

func TestSummarizeSubscriptions(t *testing.T) {
	ss := []entity.Subscription{
		{Tier: entity.TierStarter, MonthlyAmount: decimal.RequireFromString("399.00"), Status: entity.SubscriptionStatusActive},
		{Tier: entity.TierGrowth, MonthlyAmount: decimal.RequireFromString("899.00"), Status: entity.SubscriptionStatusActive},
		{Tier: entity.TierPro, MonthlyAmount: decimal.RequireFromString("1899.00"), Status: entity.SubscriptionStatusActive},
		{Tier: entity.TierGrowth, MonthlyAmount: decimal.RequireFromString("899.00"), Status: entity.SubscriptionStatusCancelled},
	}
	s, err := metrics.SummarizeSubscriptions(ss)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 3, s.Active)
	assert.Equal(t, s.Total, s.Starter+s.Growth+s.Pro)
	assert.Equal(t, 2, s.Growth)
	assert.Equal(t, "3197.00", s.MRR.StringFixed(2))
}

func TestSummarizeSubscriptions_PlanDesconocido(t *testing.T) {
	_, err := metrics.SummarizeSubscriptions([]entity.Subscription{{ID: "s1", Tier: "platinum"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSummarizeSubscriptions_Vacio(t *testing.T) {
	s, err := metrics.SummarizeSubscriptions(nil)
	require.NoError(t, err)
	assert.Zero(t, s.Total)
	assert.True(t, s.MRR.IsZero())
}
