package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lithrlnd12/keyhubcentral/internal/domain"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
)

type fakeCampaigns struct{ items []entity.Campaign }

func (f fakeCampaigns) List(context.Context) ([]entity.Campaign, error) { return f.items, nil }

type fakeLeads struct {
	items      []entity.Lead
	start, end time.Time
}

func (f *fakeLeads) ListCreatedBetween(_ context.Context, start, end time.Time) ([]entity.Lead, error) {
	f.start, f.end = start, end
	return f.items, nil
}

type fakeSubs struct{ items []entity.Subscription }

func (f fakeSubs) List(context.Context) ([]entity.Subscription, error) { return f.items, nil }

type fakeInvoices struct{ items []entity.Invoice }

func (f fakeInvoices) Create(context.Context, *entity.Invoice) error { return nil }
func (f fakeInvoices) List(context.Context) ([]entity.Invoice, error) {
	return f.items, nil
}
func (f fakeInvoices) LastNumber(context.Context, string, int) (string, error) { return "", nil }

type fakeContractors struct{ items []entity.Contractor }

func (f fakeContractors) GetByID(context.Context, string) (*entity.Contractor, error) {
	return nil, nil
}
func (f fakeContractors) GetByUserID(context.Context, string) (*entity.Contractor, error) {
	return nil, nil
}
func (f fakeContractors) List(_ context.Context, limit, offset int) ([]entity.Contractor, error) {
	if offset >= len(f.items) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.items) {
		end = len(f.items)
	}
	return f.items[offset:end], nil
}
func (f fakeContractors) UpdateRating(context.Context, string, entity.Rating) error { return nil }

type fakeCalls struct {
	items []entity.InboundCall
	err   error
}

func (f fakeCalls) Upsert(context.Context, *entity.InboundCall) (bool, error) { return true, nil }
func (f fakeCalls) List(context.Context) ([]entity.InboundCall, error)        { return f.items, f.err }

type fakePayouts struct {
	items  []entity.Payout
	called *bool
}

func (f fakePayouts) List(context.Context) ([]entity.Payout, error) {
	if f.called != nil {
		*f.called = true
	}
	return f.items, nil
}

var june15 = time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

func newDashboard(leads *fakeLeads, calls fakeCalls, payoutsCalled *bool) *DashboardUseCase {
	uc := NewDashboardUseCase(DashboardRepos{
		Campaigns: fakeCampaigns{items: []entity.Campaign{
			{ID: "a", Name: "A", Platform: entity.PlatformMeta, Spend: decimal.NewFromInt(1000), LeadsGenerated: 20},
			{ID: "b", Name: "B", Platform: entity.PlatformGoogleAds, Spend: decimal.NewFromInt(500), LeadsGenerated: 10},
		}},
		Leads: leads,
		Subscriptions: fakeSubs{items: []entity.Subscription{
			{ID: "s1", Tier: entity.TierStarter, Status: entity.SubscriptionStatusActive, MonthlyAmount: decimal.NewFromInt(399)},
			{ID: "s2", Tier: entity.TierPro, Status: entity.SubscriptionStatusCancelled, MonthlyAmount: decimal.NewFromInt(1499)},
		}},
		Invoices: fakeInvoices{items: []entity.Invoice{
			{ID: "i1", Status: entity.InvoiceStatusSent, Total: decimal.NewFromInt(100), DueDate: june15.AddDate(0, 0, -1)},
			{ID: "i2", Status: entity.InvoiceStatusPaid, Total: decimal.NewFromInt(50), DueDate: june15},
		}},
		Contractors: fakeContractors{items: []entity.Contractor{
			{ID: "c1", Rating: entity.Rating{Overall: 4.8}},
			{ID: "c2", Rating: entity.Rating{Overall: 3.0}},
		}},
		Calls:   calls,
		Payouts: fakePayouts{items: []entity.Payout{{ID: "p1", Status: entity.PayoutStatusPending, Amount: decimal.NewFromInt(75)}}, called: payoutsCalled},
	})
	uc.now = func() time.Time { return june15 }
	return uc
}

func sampleLeads() *fakeLeads {
	return &fakeLeads{items: []entity.Lead{
		{ID: "l1", Quality: entity.LeadQualityHot, Status: entity.LeadStatusNew, Source: entity.LeadSourceMeta},
		{ID: "l2", Quality: entity.LeadQualityWarm, Status: entity.LeadStatusConverted, Source: entity.LeadSourceMeta},
		{ID: "l3", Quality: entity.LeadQualityCold, Status: entity.LeadStatusLost, Source: entity.LeadSourceReferral},
	}}
}

func TestGetSummary_AdminVeTodo(t *testing.T) {
	leads := sampleLeads()
	uc := newDashboard(leads, fakeCalls{items: []entity.InboundCall{{Status: entity.CallStatusNew}}}, nil)

	got, err := uc.GetSummary(context.Background(), entity.RoleOwner)
	require.NoError(t, err)

	assert.Equal(t, "June 2025", got.PeriodLabel)
	assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), leads.start)
	assert.Equal(t, time.June, leads.end.Month())

	assert.Equal(t, 3, got.Leads.Total)
	assert.Equal(t, 1, got.Leads.ByStatus["converted"])
	assert.InDelta(t, 33.333, got.Leads.ConversionRate, 0.01)
	require.Len(t, got.LeadSources, 2)
	assert.Equal(t, "66.7%", got.LeadSources[0].PercentageText)

	assert.Equal(t, 1, got.Calls.New)

	require.NotNil(t, got.Campaigns)
	assert.Equal(t, "$50.00", got.Campaigns.AvgCPLText)
	require.Len(t, got.Campaigns.Top, 2)
	assert.Equal(t, "a", got.Campaigns.Top[0].ID)

	require.NotNil(t, got.Subscriptions)
	assert.Equal(t, "$399.00", got.Subscriptions.MRRText)
	assert.Equal(t, 2, got.Subscriptions.Total)

	require.NotNil(t, got.Invoices)
	assert.Equal(t, 1, got.Invoices.Overdue)
	require.NotNil(t, got.Payouts)
	assert.True(t, got.Payouts.PendingAmount.Equal(decimal.NewFromInt(75)))

	counts := map[string]int{}
	for _, tc := range got.Contractors {
		counts[tc.Tier] = tc.Count
	}
	assert.Equal(t, 1, counts["elite"])
	assert.Equal(t, 1, counts["standard"])
}

func TestGetSummary_SinFinanzasOmiteSecciones(t *testing.T) {
	called := false
	uc := newDashboard(sampleLeads(), fakeCalls{}, &called)

	got, err := uc.GetSummary(context.Background(), entity.RoleSalesRep)
	require.NoError(t, err)

	assert.Nil(t, got.Campaigns)
	assert.Nil(t, got.Subscriptions)
	assert.Nil(t, got.Invoices)
	assert.Nil(t, got.Payouts)
	assert.False(t, called, "no debe leer pagos sin permiso financiero")
	assert.Equal(t, 3, got.Leads.Total)
}

func TestGetSummary_RolSinAcceso(t *testing.T) {
	uc := newDashboard(sampleLeads(), fakeCalls{}, nil)
	for _, r := range []entity.Role{entity.RoleSubscriber, entity.RolePartner, entity.RolePending, entity.Role("root")} {
		_, err := uc.GetSummary(context.Background(), r)
		assert.ErrorIs(t, err, domain.ErrForbidden, "rol %q", r)
	}
}

func TestGetSummary_PropagaErrores(t *testing.T) {
	boom := errors.New("db caída")
	uc := newDashboard(sampleLeads(), fakeCalls{err: boom}, nil)
	_, err := uc.GetSummary(context.Background(), entity.RoleAdmin)
	assert.ErrorIs(t, err, boom)

	bad := &fakeLeads{items: []entity.Lead{{ID: "x", Quality: "tibio", Status: entity.LeadStatusNew}}}
	uc = newDashboard(bad, fakeCalls{}, nil)
	_, err = uc.GetSummary(context.Background(), entity.RoleAdmin)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAllContractors_Pagina(t *testing.T) {
	items := make([]entity.Contractor, contractorPageSize+3)
	uc := NewDashboardUseCase(DashboardRepos{Contractors: fakeContractors{items: items}})
	got, err := uc.allContractors(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, contractorPageSize+3)
}
