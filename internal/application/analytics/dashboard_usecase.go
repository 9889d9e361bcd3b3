// Package analytics contiene los casos de uso de reportes y el dashboard operativo.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/lithrlnd12/keyhubcentral/internal/application/dto"
	"github.com/lithrlnd12/keyhubcentral/internal/domain"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/metrics"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/policy"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/repository"
)

const (
	dashboardTopCampaigns = 5   // campañas en el widget del dashboard
	contractorPageSize    = 500 // lectura paginada de contratistas
)

// DashboardRepos fuentes de datos del dashboard (todas read-only).
type DashboardRepos struct {
	Campaigns     repository.CampaignRepository
	Leads         repository.LeadRepository
	Subscriptions repository.SubscriptionRepository
	Invoices      repository.InvoiceRepository
	Contractors   repository.ContractorRepository
	Calls         repository.InboundCallRepository
	Payouts       repository.PayoutRepository
}

// DashboardUseCase arma el resumen del mes en curso.
type DashboardUseCase struct {
	repos DashboardRepos
	now   func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repos DashboardRepos) *DashboardUseCase {
	return &DashboardUseCase{repos: repos, now: time.Now}
}

type result[T any] struct {
	items []T
	err   error
}

// GetSummary construye el DashboardSummaryDTO visible para el rol.
//
// Las lecturas van en paralelo; las de campañas, suscripciones, facturas y pagos
// solo se lanzan si el rol puede ver finanzas, y en ese caso sus secciones quedan en nil.
func (uc *DashboardUseCase) GetSummary(ctx context.Context, role entity.Role) (*dto.DashboardSummaryDTO, error) {
	if !policy.CanAccessDashboard(role) {
		return nil, domain.ErrForbidden
	}
	financials := policy.CanViewFinancials(role)

	now := uc.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	leadsCh := make(chan result[entity.Lead], 1)
	callsCh := make(chan result[entity.InboundCall], 1)
	contractorsCh := make(chan result[entity.Contractor], 1)

	go func() {
		ls, err := uc.repos.Leads.ListCreatedBetween(ctx, monthStart, monthEnd)
		leadsCh <- result[entity.Lead]{ls, err}
	}()
	go func() {
		cs, err := uc.repos.Calls.List(ctx)
		callsCh <- result[entity.InboundCall]{cs, err}
	}()
	go func() {
		cs, err := uc.allContractors(ctx)
		contractorsCh <- result[entity.Contractor]{cs, err}
	}()

	var (
		campaignsCh chan result[entity.Campaign]
		subsCh      chan result[entity.Subscription]
		invoicesCh  chan result[entity.Invoice]
		payoutsCh   chan result[entity.Payout]
	)
	if financials {
		campaignsCh = make(chan result[entity.Campaign], 1)
		subsCh = make(chan result[entity.Subscription], 1)
		invoicesCh = make(chan result[entity.Invoice], 1)
		payoutsCh = make(chan result[entity.Payout], 1)

		go func() {
			cs, err := uc.repos.Campaigns.List(ctx)
			campaignsCh <- result[entity.Campaign]{cs, err}
		}()
		go func() {
			ss, err := uc.repos.Subscriptions.List(ctx)
			subsCh <- result[entity.Subscription]{ss, err}
		}()
		go func() {
			is, err := uc.repos.Invoices.List(ctx)
			invoicesCh <- result[entity.Invoice]{is, err}
		}()
		go func() {
			ps, err := uc.repos.Payouts.List(ctx)
			payoutsCh <- result[entity.Payout]{ps, err}
		}()
	}

	leads := <-leadsCh
	calls := <-callsCh
	contractors := <-contractorsCh

	if leads.err != nil {
		return nil, fmt.Errorf("dashboard: leads: %w", leads.err)
	}
	if calls.err != nil {
		return nil, fmt.Errorf("dashboard: llamadas: %w", calls.err)
	}
	if contractors.err != nil {
		return nil, fmt.Errorf("dashboard: contratistas: %w", contractors.err)
	}

	leadSummary, err := metrics.SummarizeLeads(leads.items)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}
	tiers, err := metrics.SummarizeContractorTiers(contractors.items)
	if err != nil {
		return nil, fmt.Errorf("dashboard: niveles de contratistas: %w", err)
	}

	out := &dto.DashboardSummaryDTO{
		Leads:       toLeadSummaryDTO(leadSummary),
		LeadSources: toLeadSourceDTOs(metrics.GroupLeadsBySource(leads.items)),
		Calls:       toCallSummaryDTO(metrics.SummarizeCalls(calls.items)),
		Contractors: toTierCountDTOs(tiers),
		PeriodLabel: now.Format("January 2006"),
	}
	if !financials {
		return out, nil
	}

	campaigns := <-campaignsCh
	subs := <-subsCh
	invoices := <-invoicesCh
	payouts := <-payoutsCh

	if campaigns.err != nil {
		return nil, fmt.Errorf("dashboard: campañas: %w", campaigns.err)
	}
	if subs.err != nil {
		return nil, fmt.Errorf("dashboard: suscripciones: %w", subs.err)
	}
	if invoices.err != nil {
		return nil, fmt.Errorf("dashboard: facturas: %w", invoices.err)
	}
	if payouts.err != nil {
		return nil, fmt.Errorf("dashboard: pagos: %w", payouts.err)
	}

	subSummary, err := metrics.SummarizeSubscriptions(subs.items)
	if err != nil {
		return nil, fmt.Errorf("dashboard: %w", err)
	}

	out.Campaigns = toCampaignSummaryDTO(
		metrics.SummarizeCampaigns(campaigns.items),
		metrics.TopCampaignsByLeads(campaigns.items, dashboardTopCampaigns),
	)
	out.Subscriptions = toSubscriptionSummaryDTO(subSummary)
	out.Invoices = toInvoiceSummaryDTO(metrics.SummarizeInvoices(invoices.items, now))
	out.Payouts = toPayoutSummaryDTO(metrics.SummarizePayouts(payouts.items))
	return out, nil
}

func (uc *DashboardUseCase) allContractors(ctx context.Context) ([]entity.Contractor, error) {
	var all []entity.Contractor
	for offset := 0; ; offset += contractorPageSize {
		page, err := uc.repos.Contractors.List(ctx, contractorPageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < contractorPageSize {
			return all, nil
		}
	}
}
