package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/repository"
)

var (
	_ repository.CampaignRepository     = (*CampaignRepo)(nil)
	_ repository.LeadRepository         = (*LeadRepo)(nil)
	_ repository.SubscriptionRepository = (*SubscriptionRepo)(nil)
)

// CampaignRepo campañas (solo lectura).
type CampaignRepo struct {
	q Querier
}

// NewCampaignRepository construye el adaptador.
func NewCampaignRepository(q Querier) *CampaignRepo {
	return &CampaignRepo{q: q}
}

// List todas las campañas, más recientes primero.
func (r *CampaignRepo) List(ctx context.Context) ([]entity.Campaign, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, platform, spend, leads_generated, status, start_date, created_at
		FROM campaigns ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	list, err := collect(rows, func(row pgxScanner) (entity.Campaign, error) {
		var c entity.Campaign
		err := row.Scan(&c.ID, &c.Name, &c.Platform, &c.Spend, &c.LeadsGenerated, &c.Status, &c.StartDate, &c.CreatedAt)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan campaign: %w", err)
	}
	return list, nil
}

// LeadRepo leads (solo lectura).
type LeadRepo struct {
	q Querier
}

// NewLeadRepository construye el adaptador.
func NewLeadRepository(q Querier) *LeadRepo {
	return &LeadRepo{q: q}
}

// ListCreatedBetween leads con created_at en [start, end].
func (r *LeadRepo) ListCreatedBetween(ctx context.Context, start, end time.Time) ([]entity.Lead, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, name, phone, source, quality, status, campaign_id, assigned_to, created_at
		FROM leads WHERE created_at BETWEEN $1 AND $2 ORDER BY created_at`, start, end)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	list, err := collect(rows, func(row pgxScanner) (entity.Lead, error) {
		var (
			l                       entity.Lead
			source, quality, status string
			campaignID, assignedTo  *string
		)
		err := row.Scan(&l.ID, &l.Name, &l.Phone, &source, &quality, &status, &campaignID, &assignedTo, &l.CreatedAt)
		l.Source = entity.LeadSource(source)
		l.Quality = entity.LeadQuality(quality)
		l.Status = entity.LeadStatus(status)
		l.CampaignID = derefString(campaignID)
		l.AssignedTo = derefString(assignedTo)
		return l, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan lead: %w", err)
	}
	return list, nil
}

// SubscriptionRepo suscripciones de leads (solo lectura).
type SubscriptionRepo struct {
	q Querier
}

// NewSubscriptionRepository construye el adaptador.
func NewSubscriptionRepository(q Querier) *SubscriptionRepo {
	return &SubscriptionRepo{q: q}
}

// List todas las suscripciones.
func (r *SubscriptionRepo) List(ctx context.Context) ([]entity.Subscription, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, user_id, tier, monthly_amount, status, start_date
		FROM subscriptions ORDER BY start_date, id`)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	list, err := collect(rows, func(row pgxScanner) (entity.Subscription, error) {
		var (
			s    entity.Subscription
			tier string
		)
		err := row.Scan(&s.ID, &s.UserID, &tier, &s.MonthlyAmount, &s.Status, &s.StartDate)
		s.Tier = entity.SubscriptionTier(tier)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan subscription: %w", err)
	}
	return list, nil
}
