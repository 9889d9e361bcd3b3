package repository

import (
	"context"
	"time"

	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
)

// CampaignRepository lectura de campañas (read-only para analítica).
type CampaignRepository interface {
	List(ctx context.Context) ([]entity.Campaign, error)
}

// LeadRepository lectura de leads creados en un rango de fechas.
type LeadRepository interface {
	ListCreatedBetween(ctx context.Context, start, end time.Time) ([]entity.Lead, error)
}

// SubscriptionRepository lectura de suscripciones.
type SubscriptionRepository interface {
	List(ctx context.Context) ([]entity.Subscription, error)
}
