package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubscriptionTier plan de suscripción de leads.
type SubscriptionTier string

const (
	TierStarter SubscriptionTier = "starter"
	TierGrowth  SubscriptionTier = "growth"
	TierPro     SubscriptionTier = "pro"
)

// Estados de suscripción.
const (
	SubscriptionStatusActive    = "active"
	SubscriptionStatusPaused    = "paused"
	SubscriptionStatusCancelled = "cancelled"
	SubscriptionStatusPastDue   = "past_due"
)

// Subscription suscripción mensual de un cliente (subscriber) a un plan de leads.
type Subscription struct {
	ID            string
	UserID        string
	Tier          SubscriptionTier
	MonthlyAmount decimal.Decimal
	Status        string
	StartDate     time.Time
}
