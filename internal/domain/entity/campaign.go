package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plataformas de campaña.
const (
	PlatformGoogleAds = "google_ads"
	PlatformMeta      = "meta"
	PlatformTikTok    = "tiktok"
	PlatformNextdoor  = "nextdoor"
	PlatformOther     = "other"
)

// Estados de campaña.
const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

// Campaign campaña de marketing digital que genera leads.
type Campaign struct {
	ID             string
	Name           string
	Platform       string
	Spend          decimal.Decimal
	LeadsGenerated int
	Status         string
	StartDate      time.Time
	CreatedAt      time.Time
}
