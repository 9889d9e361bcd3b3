package entity

import "time"

// LeadQuality clasificación de calidad de un lead.
type LeadQuality string

const (
	LeadQualityHot  LeadQuality = "hot"
	LeadQualityWarm LeadQuality = "warm"
	LeadQualityCold LeadQuality = "cold"
)

// LeadStatus etapa del ciclo de vida de un lead.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusAssigned  LeadStatus = "assigned"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusConverted LeadStatus = "converted"
	LeadStatusLost      LeadStatus = "lost"
	LeadStatusReturned  LeadStatus = "returned"
)

// LeadStatuses orden de presentación de los estados.
var LeadStatuses = []LeadStatus{
	LeadStatusNew, LeadStatusAssigned, LeadStatusContacted, LeadStatusQualified,
	LeadStatusConverted, LeadStatusLost, LeadStatusReturned,
}

// Valid informa si el estado pertenece a la enumeración.
func (s LeadStatus) Valid() bool {
	for _, v := range LeadStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// LeadSource origen de un lead.
type LeadSource string

const (
	LeadSourceGoogleAds LeadSource = "google_ads"
	LeadSourceMeta      LeadSource = "meta"
	LeadSourceTikTok    LeadSource = "tiktok"
	LeadSourceEvent     LeadSource = "event"
	LeadSourceReferral  LeadSource = "referral"
	LeadSourceOther     LeadSource = "other"
)

// LeadSources orden de presentación de los orígenes.
var LeadSources = []LeadSource{
	LeadSourceGoogleAds, LeadSourceMeta, LeadSourceTikTok,
	LeadSourceEvent, LeadSourceReferral, LeadSourceOther,
}

// Valid informa si el origen pertenece a la enumeración.
func (s LeadSource) Valid() bool {
	for _, v := range LeadSources {
		if v == s {
			return true
		}
	}
	return false
}

// Lead prospecto generado por una campaña o referido.
type Lead struct {
	ID         string
	Name       string
	Phone      string
	Source     LeadSource
	Quality    LeadQuality
	Status     LeadStatus
	CampaignID string // vacío si no proviene de campaña
	AssignedTo string
	CreatedAt  time.Time
}
