package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Las secciones financieras (campañas, suscripciones, facturas, pagos) son nil
// cuando el rol no puede ver finanzas.
type DashboardSummaryDTO struct {
	Leads         LeadSummaryDTO          `json:"leads"`
	LeadSources   []LeadSourceDTO         `json:"lead_sources"`
	Calls         CallSummaryDTO          `json:"calls"`
	Contractors   []TierCountDTO          `json:"contractor_tiers"`
	Campaigns     *CampaignSummaryDTO     `json:"campaigns,omitempty"`
	Subscriptions *SubscriptionSummaryDTO `json:"subscriptions,omitempty"`
	Invoices      *InvoiceSummaryDTO      `json:"invoices,omitempty"`
	Payouts       *PayoutSummaryDTO       `json:"payouts,omitempty"`
	PeriodLabel   string                  `json:"period_label"` // ej. "June 2025"
}

// CampaignSummaryDTO totales de campañas y top 5 por leads.
type CampaignSummaryDTO struct {
	Total      int             `json:"total"`
	TotalSpend decimal.Decimal `json:"total_spend"`
	TotalLeads int             `json:"total_leads"`
	AvgCPL     decimal.Decimal `json:"avg_cpl"`
	AvgCPLText string          `json:"avg_cpl_text"`
	Top        []CampaignDTO   `json:"top"`
}

// CampaignDTO campaña con su CPL.
type CampaignDTO struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Platform       string          `json:"platform"`
	Spend          decimal.Decimal `json:"spend"`
	LeadsGenerated int             `json:"leads_generated"`
	CPL            decimal.Decimal `json:"cpl"`
}

// LeadSummaryDTO conteos por calidad y estado.
type LeadSummaryDTO struct {
	Total          int            `json:"total"`
	Hot            int            `json:"hot"`
	Warm           int            `json:"warm"`
	Cold           int            `json:"cold"`
	ByStatus       map[string]int `json:"by_status"`
	ConversionRate float64        `json:"conversion_rate"`
}

// LeadSourceDTO grupo por origen. Percentage sin redondear; PercentageText para mostrar.
type LeadSourceDTO struct {
	Source         string  `json:"source"`
	Count          int     `json:"count"`
	Total          int     `json:"total"`
	Percentage     float64 `json:"percentage"`
	PercentageText string  `json:"percentage_text"`
}

// SubscriptionSummaryDTO suscriptores por plan y MRR.
type SubscriptionSummaryDTO struct {
	Total   int             `json:"total"`
	Active  int             `json:"active"`
	Starter int             `json:"starter"`
	Growth  int             `json:"growth"`
	Pro     int             `json:"pro"`
	MRR     decimal.Decimal `json:"mrr"`
	MRRText string          `json:"mrr_text"`
}

// InvoiceSummaryDTO facturas por estado efectivo.
type InvoiceSummaryDTO struct {
	Total        int             `json:"total"`
	Draft        int             `json:"draft"`
	Sent         int             `json:"sent"`
	Paid         int             `json:"paid"`
	Overdue      int             `json:"overdue"`
	Outstanding  decimal.Decimal `json:"outstanding"`
	PaidAmount   decimal.Decimal `json:"paid_amount"`
	OverdueTotal decimal.Decimal `json:"overdue_total"`
}

// PayoutSummaryDTO pagos a contratistas.
type PayoutSummaryDTO struct {
	Total         int             `json:"total"`
	Pending       int             `json:"pending"`
	Processing    int             `json:"processing"`
	Paid          int             `json:"paid"`
	Failed        int             `json:"failed"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
	PaidAmount    decimal.Decimal `json:"paid_amount"`
}

// CallSummaryDTO llamadas entrantes por estado.
type CallSummaryDTO struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Reviewed  int `json:"reviewed"`
	Converted int `json:"converted"`
	Closed    int `json:"closed"`
}

// TierCountDTO contratistas por nivel.
type TierCountDTO struct {
	Tier  string `json:"tier"`
	Count int    `json:"count"`
}
