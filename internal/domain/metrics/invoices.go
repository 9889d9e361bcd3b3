package metrics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
)

// InvoiceSummary conteos y montos por estado efectivo (sent vencida cuenta como overdue).
type InvoiceSummary struct {
	Total        int
	Draft        int
	Sent         int
	Paid         int
	Overdue      int
	Outstanding  decimal.Decimal // sent + overdue
	PaidAmount   decimal.Decimal
	OverdueTotal decimal.Decimal
}

// SummarizeInvoices usa now para resolver el vencimiento; no modifica las facturas.
func SummarizeInvoices(is []entity.Invoice, now time.Time) InvoiceSummary {
	s := InvoiceSummary{Outstanding: decimal.Zero, PaidAmount: decimal.Zero, OverdueTotal: decimal.Zero}
	for _, inv := range is {
		s.Total++
		switch inv.EffectiveStatus(now) {
		case entity.InvoiceStatusDraft:
			s.Draft++
		case entity.InvoiceStatusSent:
			s.Sent++
			s.Outstanding = s.Outstanding.Add(inv.Total)
		case entity.InvoiceStatusPaid:
			s.Paid++
			s.PaidAmount = s.PaidAmount.Add(inv.Total)
		case entity.InvoiceStatusOverdue:
			s.Overdue++
			s.Outstanding = s.Outstanding.Add(inv.Total)
			s.OverdueTotal = s.OverdueTotal.Add(inv.Total)
		}
	}
	return s
}
