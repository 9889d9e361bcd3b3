package metrics

import (
	"github.com/shopspring/decimal"

	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/rating"
)

// CallSummary llamadas entrantes por estado.
type CallSummary struct {
	Total     int
	New       int
	Reviewed  int
	Converted int
	Closed    int
}

// SummarizeCalls cuenta llamadas por estado; estados desconocidos solo suman al total.
func SummarizeCalls(cs []entity.InboundCall) CallSummary {
	var s CallSummary
	for _, c := range cs {
		s.Total++
		switch c.Status {
		case entity.CallStatusNew:
			s.New++
		case entity.CallStatusReviewed:
			s.Reviewed++
		case entity.CallStatusConverted:
			s.Converted++
		case entity.CallStatusClosed:
			s.Closed++
		}
	}
	return s
}

// PayoutSummary pagos a contratistas por estado.
type PayoutSummary struct {
	Total         int
	Pending       int
	Processing    int
	Paid          int
	Failed        int
	PendingAmount decimal.Decimal // pending + processing
	PaidAmount    decimal.Decimal
}

// SummarizePayouts conteos y montos por estado.
func SummarizePayouts(ps []entity.Payout) PayoutSummary {
	s := PayoutSummary{PendingAmount: decimal.Zero, PaidAmount: decimal.Zero}
	for _, p := range ps {
		s.Total++
		switch p.Status {
		case entity.PayoutStatusPending:
			s.Pending++
			s.PendingAmount = s.PendingAmount.Add(p.Amount)
		case entity.PayoutStatusProcessing:
			s.Processing++
			s.PendingAmount = s.PendingAmount.Add(p.Amount)
		case entity.PayoutStatusPaid:
			s.Paid++
			s.PaidAmount = s.PaidAmount.Add(p.Amount)
		case entity.PayoutStatusFailed:
			s.Failed++
		}
	}
	return s
}

// TierCount contratistas en un nivel.
type TierCount struct {
	Tier  rating.Tier
	Count int
}

// SummarizeContractorTiers cuenta contratistas por nivel, en el orden de rating.Tiers.
// Un Overall fuera de rango es un dato corrupto y se reporta como error.
func SummarizeContractorTiers(cs []entity.Contractor) ([]TierCount, error) {
	counts := make(map[rating.Tier]int, len(rating.Tiers))
	for _, c := range cs {
		tier, err := rating.GetTier(c.Rating.Overall)
		if err != nil {
			return nil, err
		}
		counts[tier]++
	}
	out := make([]TierCount, 0, len(rating.Tiers))
	for _, t := range rating.Tiers {
		out = append(out, TierCount{Tier: t, Count: counts[t]})
	}
	return out, nil
}
