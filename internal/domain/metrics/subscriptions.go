package metrics

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lithrlnd12/keyhubcentral/internal/domain"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
)

// SubscriptionSummary suscriptores por plan y MRR.
type SubscriptionSummary struct {
	Total   int
	Active  int
	Starter int
	Growth  int
	Pro     int
	MRR     decimal.Decimal // suma de MonthlyAmount de las suscripciones activas
}

// SummarizeSubscriptions cuenta todas las suscripciones por plan (Starter+Growth+Pro == Total);
// el MRR solo suma las activas. Un plan desconocido es error de entrada.
func SummarizeSubscriptions(ss []entity.Subscription) (SubscriptionSummary, error) {
	s := SubscriptionSummary{MRR: decimal.Zero}
	for _, sub := range ss {
		switch sub.Tier {
		case entity.TierStarter:
			s.Starter++
		case entity.TierGrowth:
			s.Growth++
		case entity.TierPro:
			s.Pro++
		default:
			return SubscriptionSummary{}, fmt.Errorf("%w: suscripción %s con plan %q", domain.ErrInvalidInput, sub.ID, sub.Tier)
		}
		s.Total++
		if sub.Status == entity.SubscriptionStatusActive {
			s.Active++
			s.MRR = s.MRR.Add(sub.MonthlyAmount)
		}
	}
	return s, nil
}
