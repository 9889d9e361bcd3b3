package analytics

import (
	"github.com/lithrlnd12/keyhubcentral/internal/application/dto"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/metrics"
)

func toLeadSummaryDTO(s metrics.LeadSummary) dto.LeadSummaryDTO {
	byStatus := make(map[string]int, len(s.ByStatus))
	for st, n := range s.ByStatus {
		byStatus[string(st)] = n
	}
	return dto.LeadSummaryDTO{
		Total:          s.Total,
		Hot:            s.Hot,
		Warm:           s.Warm,
		Cold:           s.Cold,
		ByStatus:       byStatus,
		ConversionRate: metrics.ConversionRate(s),
	}
}

func toLeadSourceDTOs(gs []metrics.SourceGroup) []dto.LeadSourceDTO {
	out := make([]dto.LeadSourceDTO, 0, len(gs))
	for _, g := range gs {
		out = append(out, dto.LeadSourceDTO{
			Source:         string(g.Source),
			Count:          g.Count,
			Total:          g.Total,
			Percentage:     g.Percentage,
			PercentageText: dto.FormatPercent(g.Percentage),
		})
	}
	return out
}

func toCallSummaryDTO(s metrics.CallSummary) dto.CallSummaryDTO {
	return dto.CallSummaryDTO{
		Total:     s.Total,
		New:       s.New,
		Reviewed:  s.Reviewed,
		Converted: s.Converted,
		Closed:    s.Closed,
	}
}

func toTierCountDTOs(ts []metrics.TierCount) []dto.TierCountDTO {
	out := make([]dto.TierCountDTO, 0, len(ts))
	for _, t := range ts {
		out = append(out, dto.TierCountDTO{Tier: string(t.Tier), Count: t.Count})
	}
	return out
}

func toCampaignSummaryDTO(s metrics.CampaignSummary, top []entity.Campaign) *dto.CampaignSummaryDTO {
	topDTO := make([]dto.CampaignDTO, 0, len(top))
	for _, c := range top {
		topDTO = append(topDTO, dto.CampaignDTO{
			ID:             c.ID,
			Name:           c.Name,
			Platform:       c.Platform,
			Spend:          c.Spend,
			LeadsGenerated: c.LeadsGenerated,
			CPL:            metrics.CampaignCPL(c),
		})
	}
	return &dto.CampaignSummaryDTO{
		Total:      s.Total,
		TotalSpend: s.TotalSpend,
		TotalLeads: s.TotalLeads,
		AvgCPL:     s.AvgCPL,
		AvgCPLText: dto.FormatUSD(s.AvgCPL),
		Top:        topDTO,
	}
}

func toSubscriptionSummaryDTO(s metrics.SubscriptionSummary) *dto.SubscriptionSummaryDTO {
	return &dto.SubscriptionSummaryDTO{
		Total:   s.Total,
		Active:  s.Active,
		Starter: s.Starter,
		Growth:  s.Growth,
		Pro:     s.Pro,
		MRR:     s.MRR,
		MRRText: dto.FormatUSD(s.MRR),
	}
}

func toInvoiceSummaryDTO(s metrics.InvoiceSummary) *dto.InvoiceSummaryDTO {
	return &dto.InvoiceSummaryDTO{
		Total:        s.Total,
		Draft:        s.Draft,
		Sent:         s.Sent,
		Paid:         s.Paid,
		Overdue:      s.Overdue,
		Outstanding:  s.Outstanding,
		PaidAmount:   s.PaidAmount,
		OverdueTotal: s.OverdueTotal,
	}
}

func toPayoutSummaryDTO(s metrics.PayoutSummary) *dto.PayoutSummaryDTO {
	return &dto.PayoutSummaryDTO{
		Total:         s.Total,
		Pending:       s.Pending,
		Processing:    s.Processing,
		Paid:          s.Paid,
		Failed:        s.Failed,
		PendingAmount: s.PendingAmount,
		PaidAmount:    s.PaidAmount,
	}
}
