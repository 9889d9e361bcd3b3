// Package metrics reduce colecciones de entidades a resúmenes para los dashboards.
// Las funciones son puras: no mutan la entrada ni guardan estado entre llamadas.
package metrics

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
)

// CampaignSummary totales de un conjunto de campañas.
type CampaignSummary struct {
	Total      int
	TotalSpend decimal.Decimal
	TotalLeads int
	AvgCPL     decimal.Decimal // TotalSpend / TotalLeads; cero si no hay leads
}

// CostPerLead spend / leads; cero si leads <= 0.
func CostPerLead(spend decimal.Decimal, leads int) decimal.Decimal {
	if leads <= 0 {
		return decimal.Zero
	}
	return spend.Div(decimal.NewFromInt(int64(leads)))
}

// CampaignCPL costo por lead de una campaña.
func CampaignCPL(c entity.Campaign) decimal.Decimal {
	return CostPerLead(c.Spend, c.LeadsGenerated)
}

// SummarizeCampaigns acumula en una sola pasada. AvgCPL es el cociente de totales,
// no el promedio de los CPL individuales.
func SummarizeCampaigns(cs []entity.Campaign) CampaignSummary {
	s := CampaignSummary{TotalSpend: decimal.Zero}
	for _, c := range cs {
		s.Total++
		s.TotalSpend = s.TotalSpend.Add(c.Spend)
		s.TotalLeads += c.LeadsGenerated
	}
	s.AvgCPL = CostPerLead(s.TotalSpend, s.TotalLeads)
	return s
}

// TopCampaignsByLeads devuelve las n campañas con más leads (descendente).
// Los empates conservan el orden de entrada. n <= 0 devuelve todas.
func TopCampaignsByLeads(cs []entity.Campaign, n int) []entity.Campaign {
	out := make([]entity.Campaign, len(cs))
	copy(out, cs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LeadsGenerated > out[j].LeadsGenerated
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// SpendByPlatform gasto y leads agrupados por plataforma, en orden de primera aparición.
func SpendByPlatform(cs []entity.Campaign) []PlatformSpend {
	idx := make(map[string]int)
	var out []PlatformSpend
	for _, c := range cs {
		i, ok := idx[c.Platform]
		if !ok {
			i = len(out)
			idx[c.Platform] = i
			out = append(out, PlatformSpend{Platform: c.Platform, Spend: decimal.Zero})
		}
		out[i].Campaigns++
		out[i].Spend = out[i].Spend.Add(c.Spend)
		out[i].Leads += c.LeadsGenerated
	}
	for i := range out {
		out[i].CPL = CostPerLead(out[i].Spend, out[i].Leads)
	}
	return out
}

// PlatformSpend acumulado por plataforma.
type PlatformSpend struct {
	Platform  string
	Campaigns int
	Spend     decimal.Decimal
	Leads     int
	CPL       decimal.Decimal
}
