package metrics

import (
	"fmt"

	"github.com/lithrlnd12/keyhubcentral/internal/domain"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
)

// LeadSummary conteo de leads por calidad y por estado. Hot+Warm+Cold == Total y
// la suma de ByStatus == Total.
type LeadSummary struct {
	Total    int
	Hot      int
	Warm     int
	Cold     int
	ByStatus map[entity.LeadStatus]int
}

// SummarizeLeads particiona los leads. Un lead con calidad o estado fuera de la
// enumeración es un error de entrada: no se descarta en silencio.
func SummarizeLeads(ls []entity.Lead) (LeadSummary, error) {
	s := LeadSummary{ByStatus: make(map[entity.LeadStatus]int, len(entity.LeadStatuses))}
	for _, st := range entity.LeadStatuses {
		s.ByStatus[st] = 0
	}
	for _, l := range ls {
		if !l.Status.Valid() {
			return LeadSummary{}, fmt.Errorf("%w: lead %s con estado %q", domain.ErrInvalidInput, l.ID, l.Status)
		}
		switch l.Quality {
		case entity.LeadQualityHot:
			s.Hot++
		case entity.LeadQualityWarm:
			s.Warm++
		case entity.LeadQualityCold:
			s.Cold++
		default:
			return LeadSummary{}, fmt.Errorf("%w: lead %s con calidad %q", domain.ErrInvalidInput, l.ID, l.Quality)
		}
		s.ByStatus[l.Status]++
		s.Total++
	}
	return s, nil
}

// SourceGroup leads de un origen. Percentage = Count/Total*100 sin redondear.
type SourceGroup struct {
	Source     entity.LeadSource
	Count      int
	Total      int
	Percentage float64
}

// GroupLeadsBySource agrupa por origen en el orden de entity.LeadSources; los orígenes
// sin leads se omiten. Orígenes desconocidos se agrupan como "other".
func GroupLeadsBySource(ls []entity.Lead) []SourceGroup {
	if len(ls) == 0 {
		return []SourceGroup{}
	}
	counts := make(map[entity.LeadSource]int, len(entity.LeadSources))
	for _, l := range ls {
		src := l.Source
		if !src.Valid() {
			src = entity.LeadSourceOther
		}
		counts[src]++
	}
	total := len(ls)
	out := make([]SourceGroup, 0, len(counts))
	for _, src := range entity.LeadSources {
		n := counts[src]
		if n == 0 {
			continue
		}
		out = append(out, SourceGroup{
			Source:     src,
			Count:      n,
			Total:      total,
			Percentage: float64(n) / float64(total) * 100,
		})
	}
	return out
}

// ConversionRate porcentaje de leads convertidos; cero si no hay leads.
func ConversionRate(s LeadSummary) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.ByStatus[entity.LeadStatusConverted]) / float64(s.Total) * 100
}
