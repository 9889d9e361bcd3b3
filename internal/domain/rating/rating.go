// Package rating calcula la calificación ponderada de un contratista y su nivel (tier).
//
// Pesos: customer 40%, speed 20%, warranty 20%, internal 20%.
// Niveles (intervalos cerrado-abierto sobre Overall):
//
//	probation          [0.0, 2.0)
//	needs_improvement  [2.0, 3.0)
//	standard           [3.0, 4.0)
//	pro                [4.0, 4.5)
//	elite              [4.5, 5.0]
package rating

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/lithrlnd12/keyhubcentral/internal/domain"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
)

const (
	MinScore = 0.0
	MaxScore = 5.0

	// DefaultScore valor inicial de un sub-puntaje no informado (entrada de la banda standard).
	DefaultScore = 3.0
)

// Pesos de cada dimensión; suman 1.
const (
	WeightCustomer = 0.40
	WeightSpeed    = 0.20
	WeightWarranty = 0.20
	WeightInternal = 0.20
)

// Tier nivel de un contratista derivado de Overall.
type Tier string

const (
	TierProbation        Tier = "probation"
	TierNeedsImprovement Tier = "needs_improvement"
	TierStandard         Tier = "standard"
	TierPro              Tier = "pro"
	TierElite            Tier = "elite"
)

// Límites inferiores de cada banda.
const (
	ThresholdNeedsImprovement = 2.0
	ThresholdStandard         = 3.0
	ThresholdPro              = 4.0
	ThresholdElite            = 4.5
)

// Tiers en orden ascendente.
var Tiers = []Tier{TierProbation, TierNeedsImprovement, TierStandard, TierPro, TierElite}

// Partial sub-puntajes a aplicar; nil = no informado.
type Partial struct {
	Customer *float64 `json:"customer,omitempty"`
	Speed    *float64 `json:"speed,omitempty"`
	Warranty *float64 `json:"warranty,omitempty"`
	Internal *float64 `json:"internal,omitempty"`
}

// ValidationError sub-puntaje fuera de [0,5]. Envuelve domain.ErrInvalidRating.
type ValidationError struct {
	Field string
	Value float64
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("rating: %s=%v fuera de rango [%.0f,%.0f]", e.Field, e.Value, MinScore, MaxScore)
}

func (e *ValidationError) Unwrap() error { return domain.ErrInvalidRating }

var (
	decWeightCustomer = decimal.NewFromFloat(WeightCustomer)
	decWeightSpeed    = decimal.NewFromFloat(WeightSpeed)
	decWeightWarranty = decimal.NewFromFloat(WeightWarranty)
	decWeightInternal = decimal.NewFromFloat(WeightInternal)
)

// Overall promedio ponderado de los cuatro sub-puntajes.
// Se calcula en decimal: un resultado exacto de 2.0, 3.0, 4.0 o 4.5 no puede quedar
// por debajo del límite de su banda.
func Overall(r entity.Rating) float64 {
	sum := decimal.NewFromFloat(r.Customer).Mul(decWeightCustomer).
		Add(decimal.NewFromFloat(r.Speed).Mul(decWeightSpeed)).
		Add(decimal.NewFromFloat(r.Warranty).Mul(decWeightWarranty)).
		Add(decimal.NewFromFloat(r.Internal).Mul(decWeightInternal))
	return sum.InexactFloat64()
}

// Create construye una calificación nueva; los campos no informados toman DefaultScore.
func Create(p Partial) (entity.Rating, error) {
	base := entity.Rating{
		Customer: DefaultScore,
		Speed:    DefaultScore,
		Warranty: DefaultScore,
		Internal: DefaultScore,
	}
	return Update(base, p)
}

// Update aplica solo los campos informados en p sobre current y recalcula Overall.
// current no se modifica; si algún valor está fuera de rango no se aplica ningún cambio.
func Update(current entity.Rating, p Partial) (entity.Rating, error) {
	if err := p.Validate(); err != nil {
		return current, err
	}
	next := current
	if p.Customer != nil {
		next.Customer = *p.Customer
	}
	if p.Speed != nil {
		next.Speed = *p.Speed
	}
	if p.Warranty != nil {
		next.Warranty = *p.Warranty
	}
	if p.Internal != nil {
		next.Internal = *p.Internal
	}
	next.Overall = Overall(next)
	return next, nil
}

// Validate verifica que todos los campos informados estén en [0,5].
func (p Partial) Validate() error {
	fields := []struct {
		name string
		v    *float64
	}{
		{"customer", p.Customer},
		{"speed", p.Speed},
		{"warranty", p.Warranty},
		{"internal", p.Internal},
	}
	for _, f := range fields {
		if f.v == nil {
			continue
		}
		if !inRange(*f.v) {
			return &ValidationError{Field: f.name, Value: *f.v}
		}
	}
	return nil
}

// GetTier clasifica overall en su banda. Error si overall no está en [0,5].
func GetTier(overall float64) (Tier, error) {
	if !inRange(overall) {
		return "", &ValidationError{Field: "overall", Value: overall}
	}
	switch {
	case overall >= ThresholdElite:
		return TierElite, nil
	case overall >= ThresholdPro:
		return TierPro, nil
	case overall >= ThresholdStandard:
		return TierStandard, nil
	case overall >= ThresholdNeedsImprovement:
		return TierNeedsImprovement, nil
	default:
		return TierProbation, nil
	}
}

func inRange(v float64) bool {
	return !math.IsNaN(v) && v >= MinScore && v <= MaxScore
}

// Score helper para construir Partial en tests y handlers.
func Score(v float64) *float64 { return &v }
