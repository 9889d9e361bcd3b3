package dto

import (
	"time"

	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
)

// ContractorResponse contratista con su calificación y nivel.
type ContractorResponse struct {
	ID            string         `json:"id"`
	UserID        string         `json:"user_id"`
	BusinessName  string         `json:"business_name"`
	Trades        []string       `json:"trades"`
	Status        string         `json:"status"`
	ServiceRadius int            `json:"service_radius"`
	Address       entity.Address `json:"address"`
	Rating        entity.Rating  `json:"rating"`
	Tier          string         `json:"tier"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// UpdateRatingRequest cuerpo de PATCH /api/contractors/:id/rating. Campos omitidos no cambian.
type UpdateRatingRequest struct {
	Customer *float64 `json:"customer"`
	Speed    *float64 `json:"speed"`
	Warranty *float64 `json:"warranty"`
	Internal *float64 `json:"internal"`
}
