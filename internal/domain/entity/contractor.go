package entity

import "time"

// Estados de un contratista.
const (
	ContractorStatusPending   = "pending"
	ContractorStatusActive    = "active"
	ContractorStatusInactive  = "inactive"
	ContractorStatusSuspended = "suspended"
)

// Rating calificación de un contratista: cuatro sub-puntajes en [0,5] más el promedio ponderado.
type Rating struct {
	Customer float64 `json:"customer"`
	Speed    float64 `json:"speed"`
	Warranty float64 `json:"warranty"`
	Internal float64 `json:"internal"`
	Overall  float64 `json:"overall"`
}

// Address dirección de servicio; Lat/Lng nil si no se ha geocodificado.
type Address struct {
	Street string   `json:"street"`
	City   string   `json:"city"`
	State  string   `json:"state"`
	Zip    string   `json:"zip"`
	Lat    *float64 `json:"lat,omitempty"`
	Lng    *float64 `json:"lng,omitempty"`
}

// Contractor perfil de un contratista (oficios, radio de servicio y calificación).
type Contractor struct {
	ID            string
	UserID        string
	BusinessName  string
	Trades        []string
	Rating        Rating
	Status        string
	ServiceRadius int // millas
	Address       Address
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
