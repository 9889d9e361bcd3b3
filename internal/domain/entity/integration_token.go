package entity

import "time"

// Proveedores de integración OAuth.
const (
	ProviderGoogleCalendar = "google_calendar"
)

// IntegrationToken credenciales OAuth de un usuario para un proveedor externo.
type IntegrationToken struct {
	UserID       string
	Provider     string
	AccessToken  string
	RefreshToken string
	TokenType    string
	Expiry       time.Time
	UpdatedAt    time.Time
}
