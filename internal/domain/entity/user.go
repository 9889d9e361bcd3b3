package entity

import (
	"fmt"
	"time"

	"github.com/lithrlnd12/keyhubcentral/internal/domain"
)

// Role rol de un usuario. Enumeración cerrada: cualquier valor fuera de Roles es inválido.
type Role string

// Roles válidos para User.
const (
	RoleOwner      Role = "owner"
	RoleAdmin      Role = "admin"
	RoleSalesRep   Role = "sales_rep"
	RoleContractor Role = "contractor"
	RolePM         Role = "pm"
	RoleSubscriber Role = "subscriber"
	RolePartner    Role = "partner"
	RolePending    Role = "pending"
)

// Roles lista completa en orden de privilegio descendente.
var Roles = []Role{
	RoleOwner, RoleAdmin, RoleSalesRep, RoleContractor, RolePM,
	RoleSubscriber, RolePartner, RolePending,
}

// Valid informa si el rol pertenece a la enumeración.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleSalesRep, RoleContractor, RolePM,
		RoleSubscriber, RolePartner, RolePending:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// ParseRole convierte un string (claim JWT, columna DB) en Role. No hay rol por defecto.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidRole, s)
	}
	return r, nil
}

// UserStatus estado de la cuenta.
type UserStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
)

// Valid informa si el estado pertenece a la enumeración.
func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusPending, UserStatusActive, UserStatusInactive, UserStatusSuspended:
		return true
	}
	return false
}

// ParseUserStatus convierte un string en UserStatus.
func ParseUserStatus(s string) (UserStatus, error) {
	st := UserStatus(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: estado de usuario %q", domain.ErrInvalidInput, s)
	}
	return st, nil
}

// User representa un usuario del sistema.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         Role
	Status       UserStatus
	PartnerID    string // solo para rol partner
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsActive true si la cuenta está activa.
func (u User) IsActive() bool { return u.Status == UserStatusActive }
