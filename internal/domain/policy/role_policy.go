// Package policy contiene las reglas de autorización por rol. Todas las funciones son puras
// y totales: un rol desconocido o vacío nunca obtiene permisos.
package policy

import "github.com/lithrlnd12/keyhubcentral/internal/domain/entity"

// Permission acción que un middleware HTTP puede exigir.
type Permission string

const (
	PermManageUsers        Permission = "users:manage"
	PermViewAllJobs        Permission = "jobs:view_all"
	PermViewFinancials     Permission = "financials:view"
	PermManageCampaigns    Permission = "campaigns:manage"
	PermViewAllContractors Permission = "contractors:view_all"
	PermAccessDashboard    Permission = "dashboard:access"
)

var (
	adminRoles = []entity.Role{entity.RoleOwner, entity.RoleAdmin}

	internalRoles = []entity.Role{
		entity.RoleOwner, entity.RoleAdmin, entity.RoleSalesRep, entity.RoleContractor, entity.RolePM,
	}

	contractorViewerRoles = []entity.Role{entity.RoleOwner, entity.RoleAdmin, entity.RolePM}
)

// HasRole true si role no es vacío y aparece en allowed (comparación exacta).
func HasRole(role entity.Role, allowed ...entity.Role) bool {
	if role == "" || !role.Valid() {
		return false
	}
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin owner o admin.
func IsAdmin(role entity.Role) bool { return HasRole(role, adminRoles...) }

// IsInternal personal interno: owner, admin, sales_rep, contractor, pm.
func IsInternal(role entity.Role) bool { return HasRole(role, internalRoles...) }

func CanManageUsers(role entity.Role) bool     { return IsAdmin(role) }
func CanViewAllJobs(role entity.Role) bool     { return IsAdmin(role) }
func CanViewFinancials(role entity.Role) bool  { return IsAdmin(role) }
func CanManageCampaigns(role entity.Role) bool { return IsAdmin(role) }

// CanViewAllContractors owner, admin o pm.
func CanViewAllContractors(role entity.Role) bool { return HasRole(role, contractorViewerRoles...) }

// CanAccessDashboard solo roles internos; subscriber, partner y pending usan sus propios portales.
func CanAccessDashboard(role entity.Role) bool { return IsInternal(role) }

// CanUserAccessDashboard exige además que la cuenta esté activa.
func CanUserAccessDashboard(u entity.User) bool {
	return u.Status == entity.UserStatusActive && CanAccessDashboard(u.Role)
}

// Allows resuelve un Permission contra el rol. Permisos desconocidos se niegan.
func Allows(role entity.Role, perm Permission) bool {
	switch perm {
	case PermManageUsers:
		return CanManageUsers(role)
	case PermViewAllJobs:
		return CanViewAllJobs(role)
	case PermViewFinancials:
		return CanViewFinancials(role)
	case PermManageCampaigns:
		return CanManageCampaigns(role)
	case PermViewAllContractors:
		return CanViewAllContractors(role)
	case PermAccessDashboard:
		return CanAccessDashboard(role)
	default:
		return false
	}
}
