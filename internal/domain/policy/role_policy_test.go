package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lithrlnd12/keyhubcentral/internal/domain/entity"
	"github.com/lithrlnd12/keyhubcentral/internal/domain/policy"
)

// allRoles incluye roles inválidos para verificar el comportamiento fail-closed.
var allRoles = append(append([]entity.Role{}, entity.Roles...), "", "Admin", "OWNER", "superuser", " admin")

// expectTable verifica un predicado contra el conjunto exacto de roles que deben ser true.
func expectTable(t *testing.T, name string, pred func(entity.Role) bool, allowed ...entity.Role) {
	t.Helper()
	want := make(map[entity.Role]bool, len(allowed))
	for _, r := range allowed {
		want[r] = true
	}
	for _, r := range allRoles {
		assert.Equalf(t, want[r], pred(r), "%s(%q)", name, r)
	}
}

func TestIsAdmin(t *testing.T) {
	expectTable(t, "IsAdmin", policy.IsAdmin, entity.RoleOwner, entity.RoleAdmin)
}

func TestIsInternal(t *testing.T) {
	expectTable(t, "IsInternal", policy.IsInternal,
		entity.RoleOwner, entity.RoleAdmin, entity.RoleSalesRep, entity.RoleContractor, entity.RolePM)
}

func TestAdminEquivalentPredicates(t *testing.T) {
	preds := map[string]func(entity.Role) bool{
		"CanManageUsers":     policy.CanManageUsers,
		"CanViewAllJobs":     policy.CanViewAllJobs,
		"CanViewFinancials":  policy.CanViewFinancials,
		"CanManageCampaigns": policy.CanManageCampaigns,
	}
	for name, pred := range preds {
		expectTable(t, name, pred, entity.RoleOwner, entity.RoleAdmin)
	}
}

func TestCanViewAllContractors(t *testing.T) {
	expectTable(t, "CanViewAllContractors", policy.CanViewAllContractors,
		entity.RoleOwner, entity.RoleAdmin, entity.RolePM)
}

func TestCanAccessDashboard_ExcluyePortalesExternos(t *testing.T) {
	expectTable(t, "CanAccessDashboard", policy.CanAccessDashboard,
		entity.RoleOwner, entity.RoleAdmin, entity.RoleSalesRep, entity.RoleContractor, entity.RolePM)
}

func TestHasRole(t *testing.T) {
	assert.True(t, policy.HasRole(entity.RoleAdmin, entity.RoleAdmin, entity.RolePM))
	assert.False(t, policy.HasRole(entity.RoleSalesRep, entity.RoleAdmin, entity.RolePM))
	assert.False(t, policy.HasRole("", ""), "rol vacío nunca coincide")
	assert.False(t, policy.HasRole("Admin", entity.RoleAdmin), "comparación sensible a mayúsculas")
	assert.False(t, policy.HasRole(entity.RoleAdmin), "sin roles permitidos")
	assert.False(t, policy.HasRole("root", "root"), "rol fuera de la enumeración se rechaza")
}

func TestCanUserAccessDashboard_RequiereCuentaActiva(t *testing.T) {
	statuses := []entity.UserStatus{
		entity.UserStatusPending, entity.UserStatusActive, entity.UserStatusInactive, entity.UserStatusSuspended,
	}
	for _, role := range allRoles {
		for _, st := range statuses {
			u := entity.User{Role: role, Status: st}
			want := st == entity.UserStatusActive && policy.CanAccessDashboard(role)
			assert.Equalf(t, want, policy.CanUserAccessDashboard(u), "role=%q status=%q", role, st)
		}
	}
	assert.False(t, policy.CanUserAccessDashboard(entity.User{Role: entity.RoleOwner, Status: entity.UserStatusSuspended}))
}

func TestAllows(t *testing.T) {
	assert.True(t, policy.Allows(entity.RoleAdmin, policy.PermViewFinancials))
	assert.False(t, policy.Allows(entity.RoleSalesRep, policy.PermViewFinancials))
	assert.True(t, policy.Allows(entity.RolePM, policy.PermViewAllContractors))
	assert.True(t, policy.Allows(entity.RoleContractor, policy.PermAccessDashboard))
	assert.False(t, policy.Allows(entity.RoleOwner, policy.Permission("nuke:everything")),
		"permiso desconocido se niega incluso a owner")
	assert.False(t, policy.Allows("", policy.PermAccessDashboard))
}
