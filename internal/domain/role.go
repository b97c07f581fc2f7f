package domain

// Role represents a user role in the system
type Role string

const (
	// RoleSuperAdmin has no tenant affiliation and unscoped access across all
	// tenants. Per-tenant user management is deliberately outside its reach.
	RoleSuperAdmin Role = "super_admin"

	// RoleTenantAdmin manages users and projects within a single tenant.
	RoleTenantAdmin Role = "tenant_admin"

	// RoleUser has member-level access to its own tenant's projects and tasks.
	RoleUser Role = "user"
)

// ValidRoles contains all valid roles in the system
var ValidRoles = []Role{RoleSuperAdmin, RoleTenantAdmin, RoleUser}

// IsValidRole checks if a given role is valid
func IsValidRole(role string) bool {
	switch Role(role) {
	case RoleSuperAdmin, RoleTenantAdmin, RoleUser:
		return true
	}
	return false
}

// Permission names an action gated by the role matrix.
type Permission string

const (
	PermManageAnyTenant   Permission = "manage_any_tenant"
	PermUpdateTenantName  Permission = "update_tenant_name"
	PermViewTenant        Permission = "view_tenant"
	PermManageUsers       Permission = "manage_users"
	PermUpdateOwnProfile  Permission = "update_own_profile"
	PermCreateProject     Permission = "create_project"
	PermUpdateProject     Permission = "update_project"
	PermDeleteProject     Permission = "delete_project"
	PermManageTasks       Permission = "manage_tasks"
	PermViewSystemStats   Permission = "view_system_stats"
	PermViewAuditTrail    Permission = "view_audit_trail"
	PermListAllTenants    Permission = "list_all_tenants"
)

// rolePermissions is the static role matrix. Tenant-scoping (own vs any
// tenant) is enforced separately by the access scope; this matrix answers
// only whether the action is available to the role at all.
//
// Regular users may create and update projects in their own tenant; project
// deletion is reserved for admins.
var rolePermissions = map[Role]map[Permission]bool{
	RoleSuperAdmin: {
		PermManageAnyTenant:  true,
		PermViewTenant:       true,
		PermUpdateOwnProfile: true,
		PermCreateProject:    true,
		PermUpdateProject:    true,
		PermDeleteProject:    true,
		PermManageTasks:      true,
		PermViewSystemStats:  true,
		PermViewAuditTrail:   true,
		PermListAllTenants:   true,
	},
	RoleTenantAdmin: {
		PermUpdateTenantName: true,
		PermViewTenant:       true,
		PermManageUsers:      true,
		PermUpdateOwnProfile: true,
		PermCreateProject:    true,
		PermUpdateProject:    true,
		PermDeleteProject:    true,
		PermManageTasks:      true,
		PermViewAuditTrail:   true,
	},
	RoleUser: {
		PermViewTenant:       true,
		PermUpdateOwnProfile: true,
		PermCreateProject:    true,
		PermUpdateProject:    true,
		PermManageTasks:      true,
	},
}

// Can reports whether the role is granted the permission by the matrix.
func Can(role Role, perm Permission) bool {
	return rolePermissions[role][perm]
}

// TenantUpdatableFields maps each role to the tenant columns it may patch.
// Consulted before building an update statement; fields outside the set are
// silently dropped, and an update that ends up empty is rejected upstream.
var TenantUpdatableFields = map[Role]map[string]bool{
	RoleSuperAdmin: {
		"name":              true,
		"subdomain":         true,
		"status":            true,
		"subscription_plan": true,
		"max_users":         true,
		"max_projects":      true,
	},
	RoleTenantAdmin: {
		"name": true,
	},
}

// UserUpdatableFields maps each role to the user columns it may patch on
// users of its tenant. Any role may patch its own full_name.
var UserUpdatableFields = map[Role]map[string]bool{
	RoleSuperAdmin: {
		"full_name": true,
	},
	RoleTenantAdmin: {
		"full_name": true,
		"role":      true,
		"is_active": true,
	},
	RoleUser: {
		"full_name": true,
	},
}
