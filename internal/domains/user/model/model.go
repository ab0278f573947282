package model

import "hus/shared/constant"

const (
	EntityName = "USER"

	// The distinguished super-admin account, auto-provisioned whenever the
	// users collection lacks it.
	SuperAdminUsername = "allyacraman"
	SuperAdminName     = "Ally Acraman"
	SuperAdminID       = "sa"

	// Passwords are stored and compared in plaintext. This tool runs as a
	// single-tenant local terminal; there is no networked multi-user
	// exposure to defend against.
	DefaultPassword = "password123"
)

type Role string

const (
	RoleSuperAdmin Role = constant.RoleSuperAdmin
	RoleManager    Role = constant.RoleManager
	RoleStaff      Role = constant.RoleStaff
)

type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Username  string `json:"username"`
	Password  string `json:"password,omitempty"`
	Role      Role   `json:"role"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
}

// FullAccess reports whether the role belongs to the full-access tier
// (financials, team management, settings). Staff keeps the front-desk
// tier only.
func (r Role) FullAccess() bool {
	return r == RoleSuperAdmin || r == RoleManager
}

// ValidRole reports whether r is one of the enumerated roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleSuperAdmin, RoleManager, RoleStaff:
		return true
	}

	return false
}
