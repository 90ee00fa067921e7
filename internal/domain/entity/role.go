// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleSuperAdmin indicates the highest privileged administrative role.
	RoleSuperAdmin Role = "super_admin"
	// RoleAdmin indicates an administrative role.
	RoleAdmin Role = "admin"
	// RoleDriver indicates a driver who opens and runs shared orders.
	RoleDriver Role = "driver"
	// RoleUser indicates a regular participant role.
	RoleUser Role = "user"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleDriver, RoleUser:
		return true
	default:
		return false
	}
}

// IsAdmin reports whether the role carries blanket administrative scope.
func (r Role) IsAdmin() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}
