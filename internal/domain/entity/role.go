// Package entity contains the core business objects of the project.
package entity

// Role represents the surface a caller is signed into.
type Role string

const (
	// RoleOwner indicates the store owner surface.
	RoleOwner Role = "owner"
	// RoleCustomer indicates the customer surface.
	RoleCustomer Role = "customer"
	// RoleAdmin indicates the back-office admin surface.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleCustomer, RoleAdmin:
		return true
	default:
		return false
	}
}
