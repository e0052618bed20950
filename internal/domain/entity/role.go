// Package entity contains the core business objects of the project.
package entity

// Role represents the access level a user holds in the system.
type Role string

const (
	// RoleAnonymous indicates an account whose credentials have not been proved yet.
	RoleAnonymous Role = "anonymous"
	// RoleAuthenticated indicates an account promoted after a password-backed proof.
	RoleAuthenticated Role = "authenticated"
	// RoleAdministrator indicates an operator account.
	RoleAdministrator Role = "administrator"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAnonymous, RoleAuthenticated, RoleAdministrator:
		return true
	default:
		return false
	}
}
