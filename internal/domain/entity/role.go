// Package entity contains the core business objects of the project.
package entity

// Role represents the access level of a user account.
type Role string

const (
	// RoleStudent is an enrolled student account.
	RoleStudent Role = "student"
	// RoleFaculty is a teaching staff account.
	RoleFaculty Role = "faculty"
	// RoleEditor can draft content but not publish or review admissions.
	RoleEditor Role = "editor"
	// RoleAdmin has full access to the content backend and admissions review.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a known value.
func (r Role) IsValid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleEditor, RoleAdmin:
		return true
	default:
		return false
	}
}
