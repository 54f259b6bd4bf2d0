// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account able to sign in to the site. Public visitors are not
// users; only staff and enrolled identities get a row here.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Email        string    // The user's login identifier, unique across the system.
	Name         string    // The user's display name.
	PasswordHash string    // bcrypt hash of the user's password.
	Role         Role      // The single role assigned to this account.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Identity is the denormalized snapshot of a user carried inside a session
// payload. It avoids a user-table join on requests that only need to know
// who is asking; guarded routes revalidate against the users table anyway.
type Identity struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	Role   Role      `json:"role"`
}

// IdentityOf builds the session snapshot for a user.
func IdentityOf(u *User) Identity {
	return Identity{
		UserID: u.ID,
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role,
	}
}
