package domain

import (
	"errors"
	"time"
)

// Role determines which operations the authorization gate permits.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
	RoleManager  Role = "manager"
)

// ValidRole reports whether s names one of the three known roles.
func ValidRole(s string) bool {
	switch Role(s) {
	case RoleCustomer, RoleDriver, RoleManager:
		return true
	}
	return false
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnknownUser is signalled by the authorization gate when the
	// requester's login cannot be resolved to a role. Callers must treat
	// it as an authentication failure, never as a default-permit.
	ErrUnknownUser = errors.New("unknown user")
)

// User models a registered account. The favorite item, when set, references
// an Item by name.
type User struct {
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	FavoriteItem string    `json:"favorite_item,omitempty"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
