package domain

import (
	"errors"
	"time"
)

// Role is the authorization level attached to a User.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCashier Role = "cashier"
)

var (
	ErrAdminExists        = errors.New("admin already exists")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("admin only")
)

// User models an account of the point-of-sale backend.
// Username is immutable once created; PasswordHash never leaves the service.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
}

// HasRole reports whether the user carries exactly the given role.
func (u *User) HasRole(role Role) bool {
	return u != nil && u.Role == role
}

// CanAuthenticate reports whether the account may log in or use a token.
func (u *User) CanAuthenticate() bool {
	return u != nil && u.IsActive
}
