package domain

import (
	"errors"
	"time"
)

// Roles a user account can hold.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Account approval states. Self-registered accounts start as pending and
// cannot log in until an administrator approves them.
const (
	StatusPending = "pending"
	StatusActive  = "active"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountPending     = errors.New("account pending approval")
	ErrSelfAction         = errors.New("operation not allowed on own account")
)

// User is a registered account in the identity store.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"size:64;not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         string    `json:"role" gorm:"size:16;not null;default:user"`
	Status       string    `json:"status" gorm:"size:16;not null;default:pending"`
	Nickname     string    `json:"nickname" gorm:"size:64;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is the authenticated caller extracted from a verified token. It is
// passed explicitly into every workflow that needs to know who is acting.
type Identity struct {
	UserID   uint
	Username string
	Role     string
}

// IsAdmin reports whether the caller holds the administrator role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// ValidRole reports whether role is one of the known account roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
