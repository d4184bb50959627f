package ports

import (
	"context"

	"github.com/schoolspace/classroom-reservation/internal/core/domain"
)

// AuthService implements registration and login.
type AuthService interface {
	// Register creates a pending account awaiting administrator approval.
	Register(ctx context.Context, username, password, nickname string) (*domain.User, error)
	// Login verifies credentials and returns a signed token plus the user.
	// Pending accounts are rejected with domain.ErrAccountPending.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
