package ports

import (
	"context"

	"github.com/schoolspace/classroom-reservation/internal/core/domain"
)

// UserRepository defines persistence operations for the identity store.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	// List returns all users ordered by id.
	List(ctx context.Context) ([]domain.User, error)
	// ListByStatus returns users in the given approval state, ordered by id.
	ListByStatus(ctx context.Context, status string) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// Delete removes the user; the database cascades to their reservations.
	Delete(ctx context.Context, id uint) error
}
