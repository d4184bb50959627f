package ports

import (
	"context"

	"github.com/schoolspace/classroom-reservation/internal/core/domain"
)

// CreateUserInput carries the fields for an administrator-created account.
// Such accounts are active immediately, unlike self-registrations.
type CreateUserInput struct {
	Username string
	Password string
	Nickname string
	Role     string
}

// UpdateUserInput carries the mutable account fields; empty values are left
// unchanged.
type UpdateUserInput struct {
	Role     string
	Nickname string
}

// UserService implements user administration. All operations are
// administrator-only; handlers gate on role before calling in, and the
// self-action guards take the acting identity explicitly.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	ListPending(ctx context.Context) ([]domain.User, error)
	Approve(ctx context.Context, id uint) (*domain.User, error)
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	// Update changes role and/or nickname. Changing one's own role is
	// rejected with domain.ErrSelfAction.
	Update(ctx context.Context, actor domain.Identity, id uint, in UpdateUserInput) (*domain.User, error)
	ResetPassword(ctx context.Context, id uint, password string) error
	// Delete removes an account. Self-deletion is rejected with
	// domain.ErrSelfAction.
	Delete(ctx context.Context, actor domain.Identity, id uint) error
}
