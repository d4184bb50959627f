package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/schoolspace/classroom-reservation/internal/core/domain"
	"github.com/schoolspace/classroom-reservation/internal/core/ports"
)

// UserService implements administrator user management.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) ListPending(ctx context.Context) ([]domain.User, error) {
	return s.repo.ListByStatus(ctx, domain.StatusPending)
}

// Approve activates a pending registration. Approving an already active
// account is a no-op rather than an error.
func (s *UserService) Approve(ctx context.Context, id uint) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.Status == domain.StatusActive {
		return user, nil
	}
	user.Status = domain.StatusActive
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Create adds an account directly in the active state.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}
	nickname := in.Nickname
	if nickname == "" {
		nickname = in.Username
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &domain.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		Role:         role,
		Status:       domain.StatusActive,
		Nickname:     nickname,
	})
}

// Update changes role and/or nickname. An administrator cannot change their
// own role; a school with its only admin demoted would be unmanageable.
func (s *UserService) Update(ctx context.Context, actor domain.Identity, id uint, in ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Role != "" {
		if !domain.ValidRole(in.Role) {
			return nil, domain.ErrInvalidCredentials
		}
		if id == actor.UserID && in.Role != user.Role {
			return nil, domain.ErrSelfAction
		}
		user.Role = in.Role
	}
	if in.Nickname != "" {
		user.Nickname = in.Nickname
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ResetPassword replaces an account's credential hash.
func (s *UserService) ResetPassword(ctx context.Context, id uint, password string) error {
	if password == "" {
		return domain.ErrInvalidCredentials
	}
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return s.repo.Update(ctx, user)
}

// Delete removes an account and, via the schema, its reservations.
func (s *UserService) Delete(ctx context.Context, actor domain.Identity, id uint) error {
	if id == actor.UserID {
		return domain.ErrSelfAction
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
