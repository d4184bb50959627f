package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/schoolspace/classroom-reservation/internal/core/domain"
	"github.com/schoolspace/classroom-reservation/internal/core/ports"
)

// EnsureAdmin seeds the bootstrap administrator account from configuration.
// Nothing happens when the credentials are unset or the account already
// exists; a fresh deployment otherwise has no way to approve anyone.
func EnsureAdmin(ctx context.Context, repo ports.UserRepository, username, password, nickname string, logger zerolog.Logger) error {
	if username == "" || password == "" {
		logger.Warn().Msg("admin credentials not configured, skipping bootstrap")
		return nil
	}

	if _, err := repo.FindByUsername(ctx, username); err == nil {
		logger.Debug().Str("username", username).Msg("admin account already exists")
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if nickname == "" {
		nickname = "系統管理員"
	}

	if _, err := repo.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Status:       domain.StatusActive,
		Nickname:     nickname,
	}); err != nil {
		return err
	}

	logger.Info().Str("username", username).Msg("bootstrap admin created")
	return nil
}
