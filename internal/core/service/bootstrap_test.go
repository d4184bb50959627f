package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/schoolspace/classroom-reservation/internal/core/domain"
)

func TestEnsureAdmin_SeedsAccount(t *testing.T) {
	repo := newStubUserRepo()
	ctx := context.Background()

	if err := EnsureAdmin(ctx, repo, "root", "changeme", "", zerolog.Nop()); err != nil {
		t.Fatalf("EnsureAdmin returned error: %v", err)
	}

	admin, err := repo.FindByUsername(ctx, "root")
	if err != nil {
		t.Fatalf("admin account missing: %v", err)
	}
	if admin.Role != domain.RoleAdmin || admin.Status != domain.StatusActive {
		t.Fatalf("expected active admin, got role=%q status=%q", admin.Role, admin.Status)
	}
	if admin.Nickname != "系統管理員" {
		t.Fatalf("expected default nickname, got %q", admin.Nickname)
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("changeme")) != nil {
		t.Fatal("seeded hash does not verify the configured password")
	}
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	repo := newStubUserRepo()
	ctx := context.Background()

	if err := EnsureAdmin(ctx, repo, "root", "changeme", "", zerolog.Nop()); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	first, _ := repo.FindByUsername(ctx, "root")

	// Second run leaves the existing account untouched.
	if err := EnsureAdmin(ctx, repo, "root", "different", "改名", zerolog.Nop()); err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	second, _ := repo.FindByUsername(ctx, "root")
	if second.PasswordHash != first.PasswordHash || second.Nickname != first.Nickname {
		t.Fatal("existing admin account must not be rewritten")
	}
}

func TestEnsureAdmin_SkipsWhenUnconfigured(t *testing.T) {
	repo := newStubUserRepo()

	if err := EnsureAdmin(context.Background(), repo, "", "", "", zerolog.Nop()); err != nil {
		t.Fatalf("EnsureAdmin returned error: %v", err)
	}
	if len(repo.users) != 0 {
		t.Fatal("no account may be created without configured credentials")
	}
}
