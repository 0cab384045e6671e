package service

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/adoptionsystem/adoption-api/internal/core/domain"
	"github.com/adoptionsystem/adoption-api/internal/core/ports"
	"github.com/adoptionsystem/adoption-api/internal/pkg/password"
)

func newUserService(repo ports.UserRepository) *UserService {
	return NewUserService(repo, password.NewHasher(), zerolog.Nop())
}

func seedUser(t *testing.T, repo *stubUserRepo, username, pass string) *domain.User {
	t.Helper()
	hash, err := password.NewHasher().Hash(pass)
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	u, err := repo.Create(context.Background(), &domain.User{
		Name:         username,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Role:         domain.RoleClient,
	})
	if err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	return u
}

func TestUserService_List_PaginationDefaults(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "eve", "pw")
	svc := newUserService(repo)

	if _, err := svc.List(context.Background(), ports.ListUsersInput{}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastLimit != 5 || repo.lastSkip != 0 {
		t.Fatalf("expected limit=5 skip=0, got limit=%d skip=%d", repo.lastLimit, repo.lastSkip)
	}

	if _, err := svc.List(context.Background(), ports.ListUsersInput{Limit: 1000, Skip: -3}); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if repo.lastLimit != maxUserLimit {
		t.Fatalf("expected limit capped at %d, got %d", maxUserLimit, repo.lastLimit)
	}
	if repo.lastSkip != 0 {
		t.Fatalf("expected negative skip clamped to 0, got %d", repo.lastSkip)
	}
}

func TestUserService_List_EmptyIsNotFound(t *testing.T) {
	svc := newUserService(newStubUserRepo())

	if _, err := svc.List(context.Background(), ports.ListUsersInput{}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound on empty page, got %v", err)
	}
}

func TestUserService_Create_RoleHandling(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserService(repo)

	admin, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "root", Email: "root@example.com", Password: "pw", Role: domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	if admin.Role != domain.RoleAdmin {
		t.Fatalf("expected ADMIN, got %s", admin.Role)
	}

	client, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "plain", Email: "plain@example.com", Password: "pw",
	})
	if err != nil {
		t.Fatalf("create client failed: %v", err)
	}
	if client.Role != domain.RoleClient {
		t.Fatalf("expected default CLIENT, got %s", client.Role)
	}

	if _, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "bad", Email: "bad@example.com", Password: "pw", Role: "SUPERUSER",
	}); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected rejection of unknown role, got %v", err)
	}
}

func TestUserService_Update_EmptyPatch(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "frank", "pw")
	svc := newUserService(repo)

	if _, err := svc.Update(context.Background(), u.ID, ports.UpdateUserInput{}); err != domain.ErrEmptyUpdate {
		t.Fatalf("expected ErrEmptyUpdate, got %v", err)
	}

	name := "Franklin"
	updated, err := svc.Update(context.Background(), u.ID, ports.UpdateUserInput{Name: &name})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Name != "Franklin" {
		t.Fatalf("expected name updated, got %s", updated.Name)
	}
}

func TestUserService_UpdatePassword(t *testing.T) {
	repo := newStubUserRepo()
	u := seedUser(t, repo, "grace", "oldpass")
	svc := newUserService(repo)

	if err := svc.UpdatePassword(context.Background(), u.ID, "wrong", "newpass"); err != domain.ErrWrongPassword {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}

	if err := svc.UpdatePassword(context.Background(), u.ID, "oldpass", "newpass"); err != nil {
		t.Fatalf("password update failed: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), u.ID)
	if !password.NewHasher().Verify(stored.PasswordHash, "newpass") {
		t.Fatalf("new password not stored")
	}
	if password.NewHasher().Verify(stored.PasswordHash, "oldpass") {
		t.Fatalf("old password still valid")
	}
}

func TestUser_JSONHidesPasswordHash(t *testing.T) {
	u := &domain.User{
		ID:           "u1",
		Username:     "harry",
		Email:        "harry@example.com",
		PasswordHash: "$2a$10$somethingsecret",
		Role:         domain.RoleClient,
	}

	raw, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(raw), "somethingsecret") {
		t.Fatalf("password hash leaked into JSON: %s", raw)
	}
}
