package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"crystalis-cms/internal/domain"
)

type mockAdminRepo struct {
	byID    map[string]domain.AdminUser
	byEmail map[string]string
}

func newMockAdminRepo() *mockAdminRepo {
	return &mockAdminRepo{
		byID:    make(map[string]domain.AdminUser),
		byEmail: make(map[string]string),
	}
}

func (m *mockAdminRepo) Create(_ context.Context, user domain.AdminUser) error {
	m.byID[user.ID] = user
	m.byEmail[user.Email] = user.ID
	return nil
}

func (m *mockAdminRepo) GetByID(_ context.Context, id string) (domain.AdminUser, error) {
	user, ok := m.byID[id]
	if !ok {
		return domain.AdminUser{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *mockAdminRepo) GetByEmail(ctx context.Context, email string) (domain.AdminUser, error) {
	id, ok := m.byEmail[email]
	if !ok {
		return domain.AdminUser{}, pgx.ErrNoRows
	}
	return m.GetByID(ctx, id)
}

func TestAdminService_CreateAndAuthenticate(t *testing.T) {
	repo := newMockAdminRepo()
	svc := NewAdminService(zap.NewNop(), repo)

	created, err := svc.CreateAdmin(context.Background(), CreateAdminInput{
		Name:     "Admin",
		Email:    "Admin@Crystalis.com",
		Role:     "admin",
		Password: "admin123",
	})
	if err != nil {
		t.Fatalf("create admin failed: %v", err)
	}
	if created.Email != "admin@crystalis.com" {
		t.Fatalf("expected normalized email, got %q", created.Email)
	}
	if created.PasswordHash == "" || created.PasswordHash == "admin123" {
		t.Fatal("expected hashed password")
	}

	user, err := svc.Authenticate(context.Background(), "admin@crystalis.com", "admin123")
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if user.ID != created.ID {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAdminService_GetByID(t *testing.T) {
	repo := newMockAdminRepo()
	svc := NewAdminService(zap.NewNop(), repo)

	created, err := svc.CreateAdmin(context.Background(), CreateAdminInput{
		Email:    "admin@crystalis.com",
		Password: "admin123",
	})
	if err != nil {
		t.Fatalf("create admin failed: %v", err)
	}

	user, err := svc.GetByID(context.Background(), created.ID)
	if err != nil || user.Email != "admin@crystalis.com" {
		t.Fatalf("expected account, got %+v err %v", user, err)
	}
	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, pgx.ErrNoRows) {
		t.Fatalf("expected pgx.ErrNoRows, got %v", err)
	}
}

func TestAdminService_AuthenticateWrongPassword(t *testing.T) {
	repo := newMockAdminRepo()
	svc := NewAdminService(zap.NewNop(), repo)

	if _, err := svc.CreateAdmin(context.Background(), CreateAdminInput{
		Email:    "admin@crystalis.com",
		Password: "admin123",
	}); err != nil {
		t.Fatalf("create admin failed: %v", err)
	}

	if _, err := svc.Authenticate(context.Background(), "admin@crystalis.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAdminService_AuthenticateUnknownUser(t *testing.T) {
	svc := NewAdminService(zap.NewNop(), newMockAdminRepo())

	if _, err := svc.Authenticate(context.Background(), "ghost@crystalis.com", "pw"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAdminService_AuthenticateEmptyInput(t *testing.T) {
	svc := NewAdminService(zap.NewNop(), newMockAdminRepo())

	if _, err := svc.Authenticate(context.Background(), "", ""); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAdminService_CreateAdminInvalidEmail(t *testing.T) {
	svc := NewAdminService(zap.NewNop(), newMockAdminRepo())

	if _, err := svc.CreateAdmin(context.Background(), CreateAdminInput{
		Email:    "not-an-email",
		Password: "pw",
	}); !errors.Is(err, ErrInvalidEmail) {
		t.Fatalf("expected ErrInvalidEmail, got %v", err)
	}
}
