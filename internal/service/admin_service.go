package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"crystalis-cms/internal/domain"
	"crystalis-cms/internal/repository"
)

// AdminService coordina la autenticación de cuentas del panel.
type AdminService struct {
	logger *zap.Logger
	admins repository.AdminUserRepository
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidEmail       = errors.New("invalid email")
)

func NewAdminService(logger *zap.Logger, admins repository.AdminUserRepository) *AdminService {
	return &AdminService{
		logger: logger,
		admins: admins,
	}
}

// Authenticate valida email y password contra el hash almacenado.
func (s *AdminService) Authenticate(ctx context.Context, emailAddr, password string) (domain.AdminUser, error) {
	if s.admins == nil {
		return domain.AdminUser{}, errors.New("admin service not configured")
	}

	emailAddr = normalizeEmail(emailAddr)
	password = strings.TrimSpace(password)
	if emailAddr == "" || password == "" {
		return domain.AdminUser{}, ErrInvalidCredentials
	}

	user, err := s.admins.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.AdminUser{}, ErrInvalidCredentials
		}
		return domain.AdminUser{}, err
	}
	if user.PasswordHash == "" {
		return domain.AdminUser{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.AdminUser{}, ErrInvalidCredentials
	}
	return user, nil
}

// GetByID devuelve la cuenta del panel con el id dado.
func (s *AdminService) GetByID(ctx context.Context, id string) (domain.AdminUser, error) {
	if s.admins == nil {
		return domain.AdminUser{}, errors.New("admin service not configured")
	}
	return s.admins.GetByID(ctx, id)
}

type CreateAdminInput struct {
	Name     string
	Email    string
	Role     string
	Password string
}

// CreateAdmin da de alta una cuenta del panel con password hasheado.
func (s *AdminService) CreateAdmin(ctx context.Context, input CreateAdminInput) (domain.AdminUser, error) {
	if s.admins == nil {
		return domain.AdminUser{}, errors.New("admin service not configured")
	}

	emailAddr := normalizeEmail(input.Email)
	if emailAddr == "" {
		return domain.AdminUser{}, ErrInvalidEmail
	}
	password := strings.TrimSpace(input.Password)
	if password == "" {
		return domain.AdminUser{}, ErrInvalidCredentials
	}

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.AdminUser{}, err
	}

	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = "editor"
	}

	user := domain.AdminUser{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(input.Name),
		Email:        emailAddr,
		Role:         role,
		PasswordHash: string(hashBytes),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.admins.Create(ctx, user); err != nil {
		return domain.AdminUser{}, err
	}
	return user, nil
}

func normalizeEmail(emailAddr string) string {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))
	if !strings.Contains(emailAddr, "@") {
		return ""
	}
	return emailAddr
}
