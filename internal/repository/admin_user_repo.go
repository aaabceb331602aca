package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"crystalis-cms/internal/domain"
)

// AdminUserRepository define el contrato de persistencia para cuentas de admin.
type AdminUserRepository interface {
	GetByID(ctx context.Context, id string) (domain.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (domain.AdminUser, error)
	Create(ctx context.Context, user domain.AdminUser) error
}

// PgAdminUserRepository implementa AdminUserRepository usando pgxpool.
type PgAdminUserRepository struct {
	pool *pgxpool.Pool
}

func NewPgAdminUserRepository(pool *pgxpool.Pool) *PgAdminUserRepository {
	return &PgAdminUserRepository{pool: pool}
}

func (r *PgAdminUserRepository) GetByID(ctx context.Context, id string) (domain.AdminUser, error) {
	const query = `
		SELECT id, name, email, role, password_hash, created_at
		FROM admin_users
		WHERE id = $1
	`
	var u domain.AdminUser
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt,
	)
	return u, err
}

func (r *PgAdminUserRepository) GetByEmail(ctx context.Context, email string) (domain.AdminUser, error) {
	const query = `
		SELECT id, name, email, role, password_hash, created_at
		FROM admin_users
		WHERE email = $1
	`
	var u domain.AdminUser
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.Role, &u.PasswordHash, &u.CreatedAt,
	)
	return u, err
}

func (r *PgAdminUserRepository) Create(ctx context.Context, user domain.AdminUser) error {
	const query = `
		INSERT INTO admin_users (id, name, email, role, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.Role, user.PasswordHash, user.CreatedAt,
	)
	return err
}
