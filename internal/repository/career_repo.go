package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crystalis-cms/internal/domain"
)

// CareerRepository define el contrato de persistencia para vacantes.
type CareerRepository interface {
	List(ctx context.Context) ([]domain.Career, error)
	GetByID(ctx context.Context, id string) (domain.Career, error)
	Create(ctx context.Context, career domain.Career) error
	Update(ctx context.Context, career domain.Career) error
	Delete(ctx context.Context, id string) error
}

// PgCareerRepository implementa CareerRepository usando pgxpool.
type PgCareerRepository struct {
	pool *pgxpool.Pool
}

func NewPgCareerRepository(pool *pgxpool.Pool) *PgCareerRepository {
	return &PgCareerRepository{pool: pool}
}

func (r *PgCareerRepository) List(ctx context.Context) ([]domain.Career, error) {
	const query = `
		SELECT id, title, department, location, type, description, status, applications, posted_date, created_at, updated_at
		FROM careers
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var careers []domain.Career
	for rows.Next() {
		var c domain.Career
		if err := rows.Scan(&c.ID, &c.Title, &c.Department, &c.Location, &c.Type, &c.Description, &c.Status, &c.Applications, &c.PostedDate, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		careers = append(careers, c)
	}
	return careers, rows.Err()
}

func (r *PgCareerRepository) GetByID(ctx context.Context, id string) (domain.Career, error) {
	const query = `
		SELECT id, title, department, location, type, description, status, applications, posted_date, created_at, updated_at
		FROM careers
		WHERE id = $1
	`
	var c domain.Career
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Title, &c.Department, &c.Location, &c.Type, &c.Description, &c.Status, &c.Applications, &c.PostedDate, &c.CreatedAt, &c.UpdatedAt,
	)
	return c, err
}

func (r *PgCareerRepository) Create(ctx context.Context, career domain.Career) error {
	const query = `
		INSERT INTO careers (id, title, department, location, type, description, status, applications, posted_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.pool.Exec(ctx, query,
		career.ID, career.Title, career.Department, career.Location, career.Type, career.Description, career.Status, career.Applications, career.PostedDate, career.CreatedAt, career.UpdatedAt,
	)
	return err
}

func (r *PgCareerRepository) Update(ctx context.Context, career domain.Career) error {
	const query = `
		UPDATE careers
		SET title = $2, department = $3, location = $4, type = $5, description = $6, status = $7, applications = $8, posted_date = $9, updated_at = $10
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		career.ID, career.Title, career.Department, career.Location, career.Type, career.Description, career.Status, career.Applications, career.PostedDate, career.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgCareerRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM careers WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
