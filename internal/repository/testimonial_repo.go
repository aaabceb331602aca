package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crystalis-cms/internal/domain"
)

// TestimonialRepository define el contrato de persistencia para testimonios.
type TestimonialRepository interface {
	List(ctx context.Context) ([]domain.Testimonial, error)
	GetByID(ctx context.Context, id string) (domain.Testimonial, error)
	Create(ctx context.Context, testimonial domain.Testimonial) error
	Update(ctx context.Context, testimonial domain.Testimonial) error
	Delete(ctx context.Context, id string) error
}

// PgTestimonialRepository implementa TestimonialRepository usando pgxpool.
type PgTestimonialRepository struct {
	pool *pgxpool.Pool
}

func NewPgTestimonialRepository(pool *pgxpool.Pool) *PgTestimonialRepository {
	return &PgTestimonialRepository{pool: pool}
}

func (r *PgTestimonialRepository) List(ctx context.Context) ([]domain.Testimonial, error) {
	const query = `
		SELECT id, name, role, message, status, date, created_at, updated_at
		FROM testimonials
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var testimonials []domain.Testimonial
	for rows.Next() {
		var t domain.Testimonial
		if err := rows.Scan(&t.ID, &t.Name, &t.Role, &t.Message, &t.Status, &t.Date, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}

func (r *PgTestimonialRepository) GetByID(ctx context.Context, id string) (domain.Testimonial, error) {
	const query = `
		SELECT id, name, role, message, status, date, created_at, updated_at
		FROM testimonials
		WHERE id = $1
	`
	var t domain.Testimonial
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Role, &t.Message, &t.Status, &t.Date, &t.CreatedAt, &t.UpdatedAt,
	)
	return t, err
}

func (r *PgTestimonialRepository) Create(ctx context.Context, testimonial domain.Testimonial) error {
	const query = `
		INSERT INTO testimonials (id, name, role, message, status, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		testimonial.ID, testimonial.Name, testimonial.Role, testimonial.Message, testimonial.Status, testimonial.Date, testimonial.CreatedAt, testimonial.UpdatedAt,
	)
	return err
}

func (r *PgTestimonialRepository) Update(ctx context.Context, testimonial domain.Testimonial) error {
	const query = `
		UPDATE testimonials
		SET name = $2, role = $3, message = $4, status = $5, date = $6, updated_at = $7
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		testimonial.ID, testimonial.Name, testimonial.Role, testimonial.Message, testimonial.Status, testimonial.Date, testimonial.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgTestimonialRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM testimonials WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
