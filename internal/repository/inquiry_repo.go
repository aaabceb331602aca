package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crystalis-cms/internal/domain"
)

// InquiryRepository define el contrato de persistencia para consultas de contacto.
type InquiryRepository interface {
	List(ctx context.Context) ([]domain.ContactInquiry, error)
	GetByID(ctx context.Context, id string) (domain.ContactInquiry, error)
	Create(ctx context.Context, inquiry domain.ContactInquiry) error
	Update(ctx context.Context, inquiry domain.ContactInquiry) error
	Delete(ctx context.Context, id string) error
}

// PgInquiryRepository implementa InquiryRepository usando pgxpool.
type PgInquiryRepository struct {
	pool *pgxpool.Pool
}

func NewPgInquiryRepository(pool *pgxpool.Pool) *PgInquiryRepository {
	return &PgInquiryRepository{pool: pool}
}

func (r *PgInquiryRepository) List(ctx context.Context) ([]domain.ContactInquiry, error) {
	const query = `
		SELECT id, name, email, subject, message, status, created_at, updated_at
		FROM contact_inquiries
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var inquiries []domain.ContactInquiry
	for rows.Next() {
		var q domain.ContactInquiry
		if err := rows.Scan(&q.ID, &q.Name, &q.Email, &q.Subject, &q.Message, &q.Status, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, err
		}
		inquiries = append(inquiries, q)
	}
	return inquiries, rows.Err()
}

func (r *PgInquiryRepository) GetByID(ctx context.Context, id string) (domain.ContactInquiry, error) {
	const query = `
		SELECT id, name, email, subject, message, status, created_at, updated_at
		FROM contact_inquiries
		WHERE id = $1
	`
	var q domain.ContactInquiry
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&q.ID, &q.Name, &q.Email, &q.Subject, &q.Message, &q.Status, &q.CreatedAt, &q.UpdatedAt,
	)
	return q, err
}

func (r *PgInquiryRepository) Create(ctx context.Context, inquiry domain.ContactInquiry) error {
	const query = `
		INSERT INTO contact_inquiries (id, name, email, subject, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		inquiry.ID, inquiry.Name, inquiry.Email, inquiry.Subject, inquiry.Message, inquiry.Status, inquiry.CreatedAt, inquiry.UpdatedAt,
	)
	return err
}

func (r *PgInquiryRepository) Update(ctx context.Context, inquiry domain.ContactInquiry) error {
	const query = `
		UPDATE contact_inquiries
		SET name = $2, email = $3, subject = $4, message = $5, status = $6, updated_at = $7
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		inquiry.ID, inquiry.Name, inquiry.Email, inquiry.Subject, inquiry.Message, inquiry.Status, inquiry.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgInquiryRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM contact_inquiries WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
