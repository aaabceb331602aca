package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crystalis-cms/internal/domain"
)

// PartnerRepository define el contrato de persistencia para partners.
type PartnerRepository interface {
	List(ctx context.Context) ([]domain.Partner, error)
	GetByID(ctx context.Context, id string) (domain.Partner, error)
	Create(ctx context.Context, partner domain.Partner) error
	Update(ctx context.Context, partner domain.Partner) error
	Delete(ctx context.Context, id string) error
}

// PgPartnerRepository implementa PartnerRepository usando pgxpool.
type PgPartnerRepository struct {
	pool *pgxpool.Pool
}

func NewPgPartnerRepository(pool *pgxpool.Pool) *PgPartnerRepository {
	return &PgPartnerRepository{pool: pool}
}

func (r *PgPartnerRepository) List(ctx context.Context) ([]domain.Partner, error) {
	const query = `
		SELECT id, name, type, location, contact, status, collaborations, created_at, updated_at
		FROM partners
		ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var partners []domain.Partner
	for rows.Next() {
		var p domain.Partner
		if err := rows.Scan(&p.ID, &p.Name, &p.Type, &p.Location, &p.Contact, &p.Status, &p.Collaborations, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}
	return partners, rows.Err()
}

func (r *PgPartnerRepository) GetByID(ctx context.Context, id string) (domain.Partner, error) {
	const query = `
		SELECT id, name, type, location, contact, status, collaborations, created_at, updated_at
		FROM partners
		WHERE id = $1
	`
	var p domain.Partner
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Type, &p.Location, &p.Contact, &p.Status, &p.Collaborations, &p.CreatedAt, &p.UpdatedAt,
	)
	return p, err
}

func (r *PgPartnerRepository) Create(ctx context.Context, partner domain.Partner) error {
	const query = `
		INSERT INTO partners (id, name, type, location, contact, status, collaborations, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		partner.ID, partner.Name, partner.Type, partner.Location, partner.Contact, partner.Status, partner.Collaborations, partner.CreatedAt, partner.UpdatedAt,
	)
	return err
}

func (r *PgPartnerRepository) Update(ctx context.Context, partner domain.Partner) error {
	const query = `
		UPDATE partners
		SET name = $2, type = $3, location = $4, contact = $5, status = $6, collaborations = $7, updated_at = $8
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		partner.ID, partner.Name, partner.Type, partner.Location, partner.Contact, partner.Status, partner.Collaborations, partner.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgPartnerRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM partners WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
