package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crystalis-cms/internal/domain"
)

// EventRepository define el contrato de persistencia para eventos.
type EventRepository interface {
	List(ctx context.Context) ([]domain.Event, error)
	GetByID(ctx context.Context, id string) (domain.Event, error)
	Create(ctx context.Context, event domain.Event) error
	Update(ctx context.Context, event domain.Event) error
	Delete(ctx context.Context, id string) error
}

// PgEventRepository implementa EventRepository usando pgxpool.
type PgEventRepository struct {
	pool *pgxpool.Pool
}

func NewPgEventRepository(pool *pgxpool.Pool) *PgEventRepository {
	return &PgEventRepository{pool: pool}
}

func (r *PgEventRepository) List(ctx context.Context) ([]domain.Event, error) {
	const query = `
		SELECT id, title, location, date, description, status, created_at, updated_at
		FROM events
		ORDER BY date DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Location, &e.Date, &e.Description, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *PgEventRepository) GetByID(ctx context.Context, id string) (domain.Event, error) {
	const query = `
		SELECT id, title, location, date, description, status, created_at, updated_at
		FROM events
		WHERE id = $1
	`
	var e domain.Event
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Title, &e.Location, &e.Date, &e.Description, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

func (r *PgEventRepository) Create(ctx context.Context, event domain.Event) error {
	const query = `
		INSERT INTO events (id, title, location, date, description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		event.ID, event.Title, event.Location, event.Date, event.Description, event.Status, event.CreatedAt, event.UpdatedAt,
	)
	return err
}

func (r *PgEventRepository) Update(ctx context.Context, event domain.Event) error {
	const query = `
		UPDATE events
		SET title = $2, location = $3, date = $4, description = $5, status = $6, updated_at = $7
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		event.ID, event.Title, event.Location, event.Date, event.Description, event.Status, event.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgEventRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM events WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
