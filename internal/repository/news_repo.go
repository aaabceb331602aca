package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crystalis-cms/internal/domain"
)

// NewsRepository define el contrato de persistencia para noticias.
type NewsRepository interface {
	List(ctx context.Context) ([]domain.NewsItem, error)
	GetByID(ctx context.Context, id string) (domain.NewsItem, error)
	Create(ctx context.Context, item domain.NewsItem) error
	Update(ctx context.Context, item domain.NewsItem) error
	Delete(ctx context.Context, id string) error
}

// PgNewsRepository implementa NewsRepository usando pgxpool.
type PgNewsRepository struct {
	pool *pgxpool.Pool
}

func NewPgNewsRepository(pool *pgxpool.Pool) *PgNewsRepository {
	return &PgNewsRepository{pool: pool}
}

func (r *PgNewsRepository) List(ctx context.Context) ([]domain.NewsItem, error) {
	const query = `
		SELECT id, title, author, category, content, status, publish_date, created_at, updated_at
		FROM news
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.NewsItem
	for rows.Next() {
		var n domain.NewsItem
		if err := rows.Scan(&n.ID, &n.Title, &n.Author, &n.Category, &n.Content, &n.Status, &n.PublishDate, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	return items, rows.Err()
}

func (r *PgNewsRepository) GetByID(ctx context.Context, id string) (domain.NewsItem, error) {
	const query = `
		SELECT id, title, author, category, content, status, publish_date, created_at, updated_at
		FROM news
		WHERE id = $1
	`
	var n domain.NewsItem
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&n.ID, &n.Title, &n.Author, &n.Category, &n.Content, &n.Status, &n.PublishDate, &n.CreatedAt, &n.UpdatedAt,
	)
	return n, err
}

func (r *PgNewsRepository) Create(ctx context.Context, item domain.NewsItem) error {
	const query = `
		INSERT INTO news (id, title, author, category, content, status, publish_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		item.ID, item.Title, item.Author, item.Category, item.Content, item.Status, item.PublishDate, item.CreatedAt, item.UpdatedAt,
	)
	return err
}

func (r *PgNewsRepository) Update(ctx context.Context, item domain.NewsItem) error {
	const query = `
		UPDATE news
		SET title = $2, author = $3, category = $4, content = $5, status = $6, publish_date = $7, updated_at = $8
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		item.ID, item.Title, item.Author, item.Category, item.Content, item.Status, item.PublishDate, item.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgNewsRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM news WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
