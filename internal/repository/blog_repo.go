package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crystalis-cms/internal/domain"
)

// BlogRepository define el contrato de persistencia para blogs.
type BlogRepository interface {
	List(ctx context.Context) ([]domain.Blog, error)
	GetByID(ctx context.Context, id string) (domain.Blog, error)
	Create(ctx context.Context, blog domain.Blog) error
	Update(ctx context.Context, blog domain.Blog) error
	Delete(ctx context.Context, id string) error
}

// PgBlogRepository implementa BlogRepository usando pgxpool.
type PgBlogRepository struct {
	pool *pgxpool.Pool
}

func NewPgBlogRepository(pool *pgxpool.Pool) *PgBlogRepository {
	return &PgBlogRepository{pool: pool}
}

func (r *PgBlogRepository) List(ctx context.Context) ([]domain.Blog, error) {
	const query = `
		SELECT id, title, author, category, content, status, publish_date, views, created_at, updated_at
		FROM blogs
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blogs []domain.Blog
	for rows.Next() {
		var b domain.Blog
		if err := rows.Scan(&b.ID, &b.Title, &b.Author, &b.Category, &b.Content, &b.Status, &b.PublishDate, &b.Views, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		blogs = append(blogs, b)
	}
	return blogs, rows.Err()
}

func (r *PgBlogRepository) GetByID(ctx context.Context, id string) (domain.Blog, error) {
	const query = `
		SELECT id, title, author, category, content, status, publish_date, views, created_at, updated_at
		FROM blogs
		WHERE id = $1
	`
	var b domain.Blog
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.Author, &b.Category, &b.Content, &b.Status, &b.PublishDate, &b.Views, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *PgBlogRepository) Create(ctx context.Context, blog domain.Blog) error {
	const query = `
		INSERT INTO blogs (id, title, author, category, content, status, publish_date, views, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		blog.ID, blog.Title, blog.Author, blog.Category, blog.Content, blog.Status, blog.PublishDate, blog.Views, blog.CreatedAt, blog.UpdatedAt,
	)
	return err
}

func (r *PgBlogRepository) Update(ctx context.Context, blog domain.Blog) error {
	const query = `
		UPDATE blogs
		SET title = $2, author = $3, category = $4, content = $5, status = $6, publish_date = $7, views = $8, updated_at = $9
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		blog.ID, blog.Title, blog.Author, blog.Category, blog.Content, blog.Status, blog.PublishDate, blog.Views, blog.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgBlogRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM blogs WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
