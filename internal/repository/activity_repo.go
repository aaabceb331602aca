package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"crystalis-cms/internal/domain"
)

// ActivityRepository guarda el feed de actividad del dashboard.
type ActivityRepository interface {
	Insert(ctx context.Context, activity domain.Activity) error
	ListRecent(ctx context.Context, limit int) ([]domain.Activity, error)
}

// StatsRepository devuelve los conteos agregados del dashboard.
type StatsRepository interface {
	Counts(ctx context.Context) (domain.DashboardStats, error)
}

// PgActivityRepository implementa ActivityRepository usando pgxpool.
type PgActivityRepository struct {
	pool *pgxpool.Pool
}

func NewPgActivityRepository(pool *pgxpool.Pool) *PgActivityRepository {
	return &PgActivityRepository{pool: pool}
}

func (r *PgActivityRepository) Insert(ctx context.Context, activity domain.Activity) error {
	const query = `
		INSERT INTO activities (id, actor, action, entity, entity_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		activity.ID, activity.Actor, activity.Action, activity.Entity, activity.EntityID, activity.CreatedAt,
	)
	return err
}

func (r *PgActivityRepository) ListRecent(ctx context.Context, limit int) ([]domain.Activity, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `
		SELECT id, actor, action, entity, entity_id, created_at
		FROM activities
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ID, &a.Actor, &a.Action, &a.Entity, &a.EntityID, &a.CreatedAt); err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}

// PgStatsRepository implementa StatsRepository usando pgxpool.
type PgStatsRepository struct {
	pool *pgxpool.Pool
}

func NewPgStatsRepository(pool *pgxpool.Pool) *PgStatsRepository {
	return &PgStatsRepository{pool: pool}
}

func (r *PgStatsRepository) Counts(ctx context.Context) (domain.DashboardStats, error) {
	const query = `
		SELECT
			(SELECT count(*) FROM blogs),
			(SELECT count(*) FROM news),
			(SELECT count(*) FROM events),
			(SELECT count(*) FROM careers),
			(SELECT count(*) FROM partners),
			(SELECT count(*) FROM team_members),
			(SELECT count(*) FROM testimonials),
			(SELECT count(*) FROM contact_inquiries)
	`
	var s domain.DashboardStats
	err := r.pool.QueryRow(ctx, query).Scan(
		&s.Blogs, &s.News, &s.Events, &s.Careers, &s.Partners, &s.TeamMembers, &s.Testimonials, &s.Inquiries,
	)
	return s, err
}
