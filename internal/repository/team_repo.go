package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"crystalis-cms/internal/domain"
)

// TeamRepository define el contrato de persistencia para miembros del equipo.
type TeamRepository interface {
	List(ctx context.Context) ([]domain.TeamMember, error)
	GetByID(ctx context.Context, id string) (domain.TeamMember, error)
	Create(ctx context.Context, member domain.TeamMember) error
	Update(ctx context.Context, member domain.TeamMember) error
	Delete(ctx context.Context, id string) error
}

// PgTeamRepository implementa TeamRepository usando pgxpool.
type PgTeamRepository struct {
	pool *pgxpool.Pool
}

func NewPgTeamRepository(pool *pgxpool.Pool) *PgTeamRepository {
	return &PgTeamRepository{pool: pool}
}

func (r *PgTeamRepository) List(ctx context.Context) ([]domain.TeamMember, error) {
	const query = `
		SELECT id, name, role, department, email, bio, status, created_at, updated_at
		FROM team_members
		ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.TeamMember
	for rows.Next() {
		var m domain.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Department, &m.Email, &m.Bio, &m.Status, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *PgTeamRepository) GetByID(ctx context.Context, id string) (domain.TeamMember, error) {
	const query = `
		SELECT id, name, role, department, email, bio, status, created_at, updated_at
		FROM team_members
		WHERE id = $1
	`
	var m domain.TeamMember
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Role, &m.Department, &m.Email, &m.Bio, &m.Status, &m.CreatedAt, &m.UpdatedAt,
	)
	return m, err
}

func (r *PgTeamRepository) Create(ctx context.Context, member domain.TeamMember) error {
	const query = `
		INSERT INTO team_members (id, name, role, department, email, bio, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		member.ID, member.Name, member.Role, member.Department, member.Email, member.Bio, member.Status, member.CreatedAt, member.UpdatedAt,
	)
	return err
}

func (r *PgTeamRepository) Update(ctx context.Context, member domain.TeamMember) error {
	const query = `
		UPDATE team_members
		SET name = $2, role = $3, department = $4, email = $5, bio = $6, status = $7, updated_at = $8
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query,
		member.ID, member.Name, member.Role, member.Department, member.Email, member.Bio, member.Status, member.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *PgTeamRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM team_members WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
