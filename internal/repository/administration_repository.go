package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/user-directory-service/internal/domain"
)

// AdministrationRepository handles persistence for administrations.
type AdministrationRepository interface {
	Create(ctx context.Context, admin *domain.Administration) error
	Update(ctx context.Context, admin *domain.Administration) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Administration, error)
	GetByName(ctx context.Context, name string) (*domain.Administration, error)
	List(ctx context.Context) ([]domain.Administration, error)
}

type administrationRepository struct {
	pool *pgxpool.Pool
}

// NewAdministrationRepository returns a Postgres-backed implementation.
func NewAdministrationRepository(pool *pgxpool.Pool) AdministrationRepository {
	return &administrationRepository{pool: pool}
}

func (r *administrationRepository) Create(ctx context.Context, admin *domain.Administration) error {
	const query = `
        INSERT INTO administrations (name)
        VALUES ($1)
        RETURNING id, created_at, updated_at`

	return querierFor(ctx, r.pool).QueryRow(ctx, query, admin.Name).
		Scan(&admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
}

func (r *administrationRepository) Update(ctx context.Context, admin *domain.Administration) error {
	const query = `
        UPDATE administrations SET name=$1, updated_at=NOW()
        WHERE id=$2
        RETURNING updated_at`

	err := querierFor(ctx, r.pool).QueryRow(ctx, query, admin.Name, admin.ID).Scan(&admin.UpdatedAt)
	if err != nil {
		return err
	}
	return nil
}

func (r *administrationRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM administrations WHERE id=$1`

	cmd, err := querierFor(ctx, r.pool).Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *administrationRepository) GetByID(ctx context.Context, id string) (*domain.Administration, error) {
	const query = `
        SELECT id, name, created_at, updated_at
        FROM administrations WHERE id=$1`

	var admin domain.Administration
	if err := querierFor(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&admin.ID,
		&admin.Name,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *administrationRepository) GetByName(ctx context.Context, name string) (*domain.Administration, error) {
	const query = `
        SELECT id, name, created_at, updated_at
        FROM administrations WHERE name=$1`

	var admin domain.Administration
	if err := querierFor(ctx, r.pool).QueryRow(ctx, query, name).Scan(
		&admin.ID,
		&admin.Name,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *administrationRepository) List(ctx context.Context) ([]domain.Administration, error) {
	const query = `
        SELECT id, name, created_at, updated_at
        FROM administrations ORDER BY name`

	rows, err := querierFor(ctx, r.pool).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Administration
	for rows.Next() {
		var admin domain.Administration
		if err := rows.Scan(&admin.ID, &admin.Name, &admin.CreatedAt, &admin.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, admin)
	}
	return result, rows.Err()
}
