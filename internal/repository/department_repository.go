package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/user-directory-service/internal/domain"
)

// DepartmentRepository handles persistence for departments.
type DepartmentRepository interface {
	Create(ctx context.Context, dept *domain.Department) error
	Update(ctx context.Context, dept *domain.Department) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Department, error)
	GetByName(ctx context.Context, name string) (*domain.Department, error)
	ExistsByNameFold(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]domain.Department, error)
}

type departmentRepository struct {
	pool *pgxpool.Pool
}

// NewDepartmentRepository returns a Postgres-backed implementation.
func NewDepartmentRepository(pool *pgxpool.Pool) DepartmentRepository {
	return &departmentRepository{pool: pool}
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	const query = `
        INSERT INTO departments (name, administration_id)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`

	return querierFor(ctx, r.pool).QueryRow(ctx, query,
		dept.Name,
		dept.AdministrationID,
	).Scan(&dept.ID, &dept.CreatedAt, &dept.UpdatedAt)
}

func (r *departmentRepository) Update(ctx context.Context, dept *domain.Department) error {
	const query = `
        UPDATE departments SET name=$1, administration_id=$2, updated_at=NOW()
        WHERE id=$3
        RETURNING updated_at`

	return querierFor(ctx, r.pool).QueryRow(ctx, query,
		dept.Name,
		dept.AdministrationID,
		dept.ID,
	).Scan(&dept.UpdatedAt)
}

func (r *departmentRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM departments WHERE id=$1`

	cmd, err := querierFor(ctx, r.pool).Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const departmentSelect = `
        SELECT d.id, d.name, d.administration_id, d.created_at, d.updated_at,
               a.id, a.name, a.created_at, a.updated_at
        FROM departments d
        JOIN administrations a ON a.id = d.administration_id`

func scanDepartment(row pgx.Row) (*domain.Department, error) {
	var dept domain.Department
	var admin domain.Administration
	if err := row.Scan(
		&dept.ID,
		&dept.Name,
		&dept.AdministrationID,
		&dept.CreatedAt,
		&dept.UpdatedAt,
		&admin.ID,
		&admin.Name,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	); err != nil {
		return nil, err
	}
	dept.Administration = &admin
	return &dept, nil
}

func (r *departmentRepository) GetByID(ctx context.Context, id string) (*domain.Department, error) {
	const query = departmentSelect + ` WHERE d.id=$1`
	return scanDepartment(querierFor(ctx, r.pool).QueryRow(ctx, query, id))
}

func (r *departmentRepository) GetByName(ctx context.Context, name string) (*domain.Department, error) {
	const query = departmentSelect + ` WHERE d.name=$1`
	return scanDepartment(querierFor(ctx, r.pool).QueryRow(ctx, query, name))
}

// ExistsByNameFold reports whether a department with the given name exists,
// compared case-insensitively.
func (r *departmentRepository) ExistsByNameFold(ctx context.Context, name string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM departments WHERE LOWER(name)=LOWER($1))`

	var exists bool
	if err := querierFor(ctx, r.pool).QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *departmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	const query = departmentSelect + ` ORDER BY d.name`

	rows, err := querierFor(ctx, r.pool).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Department
	for rows.Next() {
		dept, err := scanDepartment(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *dept)
	}
	return result, rows.Err()
}
