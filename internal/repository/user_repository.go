package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/user-directory-service/internal/domain"
)

// UserRepository handles persistence for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	UpdateCredentials(ctx context.Context, id, username, passwordHash string) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Search(ctx context.Context, filter UserFilter) ([]domain.User, int64, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhoneNumber(ctx context.Context, phone string) (bool, error)
	ExistsByMatriculeNumber(ctx context.Context, matricule string) (bool, error)
}

// UserFilter narrows a user listing. Nil fields impose no constraint; the
// provided ones are combined with logical AND.
type UserFilter struct {
	Name             *string
	AdministrationID *string
	DepartmentID     *string
	Role             *domain.Role
	Limit            int
	Offset           int
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (username, password_hash, first_name, last_name, role,
                           administration_id, department_id, phone_number, email, address,
                           birth_date, birth_place, position, marital_status, matricule_number)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
        RETURNING id, created_at, updated_at`

	return querierFor(ctx, r.pool).QueryRow(ctx, query,
		user.Username,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		user.Role,
		user.Administration.ID,
		user.Department.ID,
		user.PhoneNumber,
		user.Email,
		user.Address,
		user.BirthDate,
		user.BirthPlace,
		user.Position,
		user.MaritalStatus,
		user.MatriculeNumber,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	const query = `
        UPDATE users
        SET first_name=$1, last_name=$2, role=$3, administration_id=$4, department_id=$5,
            phone_number=$6, email=$7, address=$8, birth_date=$9, birth_place=$10,
            position=$11, marital_status=$12, matricule_number=$13, updated_at=NOW()
        WHERE id=$14
        RETURNING updated_at`

	return querierFor(ctx, r.pool).QueryRow(ctx, query,
		user.FirstName,
		user.LastName,
		user.Role,
		user.Administration.ID,
		user.Department.ID,
		user.PhoneNumber,
		user.Email,
		user.Address,
		user.BirthDate,
		user.BirthPlace,
		user.Position,
		user.MaritalStatus,
		user.MatriculeNumber,
		user.ID,
	).Scan(&user.UpdatedAt)
}

func (r *userRepository) UpdateCredentials(ctx context.Context, id, username, passwordHash string) error {
	const query = `
        UPDATE users SET username=$1, password_hash=$2, updated_at=NOW()
        WHERE id=$3`

	cmd, err := querierFor(ctx, r.pool).Exec(ctx, query, username, passwordHash, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM users WHERE id=$1`

	cmd, err := querierFor(ctx, r.pool).Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const userSelect = `
        SELECT u.id, u.username, u.password_hash, u.first_name, u.last_name, u.role,
               u.phone_number, u.email, u.address, u.birth_date, u.birth_place,
               u.position, u.marital_status, u.matricule_number, u.created_at, u.updated_at,
               a.id, a.name, d.id, d.name, d.administration_id
        FROM users u
        JOIN administrations a ON a.id = u.administration_id
        JOIN departments d ON d.id = u.department_id`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	var admin domain.Administration
	var dept domain.Department
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&user.Role,
		&user.PhoneNumber,
		&user.Email,
		&user.Address,
		&user.BirthDate,
		&user.BirthPlace,
		&user.Position,
		&user.MaritalStatus,
		&user.MatriculeNumber,
		&user.CreatedAt,
		&user.UpdatedAt,
		&admin.ID,
		&admin.Name,
		&dept.ID,
		&dept.Name,
		&dept.AdministrationID,
	); err != nil {
		return nil, err
	}
	user.Administration = &admin
	user.Department = &dept
	return &user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = userSelect + ` WHERE u.id=$1`
	return scanUser(querierFor(ctx, r.pool).QueryRow(ctx, query, id))
}

// filterClauses builds the conjunctive WHERE fragment for a UserFilter.
// Absent fields contribute nothing.
func filterClauses(filter UserFilter) (string, []any) {
	args := []any{}
	clauses := []string{}

	if filter.Name != nil && *filter.Name != "" {
		args = append(args, "%"+strings.ToLower(*filter.Name)+"%")
		clauses = append(clauses, fmt.Sprintf("LOWER(u.first_name || ' ' || u.last_name) LIKE $%d", len(args)))
	}
	if filter.AdministrationID != nil {
		args = append(args, *filter.AdministrationID)
		clauses = append(clauses, fmt.Sprintf("u.administration_id=$%d", len(args)))
	}
	if filter.DepartmentID != nil {
		args = append(args, *filter.DepartmentID)
		clauses = append(clauses, fmt.Sprintf("u.department_id=$%d", len(args)))
	}
	if filter.Role != nil {
		args = append(args, *filter.Role)
		clauses = append(clauses, fmt.Sprintf("u.role=$%d", len(args)))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

// Search returns one page of users matching the filter plus the total count
// of matches, ordered by creation time then id so repeated calls page
// consistently.
func (r *userRepository) Search(ctx context.Context, filter UserFilter) ([]domain.User, int64, error) {
	where, args := filterClauses(filter)
	q := querierFor(ctx, r.pool)

	var total int64
	countQuery := `SELECT COUNT(*) FROM users u` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := userSelect + where + " ORDER BY u.created_at, u.id"
	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, *user)
	}
	return result, total, rows.Err()
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE username=$1)`, username)
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email=$1)`, email)
}

func (r *userRepository) ExistsByPhoneNumber(ctx context.Context, phone string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE phone_number=$1)`, phone)
}

func (r *userRepository) ExistsByMatriculeNumber(ctx context.Context, matricule string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE matricule_number=$1)`, matricule)
}

func (r *userRepository) exists(ctx context.Context, query, arg string) (bool, error) {
	var exists bool
	if err := querierFor(ctx, r.pool).QueryRow(ctx, query, arg).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
