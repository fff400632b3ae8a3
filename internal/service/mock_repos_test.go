package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/user-directory-service/internal/domain"
	"github.com/spec-kit/user-directory-service/internal/repository"
)

func duplicateKeyErr() error {
	return &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}
}

func equalFold(a, b string) bool {
	return strings.EqualFold(a, b)
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// passthroughTx runs the function directly; the in-memory repos have no
// transaction semantics to honor.
type passthroughTx struct{}

func (passthroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// mock AdministrationRepository

type mockAdministrationRepo struct {
	admins map[string]*domain.Administration
}

func newMockAdministrationRepo() *mockAdministrationRepo {
	return &mockAdministrationRepo{admins: make(map[string]*domain.Administration)}
}

func (m *mockAdministrationRepo) Create(_ context.Context, admin *domain.Administration) error {
	for _, a := range m.admins {
		if a.Name == admin.Name {
			return duplicateKeyErr()
		}
	}
	admin.ID = uuid.NewString()
	admin.CreatedAt = time.Now()
	admin.UpdatedAt = admin.CreatedAt
	stored := *admin
	m.admins[admin.ID] = &stored
	return nil
}

func (m *mockAdministrationRepo) Update(_ context.Context, admin *domain.Administration) error {
	if _, ok := m.admins[admin.ID]; !ok {
		return pgx.ErrNoRows
	}
	for _, a := range m.admins {
		if a.ID != admin.ID && a.Name == admin.Name {
			return duplicateKeyErr()
		}
	}
	admin.UpdatedAt = time.Now()
	stored := *admin
	m.admins[admin.ID] = &stored
	return nil
}

func (m *mockAdministrationRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.admins[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.admins, id)
	return nil
}

func (m *mockAdministrationRepo) GetByID(_ context.Context, id string) (*domain.Administration, error) {
	if a, ok := m.admins[id]; ok {
		copied := *a
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (m *mockAdministrationRepo) GetByName(_ context.Context, name string) (*domain.Administration, error) {
	for _, a := range m.admins {
		if a.Name == name {
			copied := *a
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *mockAdministrationRepo) List(_ context.Context) ([]domain.Administration, error) {
	result := make([]domain.Administration, 0, len(m.admins))
	for _, a := range m.admins {
		result = append(result, *a)
	}
	return result, nil
}

// mock DepartmentRepository

type mockDepartmentRepo struct {
	depts map[string]*domain.Department
}

func newMockDepartmentRepo() *mockDepartmentRepo {
	return &mockDepartmentRepo{depts: make(map[string]*domain.Department)}
}

func (m *mockDepartmentRepo) Create(_ context.Context, dept *domain.Department) error {
	dept.ID = uuid.NewString()
	dept.CreatedAt = time.Now()
	dept.UpdatedAt = dept.CreatedAt
	stored := *dept
	m.depts[dept.ID] = &stored
	return nil
}

func (m *mockDepartmentRepo) Update(_ context.Context, dept *domain.Department) error {
	if _, ok := m.depts[dept.ID]; !ok {
		return pgx.ErrNoRows
	}
	dept.UpdatedAt = time.Now()
	stored := *dept
	m.depts[dept.ID] = &stored
	return nil
}

func (m *mockDepartmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.depts[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.depts, id)
	return nil
}

func (m *mockDepartmentRepo) GetByID(_ context.Context, id string) (*domain.Department, error) {
	if d, ok := m.depts[id]; ok {
		copied := *d
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (m *mockDepartmentRepo) GetByName(_ context.Context, name string) (*domain.Department, error) {
	for _, d := range m.depts {
		if d.Name == name {
			copied := *d
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (m *mockDepartmentRepo) ExistsByNameFold(_ context.Context, name string) (bool, error) {
	for _, d := range m.depts {
		if equalFold(d.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockDepartmentRepo) List(_ context.Context) ([]domain.Department, error) {
	result := make([]domain.Department, 0, len(m.depts))
	for _, d := range m.depts {
		result = append(result, *d)
	}
	return result, nil
}

// mock UserRepository

type mockUserRepo struct {
	users map[string]*domain.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*domain.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *mockUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := m.users[user.ID]; !ok {
		return pgx.ErrNoRows
	}
	user.UpdatedAt = time.Now()
	stored := *user
	m.users[user.ID] = &stored
	return nil
}

func (m *mockUserRepo) UpdateCredentials(_ context.Context, id, username, passwordHash string) error {
	u, ok := m.users[id]
	if !ok {
		return pgx.ErrNoRows
	}
	u.Username = username
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	return nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.users[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := m.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (m *mockUserRepo) Search(_ context.Context, filter repository.UserFilter) ([]domain.User, int64, error) {
	var matched []domain.User
	for _, u := range m.users {
		if filter.Name != nil && !containsFold(u.FullName(), *filter.Name) {
			continue
		}
		if filter.AdministrationID != nil && (u.Administration == nil || u.Administration.ID != *filter.AdministrationID) {
			continue
		}
		if filter.DepartmentID != nil && (u.Department == nil || u.Department.ID != *filter.DepartmentID) {
			continue
		}
		if filter.Role != nil && u.Role != *filter.Role {
			continue
		}
		matched = append(matched, *u)
	}

	total := int64(len(matched))
	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := filter.Offset
	if offset > len(matched) {
		offset = len(matched)
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (m *mockUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	for _, u := range m.users {
		if u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range m.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) ExistsByPhoneNumber(_ context.Context, phone string) (bool, error) {
	for _, u := range m.users {
		if u.PhoneNumber == phone {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockUserRepo) ExistsByMatriculeNumber(_ context.Context, matricule string) (bool, error) {
	for _, u := range m.users {
		if u.MatriculeNumber == matricule {
			return true, nil
		}
	}
	return false, nil
}
