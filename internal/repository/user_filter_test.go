package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/user-directory-service/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestFilterClausesEmpty(t *testing.T) {
	where, args := filterClauses(UserFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestFilterClausesSingleField(t *testing.T) {
	where, args := filterClauses(UserFilter{Name: strPtr("John Doe")})
	assert.Equal(t, " WHERE LOWER(u.first_name || ' ' || u.last_name) LIKE $1", where)
	assert.Equal(t, []any{"%john doe%"}, args)
}

func TestFilterClausesBlankNameIgnored(t *testing.T) {
	where, args := filterClauses(UserFilter{Name: strPtr("")})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestFilterClausesCombineWithAnd(t *testing.T) {
	role := domain.RoleManager
	where, args := filterClauses(UserFilter{
		Name:             strPtr("Jane"),
		AdministrationID: strPtr("adm-1"),
		DepartmentID:     strPtr("dep-1"),
		Role:             &role,
	})
	assert.Equal(t,
		" WHERE LOWER(u.first_name || ' ' || u.last_name) LIKE $1"+
			" AND u.administration_id=$2 AND u.department_id=$3 AND u.role=$4",
		where)
	assert.Equal(t, []any{"%jane%", "adm-1", "dep-1", domain.RoleManager}, args)
}

func TestFilterClausesPlaceholdersStaySequential(t *testing.T) {
	role := domain.RoleUser
	where, args := filterClauses(UserFilter{
		DepartmentID: strPtr("dep-9"),
		Role:         &role,
	})
	assert.Equal(t, " WHERE u.department_id=$1 AND u.role=$2", where)
	assert.Len(t, args, 2)
}
