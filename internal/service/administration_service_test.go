package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/user-directory-service/internal/api/dto"
	"github.com/spec-kit/user-directory-service/internal/validation"
	apperrors "github.com/spec-kit/user-directory-service/pkg/util"
)

func newAdministrationService() (*AdministrationService, *mockAdministrationRepo) {
	repo := newMockAdministrationRepo()
	return NewAdministrationService(repo, validation.NewValidator()), repo
}

func TestCreateAdministration(t *testing.T) {
	svc, _ := newAdministrationService()

	resp, err := svc.CreateAdministration(context.Background(), dto.AdministrationRequest{Name: "Ministry of Finance"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Ministry of Finance", resp.Name)
}

func TestCreateAdministrationValidatesName(t *testing.T) {
	svc, _ := newAdministrationService()

	tests := []struct {
		name    string
		payload string
		want    string
	}{
		{"empty", "", validation.MsgAdministrationNameRequired},
		{"too short", "A", validation.MsgAdministrationNameTooShort},
		{"digits rejected", "Finance 2", validation.MsgAdministrationNameInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateAdministration(context.Background(), dto.AdministrationRequest{Name: tt.payload})
			derr := domainErr(t, err)
			assert.Equal(t, apperrors.CodeValidationFailed, derr.Code)
			assert.Contains(t, derr.Details, tt.want)
		})
	}
}

func TestCreateAdministrationDuplicateName(t *testing.T) {
	svc, _ := newAdministrationService()

	_, err := svc.CreateAdministration(context.Background(), dto.AdministrationRequest{Name: "Ministry of Finance"})
	require.NoError(t, err)

	_, err = svc.CreateAdministration(context.Background(), dto.AdministrationRequest{Name: "Ministry of Finance"})
	derr := domainErr(t, err)
	assert.Equal(t, apperrors.CodeDuplicateValue, derr.Code)
	assert.Equal(t, validation.MsgAdministrationNameTaken, derr.Message)
}

func TestUpdateAdministration(t *testing.T) {
	svc, _ := newAdministrationService()

	created, err := svc.CreateAdministration(context.Background(), dto.AdministrationRequest{Name: "Ministry of Finance"})
	require.NoError(t, err)

	updated, err := svc.UpdateAdministration(context.Background(), created.ID, dto.AdministrationRequest{Name: "Ministry of Economy"})
	require.NoError(t, err)
	assert.Equal(t, "Ministry of Economy", updated.Name)
	assert.Equal(t, created.ID, updated.ID)
}

func TestUpdateAdministrationNotFound(t *testing.T) {
	svc, _ := newAdministrationService()

	_, err := svc.UpdateAdministration(context.Background(), "missing", dto.AdministrationRequest{Name: "Ministry of Economy"})
	derr := domainErr(t, err)
	assert.Equal(t, apperrors.CodeNotFound, derr.Code)
	assert.Equal(t, validation.MsgAdministrationNotFound, derr.Message)
}

func TestDeleteAdministration(t *testing.T) {
	svc, _ := newAdministrationService()

	created, err := svc.CreateAdministration(context.Background(), dto.AdministrationRequest{Name: "Ministry of Finance"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAdministration(context.Background(), created.ID))

	err = svc.DeleteAdministration(context.Background(), created.ID)
	derr := domainErr(t, err)
	assert.Equal(t, apperrors.CodeNotFound, derr.Code)
}

func TestGetAdministrationByName(t *testing.T) {
	svc, _ := newAdministrationService()

	created, err := svc.CreateAdministration(context.Background(), dto.AdministrationRequest{Name: "Ministry of Finance"})
	require.NoError(t, err)

	found, err := svc.GetAdministrationByName(context.Background(), "Ministry of Finance")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = svc.GetAdministrationByName(context.Background(), "Ministry of Silly Walks")
	derr := domainErr(t, err)
	assert.Equal(t, apperrors.CodeNotFound, derr.Code)
}

func TestListAdministrations(t *testing.T) {
	svc, _ := newAdministrationService()

	list, err := svc.ListAdministrations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = svc.CreateAdministration(context.Background(), dto.AdministrationRequest{Name: "Ministry of Finance"})
	require.NoError(t, err)
	_, err = svc.CreateAdministration(context.Background(), dto.AdministrationRequest{Name: "Ministry of Health"})
	require.NoError(t, err)

	list, err = svc.ListAdministrations(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
