package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/user-directory-service/internal/api/dto"
	"github.com/spec-kit/user-directory-service/internal/domain"
	"github.com/spec-kit/user-directory-service/internal/repository"
	"github.com/spec-kit/user-directory-service/internal/validation"
	apperrors "github.com/spec-kit/user-directory-service/pkg/util"
)

// AdministrationService manages the administration catalog.
type AdministrationService struct {
	administrations repository.AdministrationRepository
	validator       *validation.Validator
}

// NewAdministrationService constructs the service.
func NewAdministrationService(repo repository.AdministrationRepository, validator *validation.Validator) *AdministrationService {
	return &AdministrationService{administrations: repo, validator: validator}
}

// CreateAdministration validates and inserts a new administration. Name
// uniqueness is enforced by the database constraint.
func (s *AdministrationService) CreateAdministration(ctx context.Context, req dto.AdministrationRequest) (dto.AdministrationResponse, error) {
	if violations := s.validator.ValidateAdministrationRequest(req); len(violations) > 0 {
		return dto.AdministrationResponse{}, apperrors.NewValidationError(violations...)
	}

	admin := &domain.Administration{Name: req.Name}
	if err := s.administrations.Create(ctx, admin); err != nil {
		return dto.AdministrationResponse{}, mapAdministrationError(err)
	}
	return dto.NewAdministrationResponse(admin), nil
}

// UpdateAdministration renames an existing administration.
func (s *AdministrationService) UpdateAdministration(ctx context.Context, id string, req dto.AdministrationRequest) (dto.AdministrationResponse, error) {
	if violations := s.validator.ValidateAdministrationRequest(req); len(violations) > 0 {
		return dto.AdministrationResponse{}, apperrors.NewValidationError(violations...)
	}

	admin, err := s.administrations.GetByID(ctx, id)
	if err != nil {
		return dto.AdministrationResponse{}, administrationNotFound(err)
	}
	admin.Name = req.Name
	if err := s.administrations.Update(ctx, admin); err != nil {
		return dto.AdministrationResponse{}, mapAdministrationError(err)
	}
	return dto.NewAdministrationResponse(admin), nil
}

// DeleteAdministration removes an administration. Departments cascade away
// with it; a remaining user reference surfaces as a conflict.
func (s *AdministrationService) DeleteAdministration(ctx context.Context, id string) error {
	if err := s.administrations.Delete(ctx, id); err != nil {
		return administrationNotFound(err)
	}
	return nil
}

// GetAdministrationByID fetches a single administration.
func (s *AdministrationService) GetAdministrationByID(ctx context.Context, id string) (dto.AdministrationResponse, error) {
	admin, err := s.administrations.GetByID(ctx, id)
	if err != nil {
		return dto.AdministrationResponse{}, administrationNotFound(err)
	}
	return dto.NewAdministrationResponse(admin), nil
}

// GetAdministrationByName fetches an administration by its exact name.
func (s *AdministrationService) GetAdministrationByName(ctx context.Context, name string) (dto.AdministrationResponse, error) {
	admin, err := s.administrations.GetByName(ctx, name)
	if err != nil {
		return dto.AdministrationResponse{}, administrationNotFound(err)
	}
	return dto.NewAdministrationResponse(admin), nil
}

// ListAdministrations returns the full catalog.
func (s *AdministrationService) ListAdministrations(ctx context.Context) ([]dto.AdministrationResponse, error) {
	admins, err := s.administrations.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return dto.NewAdministrationResponses(admins), nil
}

func administrationNotFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound(validation.MsgAdministrationNotFound)
	}
	return apperrors.MapError(err)
}

func mapAdministrationError(err error) error {
	mapped := apperrors.MapError(err)
	var derr *apperrors.DomainError
	if errors.As(mapped, &derr) && derr.Code == apperrors.CodeDuplicateValue {
		return apperrors.NewDuplicateValue(validation.MsgAdministrationNameTaken)
	}
	return mapped
}
