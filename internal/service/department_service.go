package service

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/user-directory-service/internal/api/dto"
	"github.com/spec-kit/user-directory-service/internal/domain"
	"github.com/spec-kit/user-directory-service/internal/repository"
	"github.com/spec-kit/user-directory-service/internal/validation"
	apperrors "github.com/spec-kit/user-directory-service/pkg/util"
)

// DepartmentService manages departments and their administration relation.
type DepartmentService struct {
	departments     repository.DepartmentRepository
	administrations repository.AdministrationRepository
	validator       *validation.Validator
	tx              repository.TxRunner
}

// NewDepartmentService constructs the service.
func NewDepartmentService(departments repository.DepartmentRepository, administrations repository.AdministrationRepository, validator *validation.Validator, tx repository.TxRunner) *DepartmentService {
	return &DepartmentService{
		departments:     departments,
		administrations: administrations,
		validator:       validator,
		tx:              tx,
	}
}

// CreateDepartment validates the payload, resolves the administration and
// inserts the department. The name must be free case-insensitively; the probe
// and the insert run in one transaction.
func (s *DepartmentService) CreateDepartment(ctx context.Context, req dto.DepartmentRequest) (dto.DepartmentResponse, error) {
	if violations := s.validator.ValidateDepartmentRequest(req); len(violations) > 0 {
		return dto.DepartmentResponse{}, apperrors.NewValidationError(violations...)
	}

	var resp dto.DepartmentResponse
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		taken, err := s.departments.ExistsByNameFold(ctx, req.Name)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.NewDuplicateValue(validation.MsgDepartmentNameTaken)
		}

		admin, err := s.administrations.GetByID(ctx, req.AdministrationID)
		if err != nil {
			return administrationNotFound(err)
		}

		dept := &domain.Department{
			Name:             req.Name,
			AdministrationID: admin.ID,
			Administration:   admin,
		}
		if err := s.departments.Create(ctx, dept); err != nil {
			return err
		}
		resp = dto.NewDepartmentResponse(dept)
		return nil
	})
	if err != nil {
		return dto.DepartmentResponse{}, apperrors.MapError(err)
	}
	return resp, nil
}

// UpdateDepartment renames a department or moves it to another
// administration. A rename to a name another department already holds is
// rejected; keeping the current name is fine.
func (s *DepartmentService) UpdateDepartment(ctx context.Context, id string, req dto.DepartmentRequest) (dto.DepartmentResponse, error) {
	if violations := s.validator.ValidateDepartmentRequest(req); len(violations) > 0 {
		return dto.DepartmentResponse{}, apperrors.NewValidationError(violations...)
	}

	var resp dto.DepartmentResponse
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		dept, err := s.departments.GetByID(ctx, id)
		if err != nil {
			return departmentNotFound(err)
		}

		if !strings.EqualFold(dept.Name, req.Name) {
			taken, err := s.departments.ExistsByNameFold(ctx, req.Name)
			if err != nil {
				return err
			}
			if taken {
				return apperrors.NewDuplicateValue(validation.MsgDepartmentNameTaken)
			}
		}

		admin, err := s.administrations.GetByID(ctx, req.AdministrationID)
		if err != nil {
			return administrationNotFound(err)
		}

		dept.Name = req.Name
		dept.AdministrationID = admin.ID
		dept.Administration = admin
		if err := s.departments.Update(ctx, dept); err != nil {
			return err
		}
		resp = dto.NewDepartmentResponse(dept)
		return nil
	})
	if err != nil {
		return dto.DepartmentResponse{}, apperrors.MapError(err)
	}
	return resp, nil
}

// DeleteDepartment removes a department. A remaining user reference surfaces
// as a conflict.
func (s *DepartmentService) DeleteDepartment(ctx context.Context, id string) error {
	if err := s.departments.Delete(ctx, id); err != nil {
		return departmentNotFound(err)
	}
	return nil
}

// GetDepartmentByID fetches a single department.
func (s *DepartmentService) GetDepartmentByID(ctx context.Context, id string) (dto.DepartmentResponse, error) {
	dept, err := s.departments.GetByID(ctx, id)
	if err != nil {
		return dto.DepartmentResponse{}, departmentNotFound(err)
	}
	return dto.NewDepartmentResponse(dept), nil
}

// GetDepartmentByName fetches a department by its exact name.
func (s *DepartmentService) GetDepartmentByName(ctx context.Context, name string) (dto.DepartmentResponse, error) {
	dept, err := s.departments.GetByName(ctx, name)
	if err != nil {
		return dto.DepartmentResponse{}, departmentNotFound(err)
	}
	return dto.NewDepartmentResponse(dept), nil
}

// ListDepartments returns all departments with their administrations.
func (s *DepartmentService) ListDepartments(ctx context.Context) ([]dto.DepartmentResponse, error) {
	depts, err := s.departments.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return dto.NewDepartmentResponses(depts), nil
}

func departmentNotFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound(validation.MsgDepartmentNotFound)
	}
	return apperrors.MapError(err)
}
