package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/user-directory-service/internal/api/dto"
	"github.com/spec-kit/user-directory-service/internal/auth"
	"github.com/spec-kit/user-directory-service/internal/config"
	"github.com/spec-kit/user-directory-service/internal/domain"
	"github.com/spec-kit/user-directory-service/internal/repository"
	"github.com/spec-kit/user-directory-service/internal/validation"
	apperrors "github.com/spec-kit/user-directory-service/pkg/util"
)

const defaultPageSize = 10

// UserService coordinates user lifecycle, credential and search flows.
type UserService struct {
	users           repository.UserRepository
	departments     repository.DepartmentRepository
	administrations repository.AdministrationRepository
	validator       *validation.Validator
	tx              repository.TxRunner
	bcryptCost      int
}

// UserDependencies bundles what the user service needs.
type UserDependencies struct {
	UserRepo           repository.UserRepository
	DepartmentRepo     repository.DepartmentRepository
	AdministrationRepo repository.AdministrationRepository
	Validator          *validation.Validator
	Tx                 repository.TxRunner
}

// UserSearchParams carries the optional search filters plus pagination.
type UserSearchParams struct {
	Name             string
	AdministrationID string
	DepartmentID     string
	Role             string
	Page             int
	Size             int
}

// NewUserService constructs the service.
func NewUserService(cfg config.Config, deps UserDependencies) *UserService {
	return &UserService{
		users:           deps.UserRepo,
		departments:     deps.DepartmentRepo,
		administrations: deps.AdministrationRepo,
		validator:       deps.Validator,
		tx:              deps.Tx,
		bcryptCost:      cfg.Security.BcryptCost,
	}
}

// CreateUser validates the payload, derives a username when none is given,
// assigns a hashed initial password and persists the user. The uniqueness
// probes and the insert share one transaction so concurrent requests cannot
// both pass a check before either commits.
func (s *UserService) CreateUser(ctx context.Context, req dto.UserRequest) (dto.UserResponse, error) {
	if violations := s.validator.ValidateUserRequest(req); len(violations) > 0 {
		return dto.UserResponse{}, apperrors.NewValidationError(violations...)
	}

	var resp dto.UserResponse
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.checkUniqueFields(ctx, req, nil); err != nil {
			return err
		}

		admin, dept, err := s.resolveReferences(ctx, req)
		if err != nil {
			return err
		}

		username := strings.TrimSpace(req.Username)
		if username == "" {
			username, err = s.generateUsername(ctx, req.FirstName, req.LastName)
			if err != nil {
				return err
			}
		} else {
			taken, err := s.users.ExistsByUsername(ctx, username)
			if err != nil {
				return err
			}
			if taken {
				return apperrors.NewDuplicateValue(validation.MsgUsernameTaken)
			}
		}

		hash, err := auth.HashPassword(auth.GenerateInitialPassword(), s.bcryptCost)
		if err != nil {
			return err
		}

		birthDate, err := req.ParsedBirthDate()
		if err != nil {
			return apperrors.NewValidationError(validation.MsgBirthDateInvalid)
		}
		role, _ := domain.ParseRole(req.Role)

		user := &domain.User{
			Username:        username,
			PasswordHash:    hash,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			Role:            role,
			PhoneNumber:     req.PhoneNumber,
			Email:           req.Email,
			Address:         req.Address,
			BirthDate:       birthDate,
			BirthPlace:      req.BirthPlace,
			Position:        req.Position,
			MaritalStatus:   req.MaritalStatus,
			MatriculeNumber: req.MatriculeNumber,
			Administration:  admin,
			Department:      dept,
		}
		if err := s.users.Create(ctx, user); err != nil {
			return err
		}
		resp = dto.NewUserResponse(user)
		return nil
	})
	if err != nil {
		return dto.UserResponse{}, apperrors.MapError(err)
	}
	return resp, nil
}

// UpdateUser fully replaces the mutable profile fields of an existing user.
// Username and password are untouched; those change through
// UpdateCredentials only.
func (s *UserService) UpdateUser(ctx context.Context, id string, req dto.UserRequest) (dto.UserResponse, error) {
	if violations := s.validator.ValidateUserRequest(req); len(violations) > 0 {
		return dto.UserResponse{}, apperrors.NewValidationError(violations...)
	}

	var resp dto.UserResponse
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		user, err := s.users.GetByID(ctx, id)
		if err != nil {
			return userNotFound(err)
		}

		if err := s.checkUniqueFields(ctx, req, user); err != nil {
			return err
		}

		admin, dept, err := s.resolveReferences(ctx, req)
		if err != nil {
			return err
		}

		birthDate, err := req.ParsedBirthDate()
		if err != nil {
			return apperrors.NewValidationError(validation.MsgBirthDateInvalid)
		}
		role, _ := domain.ParseRole(req.Role)

		user.FirstName = req.FirstName
		user.LastName = req.LastName
		user.Role = role
		user.PhoneNumber = req.PhoneNumber
		user.Email = req.Email
		user.Address = req.Address
		user.BirthDate = birthDate
		user.BirthPlace = req.BirthPlace
		user.Position = req.Position
		user.MaritalStatus = req.MaritalStatus
		user.MatriculeNumber = req.MatriculeNumber
		user.Administration = admin
		user.Department = dept

		if err := s.users.Update(ctx, user); err != nil {
			return err
		}
		resp = dto.NewUserResponse(user)
		return nil
	})
	if err != nil {
		return dto.UserResponse{}, apperrors.MapError(err)
	}
	return resp, nil
}

// UpdateCredentials changes a user's username and password after verifying
// the old password. The username uniqueness probe skips the user's own
// current value.
func (s *UserService) UpdateCredentials(ctx context.Context, id string, req dto.CredentialsUpdateRequest) (dto.UserResponse, error) {
	if violations := s.validator.ValidateCredentialsUpdate(req); len(violations) > 0 {
		return dto.UserResponse{}, apperrors.NewValidationError(violations...)
	}

	var resp dto.UserResponse
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		user, err := s.users.GetByID(ctx, id)
		if err != nil {
			return userNotFound(err)
		}

		if err := auth.ComparePassword(user.PasswordHash, req.OldPassword); err != nil {
			return apperrors.NewInvalidCredentials(validation.MsgOldPasswordIncorrect)
		}

		if req.NewUsername != user.Username {
			taken, err := s.users.ExistsByUsername(ctx, req.NewUsername)
			if err != nil {
				return err
			}
			if taken {
				return apperrors.NewDuplicateValue(validation.MsgUsernameTaken)
			}
		}

		hash, err := auth.HashPassword(req.NewPassword, s.bcryptCost)
		if err != nil {
			return err
		}
		if err := s.users.UpdateCredentials(ctx, user.ID, req.NewUsername, hash); err != nil {
			return err
		}

		user.Username = req.NewUsername
		resp = dto.NewUserResponse(user)
		return nil
	})
	if err != nil {
		return dto.UserResponse{}, apperrors.MapError(err)
	}
	return resp, nil
}

// DeleteUser removes a user.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return apperrors.MapError(userNotFound(err))
	}
	return nil
}

// GetUserByID fetches a single user projection.
func (s *UserService) GetUserByID(ctx context.Context, id string) (dto.UserResponse, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return dto.UserResponse{}, apperrors.MapError(userNotFound(err))
	}
	return dto.NewUserResponse(user), nil
}

// ListUsers returns one page of all users.
func (s *UserService) ListUsers(ctx context.Context, page, size int) (dto.Page[dto.UserResponse], error) {
	return s.searchPage(ctx, repository.UserFilter{}, page, size)
}

// ListUsersByAdministration returns one page of the administration's users.
func (s *UserService) ListUsersByAdministration(ctx context.Context, administrationID string, page, size int) (dto.Page[dto.UserResponse], error) {
	return s.searchPage(ctx, repository.UserFilter{AdministrationID: &administrationID}, page, size)
}

// ListUsersByDepartment returns one page of the department's users.
func (s *UserService) ListUsersByDepartment(ctx context.Context, departmentID string, page, size int) (dto.Page[dto.UserResponse], error) {
	return s.searchPage(ctx, repository.UserFilter{DepartmentID: &departmentID}, page, size)
}

// SearchUsers narrows the user set by the provided filters combined with
// logical AND. An unknown role value is ignored rather than rejected.
func (s *UserService) SearchUsers(ctx context.Context, params UserSearchParams) (dto.Page[dto.UserResponse], error) {
	filter := repository.UserFilter{}
	if params.Name != "" {
		filter.Name = &params.Name
	}
	if params.AdministrationID != "" {
		filter.AdministrationID = &params.AdministrationID
	}
	if params.DepartmentID != "" {
		filter.DepartmentID = &params.DepartmentID
	}
	if params.Role != "" {
		if role, ok := domain.ParseRole(params.Role); ok {
			filter.Role = &role
		}
	}
	return s.searchPage(ctx, filter, params.Page, params.Size)
}

func (s *UserService) searchPage(ctx context.Context, filter repository.UserFilter, page, size int) (dto.Page[dto.UserResponse], error) {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = defaultPageSize
	}
	filter.Limit = size
	filter.Offset = page * size

	users, total, err := s.users.Search(ctx, filter)
	if err != nil {
		return dto.Page[dto.UserResponse]{}, apperrors.MapError(err)
	}
	return dto.NewPage(dto.NewUserResponses(users), page, size, total), nil
}

// checkUniqueFields runs the email, phone and matricule probes. On update a
// field equal to the stored value is exempt from its own check.
func (s *UserService) checkUniqueFields(ctx context.Context, req dto.UserRequest, current *domain.User) error {
	if current == nil || current.Email != req.Email {
		taken, err := s.users.ExistsByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.NewDuplicateValue(validation.MsgEmailTaken)
		}
	}
	if current == nil || current.PhoneNumber != req.PhoneNumber {
		taken, err := s.users.ExistsByPhoneNumber(ctx, req.PhoneNumber)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.NewDuplicateValue(validation.MsgPhoneNumberTaken)
		}
	}
	if current == nil || current.MatriculeNumber != req.MatriculeNumber {
		taken, err := s.users.ExistsByMatriculeNumber(ctx, req.MatriculeNumber)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.NewDuplicateValue(validation.MsgMatriculeTaken)
		}
	}
	return nil
}

// resolveReferences loads the referenced administration and department and
// checks the department actually belongs to that administration.
func (s *UserService) resolveReferences(ctx context.Context, req dto.UserRequest) (*domain.Administration, *domain.Department, error) {
	admin, err := s.administrations.GetByID(ctx, req.AdministrationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewNotFound(validation.MsgAdministrationNotFound)
		}
		return nil, nil, err
	}
	dept, err := s.departments.GetByID(ctx, req.DepartmentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewNotFound(validation.MsgDepartmentNotFound)
		}
		return nil, nil, err
	}
	if dept.AdministrationID != admin.ID {
		return nil, nil, apperrors.NewValidationError(validation.MsgDepartmentNotInAdministration)
	}
	return admin, dept, nil
}

// generateUsername lowercases and concatenates the name parts with whitespace
// stripped, then appends an incrementing suffix until the candidate is free.
// The result is held to the same 3-50 bound as a client-supplied username;
// long name pairs surface as a validation error rather than a storage fault.
func (s *UserService) generateUsername(ctx context.Context, firstName, lastName string) (string, error) {
	base := strings.ToLower(firstName + lastName)
	base = strings.Join(strings.Fields(base), "")

	candidate := base
	for counter := 1; ; counter++ {
		if length := len([]rune(candidate)); length < 3 {
			return "", apperrors.NewValidationError(validation.MsgUsernameTooShort)
		} else if length > 50 {
			return "", apperrors.NewValidationError(validation.MsgUsernameTooLong)
		}
		taken, err := s.users.ExistsByUsername(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, counter)
	}
}

func userNotFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound(validation.MsgUserNotFound)
	}
	return err
}
