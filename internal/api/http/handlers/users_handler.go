package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/user-directory-service/internal/api/dto"
	"github.com/spec-kit/user-directory-service/internal/service"
	apperrors "github.com/spec-kit/user-directory-service/pkg/util"
)

// UsersHandler exposes the user CRUD, credential and search endpoints.
type UsersHandler struct {
	users *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(users *service.UserService) *UsersHandler {
	return &UsersHandler{users: users}
}

// Create handles POST /api/users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	var req dto.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}

	resp, err := h.users.CreateUser(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(resp)
}

// Update handles PUT /api/users/:id.
func (h *UsersHandler) Update(c *fiber.Ctx) error {
	var req dto.UserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}

	resp, err := h.users.UpdateUser(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateCredentials handles PUT /api/users/:id/credentials.
func (h *UsersHandler) UpdateCredentials(c *fiber.Ctx) error {
	var req dto.CredentialsUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}

	resp, err := h.users.UpdateCredentials(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Delete handles DELETE /api/users/:id.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	if err := h.users.DeleteUser(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// GetByID handles GET /api/users/:id.
func (h *UsersHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.users.GetUserByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// List handles GET /api/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	page, err := h.users.ListUsers(c.UserContext(), c.QueryInt("page", 0), c.QueryInt("size", 10))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// ListByAdministration handles GET /api/users/administration/:administrationId.
func (h *UsersHandler) ListByAdministration(c *fiber.Ctx) error {
	page, err := h.users.ListUsersByAdministration(c.UserContext(), c.Params("administrationId"), c.QueryInt("page", 0), c.QueryInt("size", 10))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// ListByDepartment handles GET /api/users/department/:departmentId.
func (h *UsersHandler) ListByDepartment(c *fiber.Ctx) error {
	page, err := h.users.ListUsersByDepartment(c.UserContext(), c.Params("departmentId"), c.QueryInt("page", 0), c.QueryInt("size", 10))
	if err != nil {
		return err
	}
	return c.JSON(page)
}

// Search handles GET /api/users/search. Filters combine with AND; an
// unrecognized role is ignored.
func (h *UsersHandler) Search(c *fiber.Ctx) error {
	params := service.UserSearchParams{
		Name:             c.Query("username"),
		AdministrationID: c.Query("administrationId"),
		DepartmentID:     c.Query("departmentId"),
		Role:             c.Query("role"),
		Page:             c.QueryInt("page", 0),
		Size:             c.QueryInt("size", 10),
	}

	page, err := h.users.SearchUsers(c.UserContext(), params)
	if err != nil {
		return err
	}
	return c.JSON(page)
}
