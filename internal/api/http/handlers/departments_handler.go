package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/user-directory-service/internal/api/dto"
	"github.com/spec-kit/user-directory-service/internal/service"
	apperrors "github.com/spec-kit/user-directory-service/pkg/util"
)

// DepartmentsHandler exposes the department catalog endpoints.
type DepartmentsHandler struct {
	departments *service.DepartmentService
}

// NewDepartmentsHandler constructs handler.
func NewDepartmentsHandler(departments *service.DepartmentService) *DepartmentsHandler {
	return &DepartmentsHandler{departments: departments}
}

// Create handles POST /api/departments.
func (h *DepartmentsHandler) Create(c *fiber.Ctx) error {
	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}

	resp, err := h.departments.CreateDepartment(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(resp)
}

// Update handles PUT /api/departments/:id.
func (h *DepartmentsHandler) Update(c *fiber.Ctx) error {
	var req dto.DepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}

	resp, err := h.departments.UpdateDepartment(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Delete handles DELETE /api/departments/:id.
func (h *DepartmentsHandler) Delete(c *fiber.Ctx) error {
	if err := h.departments.DeleteDepartment(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// GetByID handles GET /api/departments/:id.
func (h *DepartmentsHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.departments.GetDepartmentByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SearchByName handles GET /api/departments/searchByName.
func (h *DepartmentsHandler) SearchByName(c *fiber.Ctx) error {
	resp, err := h.departments.GetDepartmentByName(c.UserContext(), c.Query("name"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// List handles GET /api/departments.
func (h *DepartmentsHandler) List(c *fiber.Ctx) error {
	resp, err := h.departments.ListDepartments(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
