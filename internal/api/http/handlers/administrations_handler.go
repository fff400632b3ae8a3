package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/user-directory-service/internal/api/dto"
	"github.com/spec-kit/user-directory-service/internal/service"
	apperrors "github.com/spec-kit/user-directory-service/pkg/util"
)

// AdministrationsHandler exposes the administration catalog endpoints.
type AdministrationsHandler struct {
	administrations *service.AdministrationService
}

// NewAdministrationsHandler constructs handler.
func NewAdministrationsHandler(administrations *service.AdministrationService) *AdministrationsHandler {
	return &AdministrationsHandler{administrations: administrations}
}

// Create handles POST /api/administrations.
func (h *AdministrationsHandler) Create(c *fiber.Ctx) error {
	var req dto.AdministrationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}

	resp, err := h.administrations.CreateAdministration(c.UserContext(), req)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(resp)
}

// Update handles PUT /api/administrations/:id.
func (h *AdministrationsHandler) Update(c *fiber.Ctx) error {
	var req dto.AdministrationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid request body")
	}

	resp, err := h.administrations.UpdateAdministration(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Delete handles DELETE /api/administrations/:id.
func (h *AdministrationsHandler) Delete(c *fiber.Ctx) error {
	if err := h.administrations.DeleteAdministration(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// GetByID handles GET /api/administrations/:id.
func (h *AdministrationsHandler) GetByID(c *fiber.Ctx) error {
	resp, err := h.administrations.GetAdministrationByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SearchByName handles GET /api/administrations/searchByName.
func (h *AdministrationsHandler) SearchByName(c *fiber.Ctx) error {
	resp, err := h.administrations.GetAdministrationByName(c.UserContext(), c.Query("name"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// List handles GET /api/administrations.
func (h *AdministrationsHandler) List(c *fiber.Ctx) error {
	resp, err := h.administrations.ListAdministrations(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
