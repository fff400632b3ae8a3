package dto

import (
	"time"

	"github.com/spec-kit/user-directory-service/internal/domain"
)

// AdministrationRequest is the payload for creating or renaming an
// administration.
type AdministrationRequest struct {
	Name string `json:"name"`
}

// AdministrationResponse is the projection of an administration.
type AdministrationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAdministrationResponse maps an administration entity to its projection.
func NewAdministrationResponse(admin *domain.Administration) AdministrationResponse {
	return AdministrationResponse{
		ID:        admin.ID,
		Name:      admin.Name,
		CreatedAt: admin.CreatedAt,
		UpdatedAt: admin.UpdatedAt,
	}
}

// NewAdministrationResponses maps a slice of administration entities.
func NewAdministrationResponses(admins []domain.Administration) []AdministrationResponse {
	result := make([]AdministrationResponse, 0, len(admins))
	for i := range admins {
		result = append(result, NewAdministrationResponse(&admins[i]))
	}
	return result
}
