package dto

import (
	"time"

	"github.com/spec-kit/user-directory-service/internal/domain"
)

// DepartmentRequest is the payload for creating or updating a department.
// The administration is a required relation.
type DepartmentRequest struct {
	Name             string `json:"name"`
	AdministrationID string `json:"administration_id"`
}

// DepartmentResponse is the projection of a department with its
// administration flattened to an {id, name} pair.
type DepartmentResponse struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Administration *EntityRef `json:"administration,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewDepartmentResponse maps a department entity to its projection.
func NewDepartmentResponse(dept *domain.Department) DepartmentResponse {
	resp := DepartmentResponse{
		ID:        dept.ID,
		Name:      dept.Name,
		CreatedAt: dept.CreatedAt,
		UpdatedAt: dept.UpdatedAt,
	}
	if dept.Administration != nil {
		resp.Administration = &EntityRef{ID: dept.Administration.ID, Name: dept.Administration.Name}
	}
	return resp
}

// NewDepartmentResponses maps a slice of department entities.
func NewDepartmentResponses(depts []domain.Department) []DepartmentResponse {
	result := make([]DepartmentResponse, 0, len(depts))
	for i := range depts {
		result = append(result, NewDepartmentResponse(&depts[i]))
	}
	return result
}
