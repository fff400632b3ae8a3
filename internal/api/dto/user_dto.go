package dto

import (
	"time"

	"github.com/spec-kit/user-directory-service/internal/domain"
)

// dateLayout is the wire format for birth dates.
const dateLayout = "2006-01-02"

// UserRequest is the payload for creating or fully replacing a user.
// Username is optional on create; when absent the service derives one.
type UserRequest struct {
	Username         string `json:"username,omitempty"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Role             string `json:"role"`
	AdministrationID string `json:"administration_id"`
	DepartmentID     string `json:"department_id"`
	PhoneNumber      string `json:"phone_number"`
	Email            string `json:"email"`
	Address          string `json:"address"`
	BirthDate        string `json:"birth_date"`
	BirthPlace       string `json:"birth_place"`
	Position         string `json:"position"`
	MaritalStatus    string `json:"marital_status"`
	MatriculeNumber  string `json:"matricule_number"`
}

// ParsedBirthDate parses the wire-format birth date.
func (r UserRequest) ParsedBirthDate() (time.Time, error) {
	return time.Parse(dateLayout, r.BirthDate)
}

// CredentialsUpdateRequest is the payload for PUT /api/users/{id}/credentials.
// The old password is always verified before any change is applied.
type CredentialsUpdateRequest struct {
	OldPassword string `json:"old_password"`
	NewUsername string `json:"new_username"`
	NewPassword string `json:"new_password"`
}

// EntityRef is the flattened {id, name} view of a related entity.
type EntityRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UserResponse is the projection of a user exposed over the API. It never
// carries the password hash or any other internal-only field.
type UserResponse struct {
	ID              string     `json:"id"`
	Username        string     `json:"username"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Role            string     `json:"role"`
	Administration  *EntityRef `json:"administration,omitempty"`
	Department      *EntityRef `json:"department,omitempty"`
	PhoneNumber     string     `json:"phone_number"`
	Email           string     `json:"email"`
	Address         string     `json:"address"`
	BirthDate       string     `json:"birth_date"`
	BirthPlace      string     `json:"birth_place"`
	Position        string     `json:"position"`
	MaritalStatus   string     `json:"marital_status"`
	MatriculeNumber string     `json:"matricule_number"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// NewUserResponse maps a user entity to its response projection, field by
// field so nothing internal leaks through.
func NewUserResponse(user *domain.User) UserResponse {
	resp := UserResponse{
		ID:              user.ID,
		Username:        user.Username,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		Role:            string(user.Role),
		PhoneNumber:     user.PhoneNumber,
		Email:           user.Email,
		Address:         user.Address,
		BirthDate:       user.BirthDate.Format(dateLayout),
		BirthPlace:      user.BirthPlace,
		Position:        user.Position,
		MaritalStatus:   user.MaritalStatus,
		MatriculeNumber: user.MatriculeNumber,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
	if user.Administration != nil {
		resp.Administration = &EntityRef{ID: user.Administration.ID, Name: user.Administration.Name}
	}
	if user.Department != nil {
		resp.Department = &EntityRef{ID: user.Department.ID, Name: user.Department.Name}
	}
	return resp
}

// NewUserResponses maps a slice of user entities.
func NewUserResponses(users []domain.User) []UserResponse {
	result := make([]UserResponse, 0, len(users))
	for i := range users {
		result = append(result, NewUserResponse(&users[i]))
	}
	return result
}
