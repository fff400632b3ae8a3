package domain

import (
	"strings"
	"time"
)

// Role enumerates the access levels a user can hold.
type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleUser    Role = "USER"
)

// ParseRole resolves a case-insensitive role string. The boolean reports
// whether the value named a known role.
func ParseRole(value string) (Role, bool) {
	switch Role(strings.ToUpper(strings.TrimSpace(value))) {
	case RoleAdmin:
		return RoleAdmin, true
	case RoleManager:
		return RoleManager, true
	case RoleUser:
		return RoleUser, true
	default:
		return "", false
	}
}

// User is the personnel record affiliated with one administration and one
// department. PasswordHash never leaves the service layer.
type User struct {
	ID              string
	Username        string
	PasswordHash    string
	FirstName       string
	LastName        string
	Role            Role
	PhoneNumber     string
	Email           string
	Address         string
	BirthDate       time.Time
	BirthPlace      string
	Position        string
	MaritalStatus   string
	MatriculeNumber string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Administration *Administration
	Department     *Department
}

// FullName joins first and last name the way search matches them.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
