package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"

	"github.com/spec-kit/user-directory-service/internal/api/dto"
	"github.com/spec-kit/user-directory-service/internal/domain"
)

var (
	phonePattern = regexp.MustCompile(`^[0-9]{8}$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	// Letters of any script, spaces and hyphens.
	adminNamePattern = regexp.MustCompile(`^[\p{L}\s-]+$`)
)

// Validator performs field-level constraint checks on request payloads. It is
// stateless; business-rule checks against the store (uniqueness, existence)
// live in the service layer where the transaction boundary is.
type Validator struct{}

// NewValidator constructs a Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateUserRequest runs every field-level check on a create/update payload
// and returns all violations together rather than stopping at the first.
func (v *Validator) ValidateUserRequest(req dto.UserRequest) []string {
	var violations []string

	if req.Username != "" {
		violations = append(violations, checkLength(req.Username, 3, 50, MsgUsernameTooShort, MsgUsernameTooLong)...)
	}

	violations = append(violations, checkRequiredLength(req.FirstName, 2, 50,
		MsgFirstNameRequired, MsgFirstNameTooShort, MsgFirstNameTooLong)...)
	violations = append(violations, checkRequiredLength(req.LastName, 2, 100,
		MsgLastNameRequired, MsgLastNameTooShort, MsgLastNameTooLong)...)

	if strings.TrimSpace(req.Role) == "" {
		violations = append(violations, MsgRoleRequired)
	} else if _, ok := domain.ParseRole(req.Role); !ok {
		violations = append(violations, MsgRoleInvalid)
	}

	violations = append(violations, checkID(req.AdministrationID, MsgAdministrationIDRequired)...)
	violations = append(violations, checkID(req.DepartmentID, MsgDepartmentIDRequired)...)

	if strings.TrimSpace(req.PhoneNumber) == "" {
		violations = append(violations, MsgPhoneNumberRequired)
	} else if !phonePattern.MatchString(req.PhoneNumber) {
		violations = append(violations, MsgPhoneNumberInvalid)
	}

	if strings.TrimSpace(req.Email) == "" {
		violations = append(violations, MsgEmailRequired)
	} else if !emailPattern.MatchString(req.Email) {
		violations = append(violations, MsgEmailInvalid)
	}

	violations = append(violations, checkRequiredLength(req.Address, 10, 200,
		MsgAddressRequired, MsgAddressTooShort, MsgAddressTooLong)...)

	if strings.TrimSpace(req.BirthDate) == "" {
		violations = append(violations, MsgBirthDateRequired)
	} else if birthDate, err := req.ParsedBirthDate(); err != nil || !birthDate.Before(time.Now()) {
		violations = append(violations, MsgBirthDateInvalid)
	}

	violations = append(violations, checkRequiredLength(req.BirthPlace, 3, 100,
		MsgBirthPlaceRequired, MsgBirthPlaceTooShort, MsgBirthPlaceTooLong)...)
	violations = append(violations, checkRequiredLength(req.Position, 2, 100,
		MsgPositionRequired, MsgPositionTooShort, MsgPositionTooLong)...)
	violations = append(violations, checkRequiredLength(req.MaritalStatus, 2, 50,
		MsgMaritalStatusRequired, MsgMaritalStatusTooShort, MsgMaritalStatusTooLong)...)
	violations = append(violations, checkRequiredLength(req.MatriculeNumber, 5, 20,
		MsgMatriculeRequired, MsgMatriculeTooShort, MsgMatriculeTooLong)...)

	return violations
}

// ValidateAdministrationRequest checks the administration name constraints.
func (v *Validator) ValidateAdministrationRequest(req dto.AdministrationRequest) []string {
	var violations []string

	if strings.TrimSpace(req.Name) == "" {
		return append(violations, MsgAdministrationNameRequired)
	}
	violations = append(violations, checkLength(req.Name, 2, 100,
		MsgAdministrationNameTooShort, MsgAdministrationNameTooLong)...)
	if !adminNamePattern.MatchString(req.Name) {
		violations = append(violations, MsgAdministrationNameInvalid)
	}
	return violations
}

// ValidateDepartmentRequest checks department name and administration
// reference constraints.
func (v *Validator) ValidateDepartmentRequest(req dto.DepartmentRequest) []string {
	var violations []string

	violations = append(violations, checkRequiredLength(req.Name, 2, 100,
		MsgDepartmentNameRequired, MsgDepartmentNameTooShort, MsgDepartmentNameTooLong)...)
	violations = append(violations, checkID(req.AdministrationID, MsgAdministrationIDRequired)...)
	return violations
}

// ValidateCredentialsUpdate checks the credential-change payload. The new
// password must carry at least one uppercase letter, one lowercase letter and
// one digit.
func (v *Validator) ValidateCredentialsUpdate(req dto.CredentialsUpdateRequest) []string {
	var violations []string

	if req.OldPassword == "" {
		violations = append(violations, MsgOldPasswordRequired)
	}

	if strings.TrimSpace(req.NewUsername) == "" {
		violations = append(violations, MsgUsernameRequired)
	} else {
		violations = append(violations, checkLength(req.NewUsername, 3, 50, MsgUsernameTooShort, MsgUsernameTooLong)...)
	}

	switch {
	case req.NewPassword == "":
		violations = append(violations, MsgPasswordRequired)
	case len(req.NewPassword) < 8:
		violations = append(violations, MsgPasswordTooShort)
	case len(req.NewPassword) > 100:
		violations = append(violations, MsgPasswordTooLong)
	case !isStrongPassword(req.NewPassword):
		violations = append(violations, MsgPasswordWeak)
	}

	return violations
}

// isStrongPassword reports whether the password mixes upper case, lower case
// and digits.
func isStrongPassword(password string) bool {
	var upper, lower, digit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

func checkRequiredLength(value string, min, max int, requiredMsg, shortMsg, longMsg string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{requiredMsg}
	}
	return checkLength(value, min, max, shortMsg, longMsg)
}

func checkLength(value string, min, max int, shortMsg, longMsg string) []string {
	length := len([]rune(value))
	switch {
	case length < min:
		return []string{shortMsg}
	case length > max:
		return []string{longMsg}
	default:
		return nil
	}
}

func checkID(value, requiredMsg string) []string {
	if strings.TrimSpace(value) == "" {
		return []string{requiredMsg}
	}
	if _, err := uuid.Parse(value); err != nil {
		return []string{MsgIDInvalid}
	}
	return nil
}
