package validation

// Message catalog shared by the validators and the service layer. Keeping the
// strings in one place keeps API error bodies consistent across endpoints.
const (
	MsgUsernameRequired = "username is required"
	MsgUsernameTooShort = "username must contain at least 3 characters"
	MsgUsernameTooLong  = "username must not exceed 50 characters"
	MsgUsernameTaken    = "username is already in use"

	MsgPasswordRequired     = "password is required"
	MsgPasswordTooShort     = "password must contain at least 8 characters"
	MsgPasswordTooLong      = "password must not exceed 100 characters"
	MsgPasswordWeak         = "password must contain at least one uppercase letter, one lowercase letter and one digit"
	MsgOldPasswordRequired  = "old password is required"
	MsgOldPasswordIncorrect = "old password is incorrect"

	MsgFirstNameRequired = "first name is required"
	MsgFirstNameTooShort = "first name must contain at least 2 characters"
	MsgFirstNameTooLong  = "first name must not exceed 50 characters"
	MsgLastNameRequired  = "last name is required"
	MsgLastNameTooShort  = "last name must contain at least 2 characters"
	MsgLastNameTooLong   = "last name must not exceed 100 characters"

	MsgRoleRequired = "role is required"
	MsgRoleInvalid  = "role must be one of ADMIN, MANAGER, USER"

	MsgAdministrationIDRequired = "administration id is required"
	MsgDepartmentIDRequired     = "department id is required"
	MsgIDInvalid                = "id must be a valid UUID"

	MsgPhoneNumberRequired = "phone number is required"
	MsgPhoneNumberInvalid  = "phone number must contain exactly 8 digits"
	MsgPhoneNumberTaken    = "phone number is already in use"

	MsgEmailRequired = "email is required"
	MsgEmailInvalid  = "email is not valid"
	MsgEmailTaken    = "email is already in use"

	MsgAddressRequired = "address is required"
	MsgAddressTooShort = "address must contain at least 10 characters"
	MsgAddressTooLong  = "address must not exceed 200 characters"

	MsgBirthDateRequired = "birth date is required"
	MsgBirthDateInvalid  = "birth date must be a past date"

	MsgBirthPlaceRequired = "birth place is required"
	MsgBirthPlaceTooShort = "birth place must contain at least 3 characters"
	MsgBirthPlaceTooLong  = "birth place must not exceed 100 characters"

	MsgPositionRequired = "position is required"
	MsgPositionTooShort = "position must contain at least 2 characters"
	MsgPositionTooLong  = "position must not exceed 100 characters"

	MsgMaritalStatusRequired = "marital status is required"
	MsgMaritalStatusTooShort = "marital status must contain at least 2 characters"
	MsgMaritalStatusTooLong  = "marital status must not exceed 50 characters"

	MsgMatriculeRequired = "matricule number is required"
	MsgMatriculeTooShort = "matricule number must contain at least 5 characters"
	MsgMatriculeTooLong  = "matricule number must not exceed 20 characters"
	MsgMatriculeTaken    = "matricule number is already in use"

	MsgAdministrationNameRequired = "administration name is required"
	MsgAdministrationNameTooShort = "administration name must contain at least 2 characters"
	MsgAdministrationNameTooLong  = "administration name must not exceed 100 characters"
	MsgAdministrationNameInvalid  = "administration name may only contain letters, spaces and hyphens"
	MsgAdministrationNameTaken    = "an administration with this name already exists"
	MsgAdministrationNotFound     = "administration not found"

	MsgDepartmentNameRequired        = "department name is required"
	MsgDepartmentNameTooShort        = "department name must contain at least 2 characters"
	MsgDepartmentNameTooLong         = "department name must not exceed 100 characters"
	MsgDepartmentNameTaken           = "a department with this name already exists"
	MsgDepartmentNotFound            = "department not found"
	MsgDepartmentNotInAdministration = "department does not belong to the given administration"

	MsgUserNotFound = "user not found"
)
