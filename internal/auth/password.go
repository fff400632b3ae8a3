package auth

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// initialPasswordLength is the size of generated first-login passwords.
const initialPasswordLength = 12

// HashPassword hashes a plaintext password with configured cost.
func HashPassword(password string, cost int) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword verifies a password against its hashed value.
func ComparePassword(hashed, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
}

// GenerateInitialPassword produces the random password assigned to newly
// created users. Only its hash is stored; the plaintext is returned once to
// the caller.
func GenerateInitialPassword() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return raw[:initialPasswordLength]
}
