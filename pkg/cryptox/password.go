package cryptox

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHashCost is the bcrypt cost factor for stored credentials. Must
// stay >= 10.
const PasswordHashCost = 10

var ErrPasswordMismatch = errors.New("cryptox: password does not match")

// HashPassword returns a salted bcrypt hash of the password. The salt is
// embedded in the hash string, so no separate storage is needed.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a stored bcrypt hash
// in constant time. Returns ErrPasswordMismatch on failure so callers can
// collapse it into a uniform invalid-credentials response.
func VerifyPassword(password, encodedHash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}
