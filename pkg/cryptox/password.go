package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordCost is the fixed bcrypt cost factor used for every stored
// credential. It is deliberately not configurable per call.
const PasswordCost = 12

// ErrPasswordMismatch reports that a plaintext password does not match the
// stored hash. Comparison is constant-time inside bcrypt.
var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword produces a salted bcrypt hash of the plaintext password.
// The salt is generated per call, so hashing the same password twice yields
// different encodings.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a bcrypt hash.
// Returns ErrPasswordMismatch when the password is wrong; any other error
// indicates a malformed hash.
func VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	return err
}
