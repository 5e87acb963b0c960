package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed   = errors.New("password hashing failed")
	ErrMismatch        = errors.New("password mismatch")
	ErrInvalidPassword = errors.New("invalid password")
)

const DefaultCost = bcrypt.DefaultCost

// Hash computes a salted bcrypt hash of plaintext with the given work factor.
// Costs below the bcrypt minimum fall back to DefaultCost.
func Hash(plaintext string, cost int) (string, error) {
	if plaintext == "" {
		return "", ErrInvalidPassword
	}

	if cost < bcrypt.MinCost {
		cost = DefaultCost
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

// Compare checks plaintext against a stored bcrypt hash. bcrypt does the
// comparison in constant time with respect to the plaintext.
func Compare(hashedPassword, plaintext string) error {
	if hashedPassword == "" || plaintext == "" {
		return ErrInvalidPassword
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plaintext))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return err
	}

	return nil
}
