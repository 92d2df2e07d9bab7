// Package auth provides password hashing and server-side session
// management.
package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt work factor. 10 is bcrypt.DefaultCost; raising it
// trades login latency for brute-force resistance.
const hashCost = bcrypt.DefaultCost

// HashPassword returns the bcrypt digest of a plaintext password. The salt
// is generated per call and embedded in the digest.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), hashCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// digest. A wrong password is a normal false result; any other failure
// means the digest itself is unusable.
func CheckPassword(hashedPassword, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, err
}
