package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Verifier abstracts how credentials are stored and compared, so the
// scheme can change without touching the session contract.
type Verifier interface {
	Hash(secret string) (string, error)
	Check(secret, stored string) bool
}

// PlainVerifier stores and compares credentials verbatim. It exists to
// reproduce the demo contract and is not safe for real deployments.
type PlainVerifier struct{}

// Hash returns the secret unchanged.
func (PlainVerifier) Hash(secret string) (string, error) {
	return secret, nil
}

// Check compares in constant time.
func (PlainVerifier) Check(secret, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(secret), []byte(stored)) == 1
}

// BcryptVerifier stores credentials as bcrypt hashes.
type BcryptVerifier struct {
	Cost int
}

// Hash returns a bcrypt hash of the secret.
func (v BcryptVerifier) Hash(secret string) (string, error) {
	cost := v.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", fmt.Errorf("hash secret: %w", err)
	}
	return string(hashed), nil
}

// Check validates a secret against a bcrypt hash.
func (v BcryptVerifier) Check(secret, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(secret)) == nil
}
