package auth

import (
	"crypto/sha256"

	"github.com/kamalkharel2002/trackship/domain"
	"golang.org/x/crypto/bcrypt"
)

// TokenHasherImpl implements domain.TokenHasher. The token string is first
// reduced to its SHA-256 digest because bcrypt rejects inputs over 72 bytes
// and a signed token is always longer than that; the digest is then bcrypt
// hashed so the stored value stays one-way and per-row salted.
type TokenHasherImpl struct {
	cost int
}

// NewTokenHasher creates a new refresh-token hasher
func NewTokenHasher() domain.TokenHasher {
	return &TokenHasherImpl{cost: bcrypt.DefaultCost}
}

// Hash implements domain.TokenHasher
func (h *TokenHasherImpl) Hash(token string) (string, error) {
	digest := sha256.Sum256([]byte(token))
	hashedBytes, err := bcrypt.GenerateFromPassword(digest[:], h.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// Compare implements domain.TokenHasher
func (h *TokenHasherImpl) Compare(hash, token string) bool {
	digest := sha256.Sum256([]byte(token))
	return bcrypt.CompareHashAndPassword([]byte(hash), digest[:]) == nil
}
