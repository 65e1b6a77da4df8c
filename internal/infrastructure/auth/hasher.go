package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ServiceKeyHasher hashes and checks the key the identity system presents
// in X-Service-Key. Only the bcrypt hash is kept in configuration.
type ServiceKeyHasher struct {
	cost int
}

func NewServiceKeyHasher(cost int) *ServiceKeyHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &ServiceKeyHasher{cost: cost}
}

func (h *ServiceKeyHasher) Hash(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to generate service key hash: %w", err)
	}
	return string(hash), nil
}

func (h *ServiceKeyHasher) Verify(key, hash string) error {
	if hash == "" || key == "" {
		return fmt.Errorf("service key verification failed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(key)); err != nil {
		// same message for mismatch and malformed hash
		return fmt.Errorf("service key verification failed")
	}
	return nil
}

// GenerateServiceKey returns a random URL-safe key of 32 bytes of entropy.
func GenerateServiceKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate service key: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
