package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = 10

// bcrypt ignores everything past 72 bytes and newer versions reject longer
// input outright; both Hash and Verify truncate so the two stay consistent.
const maxPasswordBytes = 72

// Hasher hashes and verifies passwords with bcrypt.
type Hasher struct {
	cost int
}

func NewHasher(cost int) *Hasher {
	switch {
	case cost <= 0:
		cost = DefaultCost
	case cost < bcrypt.MinCost:
		cost = bcrypt.MinCost
	case cost > bcrypt.MaxCost:
		cost = bcrypt.MaxCost
	}
	return &Hasher{cost: cost}
}

// Cost returns the configured work factor.
func (h *Hasher) Cost() int {
	return h.cost
}

// Hash returns a salted bcrypt digest of plain.
func (h *Hasher) Hash(plain string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword(truncate(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether plain matches digest. A malformed digest is a mismatch.
func (h *Hasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), truncate(plain)) == nil
}

func truncate(plain string) []byte {
	b := []byte(plain)
	if len(b) > maxPasswordBytes {
		b = b[:maxPasswordBytes]
	}
	return b
}
