package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher_RoundTrip(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("correct-horse-battery-staple")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if !strings.HasPrefix(digest, "$2a$") {
		t.Errorf("digest should be a bcrypt hash, got %q", digest)
	}
	if !h.Verify("correct-horse-battery-staple", digest) {
		t.Error("Verify() should return true for the hashed password")
	}
}

func TestHasher_WrongPassword(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("p")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	for _, other := range []string{"", "P", "p ", "pp"} {
		if h.Verify(other, digest) {
			t.Errorf("Verify(%q) should return false", other)
		}
	}
}

func TestHasher_UniqueSalts(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	a, _ := h.Hash("same")
	b, _ := h.Hash("same")
	if a == b {
		t.Error("two hashes of the same password should differ")
	}
}

func TestHasher_MalformedDigest(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	if h.Verify("p", "not-a-bcrypt-hash") {
		t.Error("Verify() should return false for a malformed digest")
	}
}

func TestHasher_LongPassword(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	long := strings.Repeat("x", 100)

	digest, err := h.Hash(long)
	if err != nil {
		t.Fatalf("Hash() should accept long input, error = %v", err)
	}
	if !h.Verify(long, digest) {
		t.Error("Verify() should accept the same long password")
	}
}

func TestNewHasher_Cost(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, DefaultCost},
		{-1, DefaultCost},
		{1, bcrypt.MinCost},
		{12, 12},
		{99, bcrypt.MaxCost},
	}
	for _, tt := range tests {
		if got := NewHasher(tt.in).Cost(); got != tt.want {
			t.Errorf("NewHasher(%d).Cost() = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestHasher_DefaultCostIsEmbedded(t *testing.T) {
	digest, err := NewHasher(0).Hash("p")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	cost, err := bcrypt.Cost([]byte(digest))
	if err != nil {
		t.Fatalf("bcrypt.Cost() error = %v", err)
	}
	if cost != 10 {
		t.Errorf("cost = %d, want 10", cost)
	}
}
