package auth

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hamstech/backend/internal/models"
)

const testSecret = "test-secret-key-for-jwt-signing"

func TestTokens_IssueAndVerify(t *testing.T) {
	tokens := NewTokens(testSecret, time.Hour)

	token, expires, err := tokens.Issue(7, "a@x.com", models.RoleAdmin)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	if d := time.Until(expires); d < 59*time.Minute || d > time.Hour {
		t.Errorf("expires in %v, want ~1h", d)
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if claims.UserID != 7 || claims.Email != "a@x.com" || claims.Role != models.RoleAdmin {
		t.Errorf("claims = %+v, want id=7 email=a@x.com role=admin", claims)
	}
	if claims.Subject != "7" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "7")
	}
	if claims.ID == "" {
		t.Error("JTI should not be empty")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Errorf("exp - iat = %v, want 1h", got)
	}
}

func TestTokens_Expired(t *testing.T) {
	tokens := NewTokens(testSecret, time.Hour)
	issuedAt := time.Now().Add(-61 * time.Minute)
	tokens.now = func() time.Time { return issuedAt }

	token, _, err := tokens.Issue(1, "a@x.com", models.RoleNormal)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tokens.now = time.Now
	_, err = tokens.Verify(token)
	if !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("Verify() error = %v, want ErrInvalidToken", err)
	}
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("Verify() error = %v, want it to wrap jwt.ErrTokenExpired", err)
	}
}

func TestTokens_StillValidJustBeforeExpiry(t *testing.T) {
	tokens := NewTokens(testSecret, time.Hour)
	issuedAt := time.Now().Add(-59 * time.Minute)
	tokens.now = func() time.Time { return issuedAt }

	token, _, err := tokens.Issue(1, "a@x.com", models.RoleNormal)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	tokens.now = time.Now
	if _, err := tokens.Verify(token); err != nil {
		t.Errorf("Verify() error = %v, want nil", err)
	}
}

func TestTokens_WrongSecret(t *testing.T) {
	token, _, err := NewTokens("correct-secret", 0).Issue(1, "a@x.com", models.RoleNormal)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	if _, err := NewTokens("wrong-secret", 0).Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestTokens_TamperedSignature(t *testing.T) {
	tokens := NewTokens(testSecret, 0)
	token, _, err := tokens.Issue(1, "a@x.com", models.RoleNormal)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	parts := strings.Split(token, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := tokens.Verify(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestTokens_Garbage(t *testing.T) {
	tokens := NewTokens(testSecret, 0)
	for _, in := range []string{"", "not-a-jwt", "a.b.c"} {
		if _, err := tokens.Verify(in); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q) error = %v, want ErrInvalidToken", in, err)
		}
	}
}

func TestTokens_RejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{
		UserID: 1, Email: "a@x.com", Role: models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	if _, err := NewTokens(testSecret, 0).Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestTokens_RequiresExpiry(t *testing.T) {
	claims := Claims{UserID: 1, Email: "a@x.com", Role: models.RoleAdmin}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	if _, err := NewTokens(testSecret, 0).Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Verify() error = %v, want ErrInvalidToken", err)
	}
}

func TestClaimsContext(t *testing.T) {
	if _, ok := ClaimsFromContext(context.Background()); ok {
		t.Error("empty context should carry no claims")
	}

	want := &Claims{UserID: 3, Email: "c@x.com", Role: models.RoleNormal}
	got, ok := ClaimsFromContext(WithClaims(context.Background(), want))
	if !ok || got != want {
		t.Errorf("ClaimsFromContext() = %v, %v; want %v, true", got, ok, want)
	}
}
