package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultSessionTTL is the fixed maximum session age. There is no sliding
// expiration: a token dies 30 days after sign-in regardless of activity.
const DefaultSessionTTL = 30 * 24 * time.Hour

// Claims are the session-token claims carried between requests. The role and
// onboarding fields are a cached copy of the account record; holders must
// refresh them from storage on every verification before trusting them.
type Claims struct {
	jwt.RegisteredClaims

	// Name is the account display name.
	Name string `json:"name,omitempty"`

	// Email is the account email, used as a secondary lookup handle.
	Email string `json:"email,omitempty"`

	// Role is the canonical account role (CANDIDATE, COMPANY, ADMIN).
	Role string `json:"role,omitempty"`

	// OnboardingCompleted mirrors the account's one-way onboarding flag.
	OnboardingCompleted bool `json:"onboarding_completed"`
}

// NewSessionClaims builds minimally-correct session claims. Subject is the
// account id.
func NewSessionClaims(
	subject, name, email, role string,
	onboardingCompleted bool,
	ttl time.Duration,
	issuer string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
		Name:                name,
		Email:               email,
		Role:                role,
		OnboardingCompleted: onboardingCompleted,
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf.
func (c *Claims) ValidateExpiry() error {
	now := time.Now().UTC()

	if c.ExpiresAt != nil && now.After(c.ExpiresAt.Time) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}
