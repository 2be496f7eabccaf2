package service

import (
	"context"
	"errors"
	"time"

	"github.com/joblinkhq/joblink/internal/domain"
	"github.com/joblinkhq/joblink/internal/store"
	"github.com/joblinkhq/joblink/pkg/jwtx"
	"github.com/joblinkhq/joblink/pkg/slogx"
)

// ErrSessionInvalid covers every way a session token can fail: bad
// signature, expiry, or an account that no longer exists. Callers treat it
// as "unauthenticated".
var ErrSessionInvalid = errors.New("session invalid")

// SessionService issues, verifies and updates signed session tokens. The
// signed payload carries a copy of the account's role and onboarding flag,
// but Verify always re-reads both from the store before returning, so an
// out-of-band role change or onboarding completion is visible on the very
// next request rather than at next sign-in.
type SessionService struct {
	Signer     jwtx.Signer
	Verifier   jwtx.Verifier
	Store      store.Store
	Issuer     string
	SessionTTL time.Duration
}

// SessionUpdate is a client-triggered partial claim override.
type SessionUpdate struct {
	Role                *domain.Role
	OnboardingCompleted *bool
}

// Issue builds and signs a fresh session token for the account.
func (s *SessionService) Issue(ctx context.Context, account domain.Account) (string, error) {
	claims := jwtx.NewSessionClaims(
		account.ID,
		account.Name,
		account.Email,
		string(account.Role),
		account.OnboardingCompleted,
		s.ttl(),
		s.Issuer,
		time.Now().UTC(),
	)

	token, err := s.Signer.Sign(claims)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to sign session token", "err", err)
		return "", err
	}
	return token, nil
}

// VerifySession validates the token signature and expiry, then refreshes the
// role, onboarding flag and display name from the account record. A missing
// account fails closed: the old claims are never returned.
func (s *SessionService) VerifySession(ctx context.Context, token string) (jwtx.Claims, error) {
	log := slogx.FromContext(ctx)

	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return jwtx.Claims{}, ErrSessionInvalid
	}

	account, err := s.Store.Accounts().GetAccountByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("session for deleted account rejected", "account_id", claims.Subject)
			return jwtx.Claims{}, ErrSessionInvalid
		}
		log.Error("claim refresh lookup failed", "err", err)
		return jwtx.Claims{}, err
	}

	// The signed copy is only a hint; the store is authoritative.
	claims.Role = string(account.Role)
	claims.OnboardingCompleted = account.OnboardingCompleted
	claims.Name = account.Name

	return claims, nil
}

// Update applies a partial claim override and re-signs the token. The
// original iat/exp are preserved: updating claims never extends a session's
// 30-day lifetime.
func (s *SessionService) Update(ctx context.Context, token string, upd SessionUpdate) (string, error) {
	claims, err := s.VerifySession(ctx, token)
	if err != nil {
		return "", err
	}

	if upd.Role != nil && upd.Role.Valid() {
		claims.Role = string(*upd.Role)
	}
	if upd.OnboardingCompleted != nil {
		claims.OnboardingCompleted = *upd.OnboardingCompleted
	}

	newToken, err := s.Signer.Sign(claims)
	if err != nil {
		slogx.FromContext(ctx).Error("failed to re-sign session token", "err", err)
		return "", err
	}
	return newToken, nil
}

// TTL is the configured session lifetime, falling back to the 30-day
// default. Handlers use it to align cookie Max-Age with token expiry.
func (s *SessionService) TTL() time.Duration { return s.ttl() }

func (s *SessionService) ttl() time.Duration {
	if s.SessionTTL > 0 {
		return s.SessionTTL
	}
	return jwtx.DefaultSessionTTL
}
