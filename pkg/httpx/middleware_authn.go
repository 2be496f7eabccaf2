package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/joblinkhq/joblink/pkg/jwtx"
	"github.com/joblinkhq/joblink/pkg/slogx"
)

// SessionVerifier verifies a raw session token and returns refreshed claims.
// Implementations must re-read the role and onboarding fields from storage
// before returning, so downstream authorization never acts on stale claims.
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) (jwtx.Claims, error)
}

// SessionCookieName is the cookie browsers carry the session token in. API
// clients may use a bearer Authorization header instead.
const SessionCookieName = "joblink_session"

// SessionTokenFromRequest extracts the raw session token from the
// Authorization header or, failing that, the session cookie. Returns the
// empty string when neither is present.
func SessionTokenFromRequest(r *http.Request) string {
	if authz := r.Header.Get("Authorization"); strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))
	}
	if c, err := r.Cookie(SessionCookieName); err == nil {
		return c.Value
	}
	return ""
}

// AuthnMiddleware enforces an authenticated session on API routes. The
// verified, storage-refreshed claims are injected into the request context.
func AuthnMiddleware(v SessionVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := SessionTokenFromRequest(r)
			if raw == "" {
				writeBearerError(w, "missing session token")
				return
			}

			claims, err := v.VerifySession(ctx, raw)
			if err != nil {
				log.Warn("session verify failed", "err", err)
				writeBearerError(w, "session verification failed")
				return
			}

			ctx = contextWithSession(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithSession(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyAccountID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyRole, c.Role)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
