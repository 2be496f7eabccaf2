package http

import (
	"net/http"

	"github.com/joblinkhq/joblink/internal/domain"
	"github.com/joblinkhq/joblink/internal/gate"
	"github.com/joblinkhq/joblink/pkg/httpx"
	"github.com/joblinkhq/joblink/pkg/slogx"
)

// GateMiddleware runs the authorization gate on every page request. It is
// deliberately lenient about the token: a missing or invalid session just
// means "unauthenticated", the gate itself decides where that leads. The
// verified session, if any, is passed to the page handler via context.
func GateMiddleware(v httpx.SessionVerifier) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			path := r.URL.Path
			if gate.Excluded(path) {
				next.ServeHTTP(w, r)
				return
			}

			var sess *gate.Session
			if raw := httpx.SessionTokenFromRequest(r); raw != "" {
				if claims, err := v.VerifySession(ctx, raw); err == nil {
					if role, ok := domain.ParseRole(claims.Role); ok {
						sess = &gate.Session{
							Role:                role,
							OnboardingCompleted: claims.OnboardingCompleted,
						}
					}
				}
			}

			hasInviteToken := r.URL.Query().Get("token") != ""

			decision := gate.Evaluate(sess, path, hasInviteToken)
			if !decision.Allow() {
				log.Debug("gate redirect",
					"path", path,
					"target", decision.Redirect,
				)
				http.Redirect(w, r, decision.Redirect, http.StatusTemporaryRedirect)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
