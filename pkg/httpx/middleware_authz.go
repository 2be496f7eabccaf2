package httpx

import "net/http"

// RequireRole lets the request through only when the authenticated account
// holds one of the listed roles. Must run after AuthnMiddleware.
func RequireRole(allowed ...string) Middleware {
	want := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		want[role] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := RoleFromContext(r.Context())
			if !ok {
				writeBearerError(w, "missing session token")
				return
			}

			if _, allowed := want[role]; !allowed {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error":"insufficient_role","error_description":"this operation requires a different role"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
