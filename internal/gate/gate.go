// Package gate implements the per-request authorization policy. It is a
// pure evaluator: given the verified session (if any) and the requested
// path, it decides whether to let the request through or where to send it
// instead. It never touches storage and never errors; anything ambiguous
// resolves to a redirect, not an allow.
package gate

import (
	"strings"

	"github.com/joblinkhq/joblink/internal/domain"
)

// Session is the slice of verified claims the gate needs. A nil *Session
// means the request is unauthenticated, which also covers tokens that
// failed verification.
type Session struct {
	Role                domain.Role
	OnboardingCompleted bool
}

// Decision is the gate's verdict for one request. An empty Redirect means
// the request may proceed.
type Decision struct {
	Redirect string
}

// Allow reports whether the request should pass through unchanged.
func (d Decision) Allow() bool { return d.Redirect == "" }

var (
	allow = Decision{}

	publicPaths = map[string]bool{
		"/":               true,
		"/api/register":   true,
		"/company/signup": true,
	}
	authPaths = map[string]bool{
		"/auth":     true,
		"/register": true,
	}
)

// Excluded reports whether the path bypasses the gate entirely: API routes,
// framework internals and static assets get no policy applied.
func Excluded(path string) bool {
	return strings.HasPrefix(path, "/api") ||
		strings.HasPrefix(path, "/_next") ||
		strings.HasPrefix(path, "/favicon") ||
		strings.Contains(path, ".")
}

// Evaluate runs the policy for one request. hasInviteToken reports whether
// the request carried an invitation token query parameter, which only
// matters on the company signup page.
func Evaluate(sess *Session, path string, hasInviteToken bool) Decision {
	if Excluded(path) {
		return allow
	}

	if publicPaths[path] {
		return evaluatePublic(sess, path, hasInviteToken)
	}

	if authPaths[path] {
		if sess == nil {
			return allow
		}
		if sess.Role == domain.RoleCandidate && !sess.OnboardingCompleted {
			return Decision{Redirect: "/onboarding"}
		}
		if sess.Role == domain.RoleAdmin {
			return Decision{Redirect: "/dashboard/admin"}
		}
		return Decision{Redirect: "/"}
	}

	if strings.HasPrefix(path, "/dashboard/") {
		return evaluateDashboard(sess, path)
	}

	if strings.HasPrefix(path, "/company/signup") {
		return allow
	}

	if sess == nil {
		return Decision{Redirect: "/"}
	}
	return allow
}

func evaluatePublic(sess *Session, path string, hasInviteToken bool) Decision {
	if path == "/company/signup" && sess != nil {
		if hasInviteToken {
			// Already signed in with an invitation link in hand: send them
			// to wherever their existing role belongs instead of letting
			// them re-register.
			switch sess.Role {
			case domain.RoleCompany:
				return Decision{Redirect: "/dashboard/company/profile"}
			case domain.RoleCandidate:
				if !sess.OnboardingCompleted {
					return Decision{Redirect: "/onboarding"}
				}
				return Decision{Redirect: "/dashboard/candidate/profile"}
			case domain.RoleAdmin:
				return Decision{Redirect: "/admin"}
			}
			return allow
		}
		return Decision{Redirect: "/dashboard/" + sess.Role.DashboardSlug() + "/profile"}
	}

	if path == "/" && sess != nil {
		if sess.Role == domain.RoleCandidate && !sess.OnboardingCompleted {
			return Decision{Redirect: "/onboarding"}
		}
	}
	return allow
}

func evaluateDashboard(sess *Session, path string) Decision {
	if sess == nil {
		return Decision{Redirect: "/"}
	}

	parts := strings.Split(path, "/")
	var roleSegment, subroute string
	if len(parts) > 2 {
		roleSegment = strings.ToUpper(parts[2])
	}
	if len(parts) > 3 {
		subroute = parts[3]
	}

	// An unknown role segment never matches and falls into the mismatch
	// branch, so a typo'd URL silently lands on the caller's own dashboard.
	if string(sess.Role) != roleSegment {
		return Decision{Redirect: "/dashboard/" + sess.Role.DashboardSlug()}
	}

	if subroute == "onboarding" {
		if sess.Role != domain.RoleCandidate {
			return Decision{Redirect: "/dashboard/" + sess.Role.DashboardSlug()}
		}
		if sess.OnboardingCompleted {
			return Decision{Redirect: "/dashboard/candidate"}
		}
	}

	if sess.Role == domain.RoleCandidate && !sess.OnboardingCompleted && subroute != "onboarding" {
		return Decision{Redirect: "/onboarding"}
	}

	return allow
}
