package domain

import "strings"

// Role is the closed set of account roles. Every component consumes this
// enum; raw strings from request bodies or path segments must go through
// ParseRole first.
type Role string

const (
	RoleCandidate Role = "CANDIDATE"
	RoleCompany   Role = "COMPANY"
	RoleAdmin     Role = "ADMIN"
)

// ParseRole normalizes a raw role string to its canonical Role. It accepts
// any casing plus the legacy French spellings that used to leak out of the
// UI ("candidat", "entreprise"). The second return is false when the input
// maps to no known role.
func ParseRole(raw string) (Role, bool) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "CANDIDATE", "CANDIDAT":
		return RoleCandidate, true
	case "COMPANY", "ENTREPRISE":
		return RoleCompany, true
	case "ADMIN":
		return RoleAdmin, true
	default:
		return "", false
	}
}

// Valid reports whether r is one of the canonical roles.
func (r Role) Valid() bool {
	return r == RoleCandidate || r == RoleCompany || r == RoleAdmin
}

// DashboardSlug returns the lowercase path segment used for the role's
// dashboard subtree, e.g. /dashboard/candidate.
func (r Role) DashboardSlug() string {
	return strings.ToLower(string(r))
}

func (r Role) String() string { return string(r) }
